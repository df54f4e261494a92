// Package router assembles the HTTP routes of the service.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mtc_backend/internal/api"
	"mtc_backend/internal/apperror"
	authhandler "mtc_backend/internal/feature/auth/transport/handler"
	coursehandler "mtc_backend/internal/feature/course/transport/handler"
	mtchandler "mtc_backend/internal/feature/mtc/transport/handler"
	seederhandler "mtc_backend/internal/feature/seeder/transport/handler"
	"mtc_backend/internal/feature/user/domain/entity"
	userhandler "mtc_backend/internal/feature/user/transport/handler"
	"mtc_backend/internal/platform/http/handler"
	jwtmw "mtc_backend/internal/platform/jwt"
)

// Deps carries everything the router mounts.
type Deps struct {
	Mtc    *mtchandler.MtcHandler
	Course *coursehandler.CourseHandler
	Auth   *authhandler.AuthHandler
	User   *userhandler.UserHandler
	Seeder *seederhandler.SeederHandler

	JWTSecret string
	LoadUser  jwtmw.UserLoader
}

// NewRouter builds the gin engine with all routes mounted. Reads on mtcs
// and courses are public; mutations need a signed-in admin or owner, and
// the seeder is admin only.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), apperror.Recovery(), apperror.ErrorHandler())

	r.GET("/healthz", handler.Health)

	authed := jwtmw.AuthRequired(d.JWTSecret, d.LoadUser)
	managers := jwtmw.RequireRoles(entity.RoleAdmin, entity.RoleOwner)
	admins := jwtmw.RequireRoles(entity.RoleAdmin)

	v1 := r.Group("/api/v1")
	v1.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, api.OK(nil, api.RootMessage))
	})

	mtcs := v1.Group("/mtcs")
	{
		mtcs.GET("", d.Mtc.GetAllMtcsHandler)
		mtcs.GET("/radius/:zipcode/:distance", d.Mtc.GetMtcsWithinRadiusHandler)
		mtcs.GET("/:mtcId", d.Mtc.GetMtcHandler)
		mtcs.GET("/:mtcId/courses", d.Course.GetMtcCoursesHandler)

		mtcs.POST("", authed, managers, d.Mtc.CreateMtcHandler)
		mtcs.PUT("/:mtcId", authed, managers, d.Mtc.UpdateMtcHandler)
		mtcs.DELETE("/:mtcId", authed, managers, d.Mtc.DeleteMtcHandler)
		mtcs.POST("/:mtcId/photo", authed, managers, d.Mtc.UploadMtcPhotoHandler)

		mtcs.POST("/:mtcId/courses", authed, managers, d.Course.CreateMtcCourseHandler)
		mtcs.PATCH("/:mtcId/courses", authed, managers, d.Course.UpdateMtcCourseHandler)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", d.Course.GetAllCoursesHandler)
		courses.GET("/:courseId", d.Course.GetCourseHandler)
		courses.DELETE("/:courseId", authed, managers, d.Course.DeleteCourseHandler)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/register", d.Auth.RegisterHandler)
		auth.POST("/login", d.Auth.LoginHandler)
		auth.POST("/forgot-password", d.Auth.ForgotPasswordHandler)
		auth.PUT("/reset-password/:token", d.Auth.ResetPasswordHandler)
		auth.GET("/current-user", authed, d.Auth.CurrentUserHandler)
	}

	v1.PATCH("/user", authed, d.User.UpdateUserHandler)

	seeder := v1.Group("/seeder", authed, admins)
	{
		seeder.GET("/all", d.Seeder.SeedAllHandler)
		seeder.GET("/mtcs", d.Seeder.SeedMtcsHandler)
		seeder.GET("/courses", d.Seeder.SeedCoursesHandler)
		seeder.DELETE("/all", d.Seeder.DeleteAllHandler)
	}

	return r
}
