package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"mtc_backend/internal/app/router"
	authadapters "mtc_backend/internal/feature/auth/adapters"
	authhandler "mtc_backend/internal/feature/auth/transport/handler"
	authusecase "mtc_backend/internal/feature/auth/usecase"
	courseadapters "mtc_backend/internal/feature/course/adapters"
	coursehandler "mtc_backend/internal/feature/course/transport/handler"
	courseusecase "mtc_backend/internal/feature/course/usecase"
	mtchandler "mtc_backend/internal/feature/mtc/transport/handler"
	mtcusecase "mtc_backend/internal/feature/mtc/usecase"
	seederhandler "mtc_backend/internal/feature/seeder/transport/handler"
	seederusecase "mtc_backend/internal/feature/seeder/usecase"
	userhandler "mtc_backend/internal/feature/user/transport/handler"
	userusecase "mtc_backend/internal/feature/user/usecase"
	"mtc_backend/internal/platform/config"
	"mtc_backend/internal/platform/email"
	jwtmw "mtc_backend/internal/platform/jwt"
)

// NewRouterDeps wires every adapter, usecase and handler of the service.
func NewRouterDeps(cfg *config.Config, db *gorm.DB, rdb *redis.Client) router.Deps {
	mtcStore := NewMtcStore(db, rdb, cfg.CacheTTL)
	courseStore := courseadapters.NewCoursePostgres(db)
	users := authadapters.NewUserPostgres(db)

	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpire)
	mailer := email.NewMailer(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})

	mtcUC := mtcusecase.NewMtcUsecase(mtcStore, courseStore, NewGeocoder(cfg), cfg.FileUploadPath, cfg.MaxFileSize)
	courseUC := courseusecase.NewCourseUsecase(courseStore, mtcStore)
	authUC := authusecase.NewAuthUsecase(users, tokens, mailer)
	userUC := userusecase.NewUserUsecase(users, authusecase.HashNewPassword)
	seederUC := seederusecase.NewSeederUsecase(mtcStore, courseStore, cfg.SeedDataPath)

	return router.Deps{
		Mtc:    mtchandler.NewMtcHandler(mtcUC),
		Course: coursehandler.NewCourseHandler(courseUC),
		Auth:   authhandler.NewAuthHandler(authUC),
		User:   userhandler.NewUserHandler(userUC),
		Seeder: seederhandler.NewSeederHandler(seederUC),

		JWTSecret: cfg.JWTSecret,
		LoadUser:  authUC.LoadUser,
	}
}
