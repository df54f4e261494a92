// Package handler provides the HTTP handlers for the course feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtc_backend/internal/api"
	"mtc_backend/internal/apperror"
	"mtc_backend/internal/feature/course/domain/entity"
	dto "mtc_backend/internal/feature/course/transport/http/dto"
	"mtc_backend/internal/feature/course/usecase"
)

// CourseIDRequiredMessage is attached when a course update arrives
// without the course id in the body.
const CourseIDRequiredMessage = "Please provide course id"

// CourseUsecase defines the course operations this handler depends on.
type CourseUsecase interface {
	List(ctx context.Context, q usecase.ListQuery) (int64, []entity.Course, error)
	Get(ctx context.Context, id string) (*entity.Course, error)
	Create(ctx context.Context, rm dto.CourseRequest) (*entity.Course, error)
	Update(ctx context.Context, id string, rm dto.CourseRequest) (*entity.Course, error)
	Delete(ctx context.Context, id string) error
}

// CourseHandler handles the course HTTP requests.
type CourseHandler struct {
	uc CourseUsecase
}

// NewCourseHandler creates a CourseHandler around the given usecase.
func NewCourseHandler(uc CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

// GetAllCoursesHandler lists courses with paging, prefix search and sorting.
//
// GET /courses?skip=0&take=25&searchInput=Nursing&sortBy=tuitionCost&sortOrder=desc
func (h *CourseHandler) GetAllCoursesHandler(c *gin.Context) {
	total, courses, err := h.uc.List(c.Request.Context(), listQueryFromRequest(c, ""))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CoursesResponse{Total: total, Courses: courses})
}

// GetCourseHandler returns one course by id.
//
// GET /courses/:courseId
func (h *CourseHandler) GetCourseHandler(c *gin.Context) {
	course, err := h.uc.Get(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// DeleteCourseHandler deletes a course and refreshes its mtc average cost.
//
// DELETE /courses/:courseId
func (h *CourseHandler) DeleteCourseHandler(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("courseId")); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(nil, ""))
}

// GetMtcCoursesHandler lists the courses of one mtc.
//
// GET /mtcs/:mtcId/courses
func (h *CourseHandler) GetMtcCoursesHandler(c *gin.Context) {
	total, courses, err := h.uc.List(c.Request.Context(), listQueryFromRequest(c, c.Param("mtcId")))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CoursesResponse{Total: total, Courses: courses})
}

// CreateMtcCourseHandler creates a course under an mtc.
//
// POST /mtcs/:mtcId/courses
func (h *CourseHandler) CreateMtcCourseHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}

	course, err := h.uc.Create(c.Request.Context(), dto.NewCourseRequest(body, c.Param("mtcId")))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// UpdateMtcCourseHandler updates a course under an mtc. The course id
// travels in the body rather than the path.
//
// PATCH /mtcs/:mtcId/courses
func (h *CourseHandler) UpdateMtcCourseHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		_ = c.Error(apperror.NewBadRequest(apperror.CodeInvalidInputParams, CourseIDRequiredMessage))
		return
	}

	course, err := h.uc.Update(c.Request.Context(), id, dto.NewCourseRequest(body, c.Param("mtcId")))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func listQueryFromRequest(c *gin.Context, mtcID string) usecase.ListQuery {
	opts := dto.NewCoursesSearchOptions(
		c.Query("skip"),
		c.Query("take"),
		c.Query("searchInput"),
		c.Query("sortBy"),
		c.Query("sortOrder"),
	)
	return usecase.ListQuery{
		Skip:      opts.Skip,
		Take:      opts.Take,
		Search:    opts.SearchInput,
		SortBy:    string(opts.SortBy),
		SortOrder: string(opts.SortOrder),
		MtcID:     mtcID,
	}
}

// decodeBody reads the request body as loosely typed JSON, attaching a
// BAD_REQUEST on malformed input.
func decodeBody(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(apperror.NewBadRequest(apperror.CodeInvalidInputParams, "Request body must be valid JSON"))
		return nil, false
	}
	return body, true
}
