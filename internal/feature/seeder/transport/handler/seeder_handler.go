// Package handler provides the HTTP handlers for the database seeder.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtc_backend/internal/api"
)

// Success messages shipped in the response envelope.
const (
	AllImportedMessage     = "Mtcs/Courses data imported"
	MtcsImportedMessage    = "Mtcs data imported"
	CoursesImportedMessage = "Courses data imported"
	AllRemovedMessage      = "All data removed"
)

// SeederUsecase defines the seeding operations this handler depends on.
type SeederUsecase interface {
	SeedAll(ctx context.Context) error
	SeedMtcs(ctx context.Context) error
	SeedCourses(ctx context.Context) error
	DeleteAll(ctx context.Context) error
}

// SeederHandler handles the seeder HTTP requests.
type SeederHandler struct {
	uc SeederUsecase
}

// NewSeederHandler creates a SeederHandler around the given usecase.
func NewSeederHandler(uc SeederUsecase) *SeederHandler {
	return &SeederHandler{uc: uc}
}

// SeedAllHandler imports the mtc and course fixtures.
//
// GET /seeder/all
func (h *SeederHandler) SeedAllHandler(c *gin.Context) {
	if err := h.uc.SeedAll(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(nil, AllImportedMessage))
}

// SeedMtcsHandler imports the mtc fixtures.
//
// GET /seeder/mtcs
func (h *SeederHandler) SeedMtcsHandler(c *gin.Context) {
	if err := h.uc.SeedMtcs(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(nil, MtcsImportedMessage))
}

// SeedCoursesHandler imports the course fixtures.
//
// GET /seeder/courses
func (h *SeederHandler) SeedCoursesHandler(c *gin.Context) {
	if err := h.uc.SeedCourses(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(nil, CoursesImportedMessage))
}

// DeleteAllHandler removes every mtc and course.
//
// DELETE /seeder/all
func (h *SeederHandler) DeleteAllHandler(c *gin.Context) {
	if err := h.uc.DeleteAll(c.Request.Context()); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(nil, AllRemovedMessage))
}
