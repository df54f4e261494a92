// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtc_backend/internal/apperror"
	"mtc_backend/internal/feature/user/domain/entity"
	dto "mtc_backend/internal/feature/user/transport/http/dto"
	jwtmw "mtc_backend/internal/platform/jwt"
)

// UserUsecase defines the user operations this handler depends on.
type UserUsecase interface {
	UpdateCurrent(ctx context.Context, current *entity.User, rm dto.UserRequest) (*entity.User, error)
}

// UserHandler handles the user HTTP requests.
type UserHandler struct {
	uc UserUsecase
}

// NewUserHandler creates a UserHandler around the given usecase.
func NewUserHandler(uc UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// UpdateUserHandler updates the authenticated user's profile. Admins may
// additionally change id, role and password.
//
// PATCH /user
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(apperror.NewBadRequest(apperror.CodeInvalidInputParams, "Request body must be valid JSON"))
		return
	}

	user, err := h.uc.UpdateCurrent(c.Request.Context(), jwtmw.CurrentUser(c), dto.NewUserRequest(body))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}
