// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mtc_backend/internal/api"
	"mtc_backend/internal/apperror"
	dto "mtc_backend/internal/feature/user/transport/http/dto"
	jwtmw "mtc_backend/internal/platform/jwt"
)

// Success messages shipped in the response envelope.
const (
	UserRegisteredMessage         = "User registered"
	LoginSuccessfulMessage        = "Login successful"
	CurrentUserMessage            = "Current logged in user"
	ResetPasswordEmailSentMessage = "Reset password email sent"
	ResetPasswordSuccessMessage   = "Password reset completed"
)

// AuthUsecase defines the auth operations this handler depends on. Following
// Go convention the interface is declared on the consumer side.
type AuthUsecase interface {
	Register(ctx context.Context, rm dto.UserRequest) (string, error)
	Login(ctx context.Context, rm dto.LoginRequest) (string, error)
	ForgotPassword(ctx context.Context, rm dto.LoginRequest) error
	ResetPassword(ctx context.Context, rawToken string, rm dto.ResetPasswordRequest) (string, error)
}

// AuthHandler handles the auth HTTP requests.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler around the given usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterHandler creates a user account and signs them in.
//
// POST /auth/register
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}

	token, err := h.auth.Register(c.Request.Context(), dto.NewUserRequest(body))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.TokenResponse{Token: token}, UserRegisteredMessage))
}

// LoginHandler authenticates a user by email and password.
//
// POST /auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}
	rm := dto.NewLoginRequest(body)

	token, err := h.auth.Login(c.Request.Context(), rm)
	if err != nil {
		slog.Warn("login failed", "email", rm.EmailValue(), "remote_addr", c.ClientIP())
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.TokenResponse{Token: token}, LoginSuccessfulMessage))
}

// CurrentUserHandler returns the authenticated user.
//
// GET /auth/current-user
func (h *AuthHandler) CurrentUserHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.OK(jwtmw.CurrentUser(c), CurrentUserMessage))
}

// ForgotPasswordHandler mails a password reset token to the given email.
//
// POST /auth/forgot-password
func (h *AuthHandler) ForgotPasswordHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), dto.NewLoginRequest(body)); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(nil, ResetPasswordEmailSentMessage))
}

// ResetPasswordHandler sets a new password using a mailed reset token and
// signs the user in.
//
// PUT /auth/reset-password/:token
func (h *AuthHandler) ResetPasswordHandler(c *gin.Context) {
	body, ok := decodeBody(c)
	if !ok {
		return
	}

	token, err := h.auth.ResetPassword(c.Request.Context(), c.Param("token"), dto.NewResetPasswordRequest(body))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, api.OK(dto.TokenResponse{Token: token}, ResetPasswordSuccessMessage))
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
