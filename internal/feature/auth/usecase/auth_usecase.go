// Package usecase implements registration, login and the password reset
// flow. Passwords are stored as salted scrypt hashes; reset tokens are
// mailed raw and stored hashed.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mtc_backend/internal/apperror"
	userdomain "mtc_backend/internal/feature/user/domain"
	"mtc_backend/internal/feature/user/domain/entity"
	dto "mtc_backend/internal/feature/user/transport/http/dto"
	"mtc_backend/internal/validation"
)

// Client-facing detail messages.
const (
	InvalidCredentialsMessage = "Invalid credentials"
	EmailRegisteredMessage    = "User with such email is already registered"
	UserNotFoundByEmailPrefix = "User not found by provided email: "
	ResetTokenInvalidMessage  = "Invalid token for password reset"
)

// ResetPasswordExpiry is how long a mailed reset token stays valid.
const ResetPasswordExpiry = 10 * time.Minute

const resetEmailSubject = "Password reset token"

// UserRepository is the persistence contract required by this usecase.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByResetToken(ctx context.Context, hashedToken string) (*entity.User, error)
}

// TokenGenerator signs JWTs for authenticated users.
type TokenGenerator interface {
	GenerateToken(userID string) (string, error)
}

// EmailSender delivers the reset-password mail.
type EmailSender interface {
	Send(to, subject, body string) error
}

// AuthUsecase implements the auth operations.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenGenerator
	mail   EmailSender
}

// NewAuthUsecase creates an auth usecase.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, mail EmailSender) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, mail: mail}
}

// Register validates the payload, rejects duplicate emails and stores a
// new user with a salted scrypt password hash. It returns a signed JWT.
func (u *AuthUsecase) Register(ctx context.Context, rm dto.UserRequest) (string, error) {
	if errs := validation.ValidateUserRequest(rm); len(errs) > 0 {
		return "", apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}
	model := rm.Model()

	if _, err := u.users.FindByEmail(ctx, model.Email); err == nil {
		return "", apperror.NewForbidden(apperror.CodeEmailAlreadyRegistered, EmailRegisteredMessage)
	} else if !errors.Is(err, userdomain.ErrUserNotFound) {
		return "", err
	}

	salt, err := newSalt()
	if err != nil {
		return "", err
	}
	hash, err := hashPassword(model.Password, salt)
	if err != nil {
		return "", err
	}

	user := &entity.User{
		ID:       model.ID,
		Name:     model.Name,
		Email:    model.Email,
		Role:     entity.Role(model.Role),
		Password: hash,
		Salt:     salt,
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}
	return u.tokens.GenerateToken(user.ID)
}

// Login verifies credentials and returns a signed JWT. Unknown emails and
// wrong passwords produce the same response, and a dummy hash is computed
// for unknown emails so both paths cost the same.
func (u *AuthUsecase) Login(ctx context.Context, rm dto.LoginRequest) (string, error) {
	if errs := validation.ValidateUserLogin(rm); len(errs) > 0 {
		return "", apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}

	user, err := u.users.FindByEmail(ctx, rm.EmailValue())
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			matchPassword(rm.PasswordValue(), "0000000000000000", "")
			return "", invalidCredentials()
		}
		return "", err
	}

	if !matchPassword(rm.PasswordValue(), user.Salt, user.Password) {
		return "", invalidCredentials()
	}

	return u.tokens.GenerateToken(user.ID)
}

// LoadUser resolves a user by id for the auth middleware.
func (u *AuthUsecase) LoadUser(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// ForgotPassword generates a reset token for the user behind the email,
// stores its hash with an expiration and mails the raw token. A failed
// send rolls the token back so the stored state never references a mail
// that was not delivered.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, rm dto.LoginRequest) error {
	if errs := validation.ValidateUserEmail(rm.Email); len(errs) > 0 {
		return apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}
	email := rm.EmailValue()

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return apperror.NewNotFound(apperror.CodeUserNotFound, UserNotFoundByEmailPrefix+email)
		}
		return err
	}

	rawToken, err := newResetToken()
	if err != nil {
		return err
	}
	hashed := hashResetToken(rawToken)
	expiration := time.Now().Add(ResetPasswordExpiry)

	user.ResetPasswordToken = &hashed
	user.ResetPasswordExpiration = &expiration
	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"You are receiving this email because you (or someone else) has requested the reset of a password. "+
			"Your reset token is:\n\n%s\n\nThe token expires in %d minutes.",
		rawToken, int(ResetPasswordExpiry.Minutes()),
	)
	if err := u.mail.Send(user.Email, resetEmailSubject, body); err != nil {
		user.ResetPasswordToken = nil
		user.ResetPasswordExpiration = nil
		if rollbackErr := u.users.Update(ctx, user); rollbackErr != nil {
			return rollbackErr
		}
		return apperror.NewInternal(apperror.CodeEmailSenderError, err.Error())
	}
	return nil
}

// ResetPassword sets a new password for the user holding the submitted
// token and clears the token fields. It returns a fresh JWT.
func (u *AuthUsecase) ResetPassword(ctx context.Context, rawToken string, rm dto.ResetPasswordRequest) (string, error) {
	if errs := validation.ValidateUserPassword(rm.Password); len(errs) > 0 {
		return "", apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}

	user, err := u.users.FindByResetToken(ctx, hashResetToken(rawToken))
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return "", invalidResetToken()
		}
		return "", err
	}
	if user.ResetPasswordExpiration == nil || time.Now().After(*user.ResetPasswordExpiration) {
		return "", invalidResetToken()
	}

	salt, err := newSalt()
	if err != nil {
		return "", err
	}
	hash, err := hashPassword(rm.PasswordValue(), salt)
	if err != nil {
		return "", err
	}

	user.Salt = salt
	user.Password = hash
	user.ResetPasswordToken = nil
	user.ResetPasswordExpiration = nil
	if err := u.users.Update(ctx, user); err != nil {
		return "", err
	}

	return u.tokens.GenerateToken(user.ID)
}

func invalidCredentials() error {
	return apperror.NewUnauthorized(apperror.CodeInvalidAuthParams, InvalidCredentialsMessage)
}

func invalidResetToken() error {
	return apperror.NewForbidden(apperror.CodeResetPasswordInvalidToken, ResetTokenInvalidMessage)
}
