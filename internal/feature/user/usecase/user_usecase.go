// Package usecase implements the self-service user operations.
package usecase

import (
	"context"

	"mtc_backend/internal/apperror"
	"mtc_backend/internal/feature/user/domain/entity"
	dto "mtc_backend/internal/feature/user/transport/http/dto"
	"mtc_backend/internal/validation"
)

// UserRepository is the persistence contract required by this usecase.
type UserRepository interface {
	Update(ctx context.Context, user *entity.User) error
}

// PasswordHasher derives a fresh salt and hash for a new password.
type PasswordHasher func(password string) (salt, hash string, err error)

// UserUsecase implements the user operations.
type UserUsecase struct {
	users UserRepository
	hash  PasswordHasher
}

// NewUserUsecase creates a user usecase.
func NewUserUsecase(users UserRepository, hash PasswordHasher) *UserUsecase {
	return &UserUsecase{users: users, hash: hash}
}

// UpdateCurrent applies a partial update to the authenticated user.
// Non-admin callers may only change name and email; id, password and role
// in their payload are rejected as field errors. Admins may set every
// field, and a new password is re-hashed with a fresh salt.
func (u *UserUsecase) UpdateCurrent(ctx context.Context, current *entity.User, rm dto.UserRequest) (*entity.User, error) {
	isAdmin := current.Role == entity.RoleAdmin

	if errs := validation.ValidateUserUpdate(rm, isAdmin); len(errs) > 0 {
		return nil, apperror.NewForbidden(apperror.CodeInvalidInputParams, validation.Details(errs)...)
	}
	model := rm.Model()

	if rm.Name != nil {
		current.Name = model.Name
	}
	if rm.Email != nil {
		current.Email = model.Email
	}
	if isAdmin {
		if rm.ID != nil {
			current.ID = model.ID
		}
		if rm.Role != nil {
			current.Role = entity.Role(model.Role)
		}
		if rm.Password != nil {
			salt, hash, err := u.hash(model.Password)
			if err != nil {
				return nil, err
			}
			current.Salt = salt
			current.Password = hash
		}
	}

	if err := u.users.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
