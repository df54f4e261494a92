// Package adapters provides the repository implementations for the auth
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	authusecase "mtc_backend/internal/feature/auth/usecase"
	"mtc_backend/internal/feature/user/domain"
	"mtc_backend/internal/feature/user/domain/entity"
	userusecase "mtc_backend/internal/feature/user/usecase"
)

// userPostgres is the gorm implementation of the user repository
// contracts.
type userPostgres struct {
	db *gorm.DB
}

var (
	_ authusecase.UserRepository = (*userPostgres)(nil)
	_ userusecase.UserRepository = (*userPostgres)(nil)
)

// NewUserPostgres creates a user repository on the given gorm connection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

func (r *userPostgres) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update saves the full row so cleared reset-token fields are persisted
// as NULL.
func (r *userPostgres) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByResetToken looks a user up by the stored hash of a reset token.
func (r *userPostgres) FindByResetToken(ctx context.Context, hashedToken string) (*entity.User, error) {
	var user entity.User
	if err := r.db.WithContext(ctx).Where("reset_password_token = ?", hashedToken).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
