// Package domain defines domain-level errors for the user feature.
package domain

import "errors"

var (
	// ErrUserNotFound indicates that no user was found with the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates that a user with the given email already exists.
	ErrEmailTaken = errors.New("user with this email already exists")
)
