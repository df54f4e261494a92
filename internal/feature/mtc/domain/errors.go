// Package domain defines domain-level errors for the mtc feature.
package domain

import "errors"

var (
	// ErrMtcNotFound indicates that no mtc exists for the given id.
	ErrMtcNotFound = errors.New("mtc not found")

	// ErrMtcNameTaken indicates that another mtc already uses the given name.
	ErrMtcNameTaken = errors.New("mtc name is already registered")
)
