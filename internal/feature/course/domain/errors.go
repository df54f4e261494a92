// Package domain defines domain-level errors for the course feature.
package domain

import "errors"

// ErrCourseNotFound indicates that no course exists for the given id.
var ErrCourseNotFound = errors.New("course not found")
