package repository

import (
	"errors"
	"fmt"
)

// Sentinel errors for referenced identifiers that do not exist.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
)

// ValidationError reports input rejected before any write was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
