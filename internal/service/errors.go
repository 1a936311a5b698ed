package service

import "errors"

// Service-level errors. NotFound for columns and cards reuses the
// repository sentinels; handlers dispatch on all of these with errors.Is.
var (
	// ErrForbidden is returned when the subject is neither admin nor owner
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput is returned when required text is empty after trimming
	ErrInvalidInput = errors.New("invalid input")

	// ErrCommentNotFound is returned when a comment id is absent from its card
	ErrCommentNotFound = errors.New("comment not found")
)
