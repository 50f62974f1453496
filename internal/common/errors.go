// Package common defines shared constants and sentinel errors used across
// AutoBlog components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Pipeline errors. ErrMissingCredential is returned before any network
	// I/O is attempted.
	ErrMissingCredential = errors.New("missing credential")
	ErrGenerationFailed  = errors.New("content generation failed")
	ErrPublishFailed     = errors.New("publish failed")

	// ErrPipelineBusy rejects a generate-and-publish trigger while another
	// run is still in flight.
	ErrPipelineBusy = errors.New("pipeline busy")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
