package domain

import "errors"

var (
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrDuplicateApplication = errors.New("already applied to this job")
	ErrUnauthorized         = errors.New("not the owner of this resource")
	ErrNotFound             = errors.New("not found")
	ErrStaleTransition      = errors.New("application status changed concurrently")
	ErrStoreUnavailable     = errors.New("store unavailable")
)
