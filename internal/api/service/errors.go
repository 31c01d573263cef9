package service

import "errors"

// Sentinel errors forming the failure taxonomy. Handlers map these to HTTP
// status codes with errors.Is; anything else is a 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("already exists")
	ErrValidation = errors.New("invalid input")
)
