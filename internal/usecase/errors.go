package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrUpstream covers transport failures, non-2xx replies and unparseable payloads alike.
	ErrUpstream     = errors.New("upstream request failed")
	ErrNotSupported = errors.New("not supported by provider")
)
