package store

import "errors"

// Sentinel errors returned by the by-id lookups. Absence is an expected
// outcome; callers decide whether it maps to a 404 or is simply skipped.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrEventNotFound    = errors.New("event not found")
)
