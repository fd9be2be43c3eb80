package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrMalformedRow  = errors.New("malformed row")
	ErrEmptyCorpus   = errors.New("empty corpus")
	ErrInvalidConfig = errors.New("invalid configuration")
)
