package locg

import "errors"

var (
	// ErrInvalidArgument is returned when a caller-supplied value fails type
	// or shape validation before any request is sent.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a caller-supplied value is outside the
	// closed set it must belong to.
	ErrOutOfRange = errors.New("out of range")
	// ErrUpstream is returned when the remote service or the response
	// document cannot be fetched or parsed.
	ErrUpstream = errors.New("upstream failure")
)
