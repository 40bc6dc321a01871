package syncclient

import "errors"

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrMalformedRequest = errors.New("request rejected as malformed")
)
