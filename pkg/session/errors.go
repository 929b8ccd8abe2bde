package session

import "errors"

var (
	// ErrNoToken indicates the transport found no token on the request
	ErrNoToken = errors.New("session.no_token")

	// ErrInvalidTTL indicates a non-positive token validity duration
	ErrInvalidTTL = errors.New("session.invalid_ttl")
)
