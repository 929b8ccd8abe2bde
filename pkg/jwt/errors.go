package jwt

import "errors"

var (
	ErrMalformedToken          = errors.New("jwt: malformed token")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
	ErrExpiredToken            = errors.New("jwt: token is expired")
	ErrTokenNotYetValid        = errors.New("jwt: token is not yet valid")
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
)
