package auth

import "errors"

// Credential errors.
var (
	// ErrMissingAPIKey is returned when a Credential is constructed with an
	// empty API key.
	ErrMissingAPIKey = errors.New("auth: api key must not be empty")

	// ErrMissingSecret is returned when a Credential is constructed with an
	// empty API secret.
	ErrMissingSecret = errors.New("auth: api secret must not be empty")
)

// Signing errors.
var (
	// ErrInvalidTimestamp is returned when Sign is called with a timestamp
	// that is not a positive integer.
	ErrInvalidTimestamp = errors.New("auth: timestamp must be a positive integer")

	// ErrMissingNonce is returned when Sign is called with an empty nonce.
	// The nonce is part of the signed message and is never optional.
	ErrMissingNonce = errors.New("auth: nonce must not be empty")

	// ErrUnsupportedMethod is returned when Sign is called with an HTTP
	// method outside GET, POST, PUT, DELETE.
	ErrUnsupportedMethod = errors.New("auth: unsupported http method")
)
