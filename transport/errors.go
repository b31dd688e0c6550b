package transport

import "errors"

// Base URL validation errors.
var (
	// ErrInsecureScheme is returned when the base URL scheme is anything
	// other than https. Plaintext transport is a hard failure, never a
	// warning.
	ErrInsecureScheme = errors.New("transport: base url scheme must be https")

	// ErrInvalidBaseURL is returned when the base URL cannot be parsed or
	// has no host.
	ErrInvalidBaseURL = errors.New("transport: invalid base url")
)

// Construction errors.
var (
	// ErrNoTrustAnchor is returned when NewPolicy is called with a nil
	// anchor.
	ErrNoTrustAnchor = errors.New("transport: trust anchor must not be nil")

	// ErrNoSigner is returned when New is called with a nil signer.
	ErrNoSigner = errors.New("transport: signer must not be nil")

	// ErrNoPolicy is returned when New is called with a nil policy.
	ErrNoPolicy = errors.New("transport: policy must not be nil")
)
