package callback

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/absortium/ethwallet-api/trust"
)

// Verifier errors.
var (
	// ErrNoTrustAnchor is returned when NewVerifier is called with a nil
	// anchor or an anchor without a callback key.
	ErrNoTrustAnchor = errors.New("callback: trust anchor with callback key required")

	// ErrMalformedEnvelope is returned when the signature cannot be decoded
	// from its wire encoding. Callers must discard the notification without
	// processing it.
	ErrMalformedEnvelope = errors.New("callback: malformed envelope")
)

// Verifier checks server signatures on notification payloads. It holds
// only the public key, parsed once at anchor load, and is safe for
// concurrent use.
type Verifier struct {
	key *rsa.PublicKey
}

// NewVerifier creates a Verifier using the callback public key from anchor.
func NewVerifier(anchor *trust.Anchor) (*Verifier, error) {
	if anchor == nil || anchor.CallbackKey == nil {
		return nil, ErrNoTrustAnchor
	}

	return &Verifier{key: anchor.CallbackKey}, nil
}

// Verify reports whether signature is a valid server signature over
// payload. The signature is standard base64 on the wire; input that cannot
// be decoded fails with ErrMalformedEnvelope. A well-formed signature that
// does not match returns (false, nil) — an expected outcome, not an error.
//
// Verification is RSASSA-PKCS1-v1_5 over the SHA-256 digest of payload,
// delegated to crypto/rsa.
func (v *Verifier) Verify(payload []byte, signature string) (bool, error) {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("%w: invalid base64 signature", ErrMalformedEnvelope)
	}

	digest := sha256.Sum256(payload)

	if err := rsa.VerifyPKCS1v15(v.key, crypto.SHA256, digest[:], sig); err != nil {
		return false, nil
	}

	return true, nil
}
