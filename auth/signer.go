package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Header names carrying the authentication tag. These are part of the wire
// contract with the server and must not change.
const (
	HeaderAPIKey    = "API-Key"
	HeaderTimestamp = "API-Timestamp"
	HeaderNonce     = "API-Nonce"
	HeaderSignature = "API-Signature"
	HeaderVersion   = "API-Version"
)

// nonceSize is the number of random bytes used to generate a nonce.
const nonceSize = 16

// GenerateNonce returns a cryptographically random nonce string suitable
// for use in Signer.Sign. The returned value is 16 random bytes encoded as
// unpadded base64url (22 characters).
func GenerateNonce() (string, error) {
	b := make([]byte, nonceSize)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Tag is the authentication material attached to one request: the
// signature plus the metadata the server needs to recompute it. It never
// contains the secret.
type Tag struct {
	APIKey     string
	Timestamp  int64
	Nonce      string
	Signature  string
	APIVersion string
}

// Apply sets the authentication headers on h.
func (t Tag) Apply(h http.Header) {
	h.Set(HeaderAPIKey, t.APIKey)
	h.Set(HeaderTimestamp, strconv.FormatInt(t.Timestamp, 10))
	h.Set(HeaderNonce, t.Nonce)
	h.Set(HeaderSignature, t.Signature)
	h.Set(HeaderVersion, t.APIVersion)
}

// Signer computes per-request authentication tags with HMAC-SHA256 over
// the canonical request form. It holds only the immutable credential and
// is safe for concurrent use.
type Signer struct {
	cred Credential
}

// NewSigner creates a Signer for the given credential.
func NewSigner(cred Credential) *Signer {
	return &Signer{cred: cred}
}

// Sign computes the authentication tag for one request. The timestamp must
// be a positive Unix time in seconds and the nonce must be non-empty; both
// are bound into the signed message so a signature cannot be replayed at a
// different time or reused across requests. The signature is lowercase
// hex-encoded HMAC-SHA256.
func (s *Signer) Sign(method, path string, timestamp int64, nonce string, params map[string]string) (Tag, error) {
	method = strings.ToUpper(method)
	if !supportedMethods[method] {
		return Tag{}, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	if timestamp <= 0 {
		return Tag{}, ErrInvalidTimestamp
	}

	if nonce == "" {
		return Tag{}, ErrMissingNonce
	}

	body := EncodeParams(params)
	msg := canonicalMessage(timestamp, nonce, method, NormalizePath(path), body)

	mac := hmac.New(sha256.New, s.cred.apiSecret.Bytes())
	mac.Write(msg)

	return Tag{
		APIKey:     s.cred.apiKey,
		Timestamp:  timestamp,
		Nonce:      nonce,
		Signature:  hex.EncodeToString(mac.Sum(nil)),
		APIVersion: s.cred.apiVersion,
	}, nil
}
