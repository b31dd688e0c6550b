package trust

import (
	"crypto/rsa"
	"crypto/x509"
	"embed"
	"encoding/pem"
	"errors"
	"fmt"
	"sync"
)

// Anchor errors.
var (
	// ErrBadCACertificate is returned when the pinned CA certificate cannot
	// be parsed.
	ErrBadCACertificate = errors.New("trust: pinned ca certificate is not valid pem")

	// ErrBadCallbackKey is returned when the callback public key cannot be
	// parsed or is not an RSA key.
	ErrBadCallbackKey = errors.New("trust: callback public key is not a valid rsa public key")
)

//go:embed ca-ethwallet.crt ethwallet-callback.pub
var packaged embed.FS

// Anchor is the process-wide trust material. Read-only after construction.
type Anchor struct {
	// CAPool contains only the pinned CA certificate. Transports using it
	// accept no other roots.
	CAPool *x509.CertPool

	// CallbackKey verifies signatures on inbound server notifications.
	CallbackKey *rsa.PublicKey
}

var (
	loadOnce      sync.Once
	defaultAnchor *Anchor
	loadErr       error
)

// Default returns the Anchor built from the packaged trust material. The
// material is parsed on first call; the parsed anchor (or the parse error)
// is returned on every subsequent call. Callers must treat an error as
// fatal to client construction.
func Default() (*Anchor, error) {
	loadOnce.Do(func() {
		caPEM, err := packaged.ReadFile("ca-ethwallet.crt")
		if err != nil {
			loadErr = fmt.Errorf("%w: %v", ErrBadCACertificate, err)
			return
		}

		pubPEM, err := packaged.ReadFile("ethwallet-callback.pub")
		if err != nil {
			loadErr = fmt.Errorf("%w: %v", ErrBadCallbackKey, err)
			return
		}

		defaultAnchor, loadErr = ParseAnchor(caPEM, pubPEM)
	})

	return defaultAnchor, loadErr
}

// ParseAnchor builds an Anchor from PEM-encoded CA certificate and RSA
// public key material. Exposed so tests and alternate deployments can
// supply their own material.
func ParseAnchor(caPEM, pubPEM []byte) (*Anchor, error) {
	pool := x509.NewCertPool()
	if ok := pool.AppendCertsFromPEM(caPEM); !ok {
		return nil, ErrBadCACertificate
	}

	key, err := parseRSAPublicKey(pubPEM)
	if err != nil {
		return nil, err
	}

	return &Anchor{CAPool: pool, CallbackKey: key}, nil
}

// parseRSAPublicKey decodes a PKIX "PUBLIC KEY" PEM block into an RSA
// public key.
func parseRSAPublicKey(pubPEM []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pubPEM)
	if block == nil {
		return nil, ErrBadCallbackKey
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCallbackKey, err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrBadCallbackKey, parsed)
	}

	return key, nil
}
