package transport

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/http2"

	"github.com/absortium/ethwallet-api/trust"
)

// ValidateBaseURL checks that raw is a usable, encrypted API base endpoint.
// It returns the input unchanged on success. Any scheme other than https
// fails with ErrInsecureScheme; a missing host or unparseable URL fails
// with ErrInvalidBaseURL.
func ValidateBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}

	if !strings.EqualFold(u.Scheme, "https") {
		return "", fmt.Errorf("%w: got %q", ErrInsecureScheme, u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidBaseURL)
	}

	return raw, nil
}

// Policy decides how the TLS session to the API server is validated.
// Construct with NewPolicy (pinned, the normal case) or NewInsecurePolicy
// (verification disabled, test environments only). The zero value is not
// usable.
type Policy struct {
	anchor   *trust.Anchor
	insecure bool
}

// NewPolicy creates the standard policy: server certificates must chain to
// the pinned CA in anchor, and no other root is accepted.
func NewPolicy(anchor *trust.Anchor) (*Policy, error) {
	if anchor == nil {
		return nil, ErrNoTrustAnchor
	}

	return &Policy{anchor: anchor}, nil
}

// NewInsecurePolicy creates a policy that skips server certificate
// verification entirely. It exists for local test servers with self-signed
// certificates and must never be used against production endpoints. The
// deliberately separate constructor keeps the downgrade explicit at every
// call site.
func NewInsecurePolicy() *Policy {
	return &Policy{insecure: true}
}

// Insecure reports whether this policy skips certificate verification.
func (p *Policy) Insecure() bool { return p.insecure }

// TLSConfig returns the TLS client configuration implementing the policy.
func (p *Policy) TLSConfig() *tls.Config {
	cfg := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if p.insecure {
		cfg.InsecureSkipVerify = true
		return cfg
	}

	cfg.RootCAs = p.anchor.CAPool

	return cfg
}

// HTTPTransport returns an *http.Transport configured with the policy's
// TLS settings and HTTP/2 enabled. Each call returns an independent
// transport with its own connection pool.
func (p *Policy) HTTPTransport() (*http.Transport, error) {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.TLSClientConfig = p.TLSConfig()

	if err := http2.ConfigureTransport(tr); err != nil {
		return nil, err
	}

	return tr, nil
}
