package transport

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/absortium/ethwallet-api/auth"
)

// Transport is an http.RoundTripper that authenticates every outgoing
// request: it stamps a fresh timestamp and nonce, signs the request with
// the configured auth.Signer, and attaches the authentication headers
// before delegating to the base transport.
//
// Use New to build a Transport whose base implements the Policy's pinning.
type Transport struct {
	base   http.RoundTripper
	signer *auth.Signer

	// now is overridable in tests.
	now func() time.Time
}

// New creates a signing Transport whose base transport is built from
// policy. The base carries the policy's TLS configuration (pinned CA pool,
// or explicit insecure mode) and an independent connection pool.
func New(policy *Policy, signer *auth.Signer) (*Transport, error) {
	if policy == nil {
		return nil, ErrNoPolicy
	}

	if signer == nil {
		return nil, ErrNoSigner
	}

	base, err := policy.HTTPTransport()
	if err != nil {
		return nil, err
	}

	return &Transport{
		base:   base,
		signer: signer,
		now:    time.Now,
	}, nil
}

// NewWithBase creates a signing Transport over an explicit base
// RoundTripper. Intended for tests; production callers should use New so
// the transport policy is always applied.
func NewWithBase(base http.RoundTripper, signer *auth.Signer) (*Transport, error) {
	if signer == nil {
		return nil, ErrNoSigner
	}

	if base == nil {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:   base,
		signer: signer,
		now:    time.Now,
	}, nil
}

// RoundTrip signs the request and then delegates to the base transport.
// The original request is cloned before signing to avoid mutation. When
// GetBody is available, the clone receives its own body copy so that
// reading the body for signing does not consume the caller's copy.
//
// Form-encoded bodies are bound into the signature via their parameter
// map; requests without a body sign an empty body.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	params, err := requestParams(req, clone)
	if err != nil {
		return nil, err
	}

	nonce, err := auth.GenerateNonce()
	if err != nil {
		return nil, err
	}

	tag, err := t.signer.Sign(req.Method, req.URL.Path, t.now().Unix(), nonce, params)
	if err != nil {
		return nil, err
	}

	tag.Apply(clone.Header)

	return t.base.RoundTrip(clone)
}

// requestParams extracts the signed parameter map from the request body.
// The body is read from a GetBody copy when available so the caller's body
// is never consumed; the clone always ends up with a readable body of its
// own. Bodies without GetBody are read once and replayed from memory.
func requestParams(req, clone *http.Request) (map[string]string, error) {
	if req.Body == nil {
		return nil, nil
	}

	var data []byte

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		data, err = io.ReadAll(body)
		body.Close()
		if err != nil {
			return nil, err
		}

		restored, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		clone.Body = restored
	} else {
		var err error
		data, err = io.ReadAll(clone.Body)
		clone.Body.Close()
		if err != nil {
			return nil, err
		}

		clone.Body = io.NopCloser(bytes.NewReader(data))
	}

	if len(data) == 0 {
		return nil, nil
	}

	values, err := url.ParseQuery(string(data))
	if err != nil {
		return nil, err
	}

	params := make(map[string]string, len(values))
	for k := range values {
		params[k] = values.Get(k)
	}

	return params, nil
}
