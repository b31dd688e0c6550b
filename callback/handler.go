package callback

import (
	"bytes"
	"errors"
	"io"
	"net/http"
)

// HeaderSignature is the request header carrying the server's signature
// over the callback body.
const HeaderSignature = "API-Callback-Signature"

// HandlerConfig configures the callback verification handler.
type HandlerConfig struct {
	// Verifier checks notification signatures. Required.
	Verifier *Verifier

	// MaxBodyBytes caps the notification body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// OnReject is called when a notification is rejected. When nil, a
	// plain status response is sent: 400 for a malformed envelope, 401 for
	// an unauthentic signature.
	OnReject func(w http.ResponseWriter, r *http.Request, err error)
}

const defaultMaxBodyBytes = 1 << 20

// ErrNotAuthentic is passed to HandlerConfig.OnReject when a well-formed
// signature does not verify.
var ErrNotAuthentic = errors.New("callback: signature not authentic")

// Handler wraps next so it only receives notifications whose signature
// verifies against the callback public key. The body is read fully for
// verification and restored before next runs. Requests without a signature
// header are rejected as malformed.
func Handler(cfg HandlerConfig, next http.Handler) (http.Handler, error) {
	if cfg.Verifier == nil {
		return nil, ErrNoTrustAnchor
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	onReject := cfg.OnReject
	if onReject == nil {
		onReject = defaultOnReject
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sig := r.Header.Get(HeaderSignature)
		if sig == "" {
			onReject(w, r, ErrMalformedEnvelope)
			return
		}

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
		if err != nil {
			onReject(w, r, ErrMalformedEnvelope)
			return
		}

		ok, err := cfg.Verifier.Verify(payload, sig)
		if err != nil {
			onReject(w, r, err)
			return
		}

		if !ok {
			onReject(w, r, ErrNotAuthentic)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(payload))
		next.ServeHTTP(w, r)
	}), nil
}

// defaultOnReject maps malformed envelopes to 400 and everything else to
// 401, with no body.
func defaultOnReject(w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, ErrMalformedEnvelope) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusUnauthorized)
}
