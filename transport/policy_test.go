package transport

import (
	"crypto/tls"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absortium/ethwallet-api/trust"
)

func TestValidateBaseURL(t *testing.T) {
	t.Run("https accepted", func(t *testing.T) {
		got, err := ValidateBaseURL("https://api.ethwallet.example")
		require.NoError(t, err)
		assert.Equal(t, "https://api.ethwallet.example", got)
	})

	t.Run("https with port and path accepted", func(t *testing.T) {
		_, err := ValidateBaseURL("https://api.ethwallet.example:8443/base")
		assert.NoError(t, err)
	})

	t.Run("insecure schemes rejected", func(t *testing.T) {
		for _, raw := range []string{
			"http://api.ethwallet.example",
			"ftp://api.ethwallet.example",
			"ws://api.ethwallet.example",
			"file:///etc/passwd",
			"api.ethwallet.example",
		} {
			t.Run(raw, func(t *testing.T) {
				_, err := ValidateBaseURL(raw)
				assert.ErrorIs(t, err, ErrInsecureScheme)
			})
		}
	})

	t.Run("missing host rejected", func(t *testing.T) {
		_, err := ValidateBaseURL("https://")
		assert.ErrorIs(t, err, ErrInvalidBaseURL)
	})

	t.Run("unparseable url rejected", func(t *testing.T) {
		_, err := ValidateBaseURL("https://bad url\x7f")
		assert.ErrorIs(t, err, ErrInvalidBaseURL)
	})
}

func TestPolicy(t *testing.T) {
	anchor, err := trust.Default()
	require.NoError(t, err)

	t.Run("nil anchor rejected", func(t *testing.T) {
		_, err := NewPolicy(nil)
		assert.ErrorIs(t, err, ErrNoTrustAnchor)
	})

	t.Run("pinned policy uses only the packaged ca pool", func(t *testing.T) {
		policy, err := NewPolicy(anchor)
		require.NoError(t, err)
		assert.False(t, policy.Insecure())

		cfg := policy.TLSConfig()
		assert.Same(t, anchor.CAPool, cfg.RootCAs)
		assert.False(t, cfg.InsecureSkipVerify)
		assert.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
	})

	t.Run("insecure policy is explicit and skips verification", func(t *testing.T) {
		policy := NewInsecurePolicy()
		assert.True(t, policy.Insecure())

		cfg := policy.TLSConfig()
		assert.True(t, cfg.InsecureSkipVerify)
		assert.Nil(t, cfg.RootCAs)
	})

	t.Run("http transport carries policy tls config", func(t *testing.T) {
		policy, err := NewPolicy(anchor)
		require.NoError(t, err)

		tr, err := policy.HTTPTransport()
		require.NoError(t, err)
		assert.Same(t, anchor.CAPool, tr.TLSClientConfig.RootCAs)
	})

	t.Run("independent transports per call", func(t *testing.T) {
		policy, err := NewPolicy(anchor)
		require.NoError(t, err)

		a, err := policy.HTTPTransport()
		require.NoError(t, err)

		b, err := policy.HTTPTransport()
		require.NoError(t, err)

		assert.NotSame(t, a, b)
	})
}
