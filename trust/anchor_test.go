package trust

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	anchor, err := Default()
	require.NoError(t, err)
	require.NotNil(t, anchor)

	assert.NotNil(t, anchor.CAPool)
	assert.NotNil(t, anchor.CallbackKey)

	t.Run("same anchor on every call", func(t *testing.T) {
		again, err := Default()
		require.NoError(t, err)
		assert.Same(t, anchor, again)
	})
}

func TestParseAnchor(t *testing.T) {
	caPEM, pubPEM := testMaterial(t)

	t.Run("valid material parses", func(t *testing.T) {
		anchor, err := ParseAnchor(caPEM, pubPEM)
		require.NoError(t, err)
		assert.NotNil(t, anchor.CAPool)
		assert.NotNil(t, anchor.CallbackKey)
	})

	t.Run("garbage ca certificate rejected", func(t *testing.T) {
		_, err := ParseAnchor([]byte("not pem"), pubPEM)
		assert.ErrorIs(t, err, ErrBadCACertificate)
	})

	t.Run("garbage public key rejected", func(t *testing.T) {
		_, err := ParseAnchor(caPEM, []byte("not pem"))
		assert.ErrorIs(t, err, ErrBadCallbackKey)
	})

	t.Run("non-rsa public key rejected", func(t *testing.T) {
		_, err := ParseAnchor(caPEM, ed25519PubPEM(t))
		assert.ErrorIs(t, err, ErrBadCallbackKey)
	})
}

// testMaterial returns the packaged trust files, reusing them as known-good
// PEM inputs for ParseAnchor.
func testMaterial(t *testing.T) ([]byte, []byte) {
	t.Helper()

	caPEM, err := packaged.ReadFile("ca-ethwallet.crt")
	require.NoError(t, err)

	pubPEM, err := packaged.ReadFile("ethwallet-callback.pub")
	require.NoError(t, err)

	return caPEM, pubPEM
}

func ed25519PubPEM(t *testing.T) []byte {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}
