// Package transport enforces the security properties of the connection to
// the ethwallet API and signs every outbound request.
//
// A Policy decides how the TLS session to the API is validated. The normal
// policy pins the packaged CA certificate as the only accepted root, so a
// compromised system trust store cannot be used to impersonate the server.
// Plaintext base URLs are rejected outright by ValidateBaseURL.
//
// Disabling verification is possible only through NewInsecurePolicy, a
// separately named constructor intended for local test servers. There is no
// flag on the normal constructor that silently downgrades security.
//
// Transport is an http.RoundTripper that stamps each request with a fresh
// timestamp and nonce, signs it with auth.Signer, and attaches the
// authentication headers before delegating to the pinned base transport:
//
//	policy := transport.NewPolicy(anchor)
//
//	client := &http.Client{
//	    Transport: transport.New(policy, signer),
//	}
package transport
