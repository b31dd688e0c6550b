// Package auth implements canonical request encoding and HMAC request
// signing for the ethwallet API.
//
// Every outbound request is authenticated with an HMAC-SHA256 tag computed
// over a canonical byte serialization of the request, proving possession of
// the shared API secret without transmitting it.
//
// # Canonical Form
//
// The signed message is a fixed, deterministic serialization:
//
//	<timestamp> "\n" <nonce> "\n" <method> "\n" <path> "\n" <body>
//
// where body is the parameter map encoded as &-joined key=value pairs with
// keys sorted lexicographically and values percent-encoded. Identical logical
// requests always produce identical bytes, independent of map iteration
// order. Newline separators keep adjacent fields unambiguous.
//
// # Signing Requests
//
// Build a Signer from a Credential and sign per-request:
//
//	cred, err := auth.NewCredential("my-key", "my-secret", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signer := auth.NewSigner(cred)
//
//	nonce, _ := auth.GenerateNonce()
//	tag, err := signer.Sign(http.MethodPost, "/v1/send", time.Now().Unix(), nonce, params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tag.Apply(req.Header)
//
// The Signer holds no mutable state and is safe for unrestricted concurrent
// use. The transport package wires signing into an http.RoundTripper so
// callers normally never invoke Sign directly.
package auth
