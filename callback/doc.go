// Package callback verifies that inbound asynchronous notifications really
// originated from the ethwallet API server.
//
// Callbacks are signed by the server with a private key the client never
// holds; verification uses the packaged public key from the trust package
// (RSASSA-PKCS1-v1_5 with SHA-256, signature base64-encoded on the wire).
//
// Verify distinguishes two failure classes: an undecodable signature is a
// malformed envelope and returns an error, while a well-formed signature
// that does not match the payload is an expected outcome and simply
// returns false.
//
//	v, err := callback.NewVerifier(anchor)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := v.Verify(payload, signature)
//	if err != nil {
//	    // reject: envelope could not be decoded
//	}
//	if !ok {
//	    // reject: not authentic
//	}
//
// Handler wraps an http.Handler so that only verified notifications reach
// it.
package callback
