// Package trust loads the fixed cryptographic material packaged with the
// client: the pinned CA certificate used to validate the API server's TLS
// certificate, and the public key used to verify server-originated callback
// signatures.
//
// Both files are embedded in the binary and parsed exactly once. A parse
// failure is a startup-fatal condition surfaced by Default on every call,
// never a per-request error. The resulting Anchor is read-only and safe to
// share across all client instances in the process.
package trust
