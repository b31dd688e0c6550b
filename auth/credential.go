package auth

// DefaultAPIVersion is the API version sent when a Credential does not
// specify one.
const DefaultAPIVersion = "2016-05-17"

// Secret holds the API secret. Its formatting methods render a fixed
// placeholder so the raw value cannot leak through logs, error messages,
// or serialized output. Use Bytes to obtain the raw material for signing.
type Secret string

// String implements fmt.Stringer.
func (Secret) String() string { return "[redacted]" }

// GoString implements fmt.GoStringer, covering the %#v verb.
func (Secret) GoString() string { return `auth.Secret("[redacted]")` }

// MarshalJSON renders the placeholder, never the secret.
func (Secret) MarshalJSON() ([]byte, error) { return []byte(`"[redacted]"`), nil }

// Bytes returns the raw secret bytes for HMAC computation.
func (s Secret) Bytes() []byte { return []byte(s) }

// Credential identifies an API key holder. It is immutable after
// construction and shared read-only by any number of in-flight requests.
type Credential struct {
	apiKey     string
	apiSecret  Secret
	apiVersion string
}

// NewCredential validates and builds a Credential. An empty key or secret
// is a hard construction-time failure. When apiVersion is empty,
// DefaultAPIVersion is used.
func NewCredential(apiKey, apiSecret, apiVersion string) (Credential, error) {
	if apiKey == "" {
		return Credential{}, ErrMissingAPIKey
	}

	if apiSecret == "" {
		return Credential{}, ErrMissingSecret
	}

	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	return Credential{
		apiKey:     apiKey,
		apiSecret:  Secret(apiSecret),
		apiVersion: apiVersion,
	}, nil
}

// APIKey returns the public key identifier.
func (c Credential) APIKey() string { return c.apiKey }

// APIVersion returns the API version tag sent with each request.
func (c Credential) APIVersion() string { return c.apiVersion }
