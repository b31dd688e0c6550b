package auth

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// supportedMethods are the HTTP methods a canonical request may carry.
var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// EncodeParams deterministically serializes a parameter map as &-joined
// key=value pairs. Keys are sorted lexicographically and both keys and
// values are percent-encoded with the net/url escaping table, so the same
// logical parameters always produce the same byte string regardless of map
// iteration order. An empty or nil map encodes to "".
//
// Nested parameter structures are unrepresentable: the map is flat by type,
// so callers must flatten (or reject) structured values before encoding.
func EncodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	values := make(url.Values, len(params))
	for k, v := range params {
		values.Set(k, v)
	}

	// url.Values.Encode sorts keys before joining.
	return values.Encode()
}

// NormalizePath produces the canonical form of a request path: a single
// leading slash and no trailing slash (the root path stays "/"). This keeps
// "/v1/send" and "v1/send/" from signing differently.
func NormalizePath(p string) string {
	if p == "" {
		return "/"
	}

	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}

	return p
}

// canonicalMessage builds the byte sequence that is signed:
//
//	<timestamp> "\n" <nonce> "\n" <method> "\n" <path> "\n" <body>
//
// The caller is responsible for validating the fields; this function is a
// pure serializer.
func canonicalMessage(timestamp int64, nonce, method, path, body string) []byte {
	var b strings.Builder
	b.Grow(len(nonce) + len(method) + len(path) + len(body) + 24)

	b.WriteString(strconv.FormatInt(timestamp, 10))
	b.WriteByte('\n')
	b.WriteString(nonce)
	b.WriteByte('\n')
	b.WriteString(method)
	b.WriteByte('\n')
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteString(body)

	return []byte(b.String())
}
