package ethwallet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/absortium/ethwallet-api/auth"
	"github.com/absortium/ethwallet-api/callback"
	"github.com/absortium/ethwallet-api/transport"
	"github.com/absortium/ethwallet-api/trust"
)

// userAgent identifies this client to the server.
const userAgent = "ethwallet/go/3.0"

// Client talks to the ethwallet API. All methods are safe for concurrent
// use; the client holds no mutable state after construction.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	verifier *callback.Verifier
}

// New validates cfg and builds a Client. Credential and base URL problems
// are construction-time failures; nothing is retried or downgraded later.
// Certificate verification uses the packaged pinned CA unless
// cfg.Insecure explicitly opts out.
func New(cfg Config) (*Client, error) {
	cred, err := auth.NewCredential(cfg.APIKey, cfg.APISecret, cfg.APIVersion)
	if err != nil {
		return nil, err
	}

	validated, err := transport.ValidateBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(validated)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", transport.ErrInvalidBaseURL, err)
	}

	anchor, err := trust.Default()
	if err != nil {
		return nil, err
	}

	var policy *transport.Policy
	if cfg.Insecure {
		policy = transport.NewInsecurePolicy()
	} else {
		policy, err = transport.NewPolicy(anchor)
		if err != nil {
			return nil, err
		}
	}

	rt, err := transport.New(policy, auth.NewSigner(cred))
	if err != nil {
		return nil, err
	}

	verifier, err := callback.NewVerifier(anchor)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:  base,
		http:     &http.Client{Transport: rt},
		verifier: verifier,
	}, nil
}

// CreateAddress requests a new deposit address.
func (c *Client) CreateAddress(ctx context.Context) (*Address, error) {
	var addr Address
	if err := c.post(ctx, "/v1/addresses", nil, &addr); err != nil {
		return nil, err
	}

	return &addr, nil
}

// Send transfers amount to the given destination address.
func (c *Client) Send(ctx context.Context, amount, address string) (*Transaction, error) {
	params := map[string]string{
		"amount":  amount,
		"address": address,
	}

	var tx Transaction
	if err := c.post(ctx, "/v1/send", params, &tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

// VerifyCallback reports whether an inbound notification payload carries a
// valid server signature. See callback.Verifier.Verify for the error
// contract.
func (c *Client) VerifyCallback(payload []byte, signature string) (bool, error) {
	return c.verifier.Verify(payload, signature)
}

// post issues a signed POST and decodes the JSON response into out.
func (c *Client) post(ctx context.Context, path string, params map[string]string, out any) error {
	target := c.baseURL.JoinPath(path).String()

	var bodyReader io.Reader
	if len(params) > 0 {
		bodyReader = strings.NewReader(auth.EncodeParams(params))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bodyReader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// decodeResponse maps non-2xx statuses to *APIError and decodes successful
// bodies into out.
func decodeResponse(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		// Best effort: the body may not be structured.
		_ = json.Unmarshal(data, apiErr)

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("ethwallet: decode response: %w", err)
	}

	return nil
}
