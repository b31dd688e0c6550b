// Package ethwallet is the client for the ethwallet remote wallet API.
//
// It ties the authentication core together: every request is HMAC-signed
// by the transport, the TLS session is pinned to the packaged CA
// certificate, and inbound callback notifications can be verified against
// the packaged server public key.
//
//	cfg := ethwallet.Config{
//	    APIKey:    "key",
//	    APISecret: "secret",
//	    BaseURL:   "https://api.ethwallet.example",
//	}
//
//	client, err := ethwallet.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	addr, err := client.CreateAddress(ctx)
//	tx, err := client.Send(ctx, "5", "0xabc")
//
// Configuration can also be loaded from a YAML file with LoadConfig.
//
// API-level failures (non-2xx responses) are returned as *APIError.
package ethwallet
