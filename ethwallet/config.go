package ethwallet

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything needed to construct a Client. Zero values for
// APIVersion fall back to the current default; everything else is
// required.
type Config struct {
	// APIKey identifies the credential to the server.
	APIKey string `yaml:"api_key"`

	// APISecret is the shared signing secret. Never logged or serialized
	// by the client.
	APISecret string `yaml:"api_secret"`

	// BaseURL is the API base endpoint. Must use https.
	BaseURL string `yaml:"base_url"`

	// APIVersion overrides the default API version tag.
	APIVersion string `yaml:"api_version"`

	// Insecure disables server certificate verification. Only honored for
	// local test servers; leaving it false keeps the pinned CA policy.
	Insecure bool `yaml:"insecure"`
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ethwallet: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ethwallet: parse config: %w", err)
	}

	return cfg, nil
}
