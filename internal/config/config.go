package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FLAGGY_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FLAGGY_PORT -> port, and a double
	// underscore nests: FLAGGY_SHOPIFY__DOMAIN -> shopify.domain.
	if err := k.Load(env.Provider("FLAGGY_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FLAGGY_")), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validAnonymousModes is the set of recognized anonymous_session values.
var validAnonymousModes = map[AnonymousSessionMode]bool{
	AnonymousRandom: true,
	AnonymousShared: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535, got %d", c.Port)
	}

	if c.Chat.EscalationThreshold < 1 {
		return fmt.Errorf("chat.escalation_threshold must be at least 1")
	}
	if c.Chat.HistoryLimit < 1 {
		return fmt.Errorf("chat.history_limit must be at least 1")
	}
	if c.Chat.IdleTimeoutMinutes < 1 {
		return fmt.Errorf("chat.idle_timeout_minutes must be at least 1")
	}
	if c.Chat.SweepSeconds < 1 {
		return fmt.Errorf("chat.sweep_seconds must be at least 1")
	}
	if c.Chat.AnonymousSession != "" && !validAnonymousModes[c.Chat.AnonymousSession] {
		return fmt.Errorf("invalid chat.anonymous_session %q: must be one of random, shared", c.Chat.AnonymousSession)
	}

	if c.Shopify.StorefrontToken != "" && c.Shopify.Domain == "" {
		return fmt.Errorf("shopify.domain is required when shopify.storefront_token is set")
	}
	if c.Shopify.TimeoutSeconds < 0 {
		return fmt.Errorf("shopify.timeout_seconds must be non-negative")
	}

	return nil
}

// CatalogEnabled reports whether the Storefront API is configured.
func (c *Config) CatalogEnabled() bool {
	return c.Shopify.Domain != "" && c.Shopify.StorefrontToken != ""
}
