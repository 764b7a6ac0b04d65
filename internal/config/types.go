package config

import "time"

// AnonymousSessionMode controls what happens when a chat request arrives
// without an X-Session-Id header.
type AnonymousSessionMode string

const (
	// AnonymousRandom mints a fresh session id per headerless request and
	// echoes it back so the client can persist it.
	AnonymousRandom AnonymousSessionMode = "random"
	// AnonymousShared funnels all headerless requests into one fixed
	// session. Kept for compatibility with the original widget behavior;
	// all anonymous users then share one failure counter.
	AnonymousShared AnonymousSessionMode = "shared"
)

// Config is the top-level flaggy configuration, corresponding to .flaggy.yml.
type Config struct {
	Port          int           `yaml:"port" koanf:"port"`
	AllowAll      bool          `yaml:"allow_all" koanf:"allow_all"`
	Origins       []string      `yaml:"origins" koanf:"origins"`
	DataDir       string        `yaml:"data_dir" koanf:"data_dir"`
	KnowledgeFile string        `yaml:"knowledge_file" koanf:"knowledge_file"`
	Shopify       ShopifyConfig `yaml:"shopify" koanf:"shopify"`
	Chat          ChatConfig    `yaml:"chat" koanf:"chat"`
}

// ShopifyConfig holds Storefront API access settings.
type ShopifyConfig struct {
	Domain          string `yaml:"domain" koanf:"domain"` // myshop.myshopify.com
	StorefrontToken string `yaml:"storefront_token" koanf:"storefront_token"`
	APIVersion      string `yaml:"api_version" koanf:"api_version"`
	TimeoutSeconds  int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ChatConfig holds assistant behavior settings.
type ChatConfig struct {
	EscalationThreshold int                  `yaml:"escalation_threshold" koanf:"escalation_threshold"`
	HistoryLimit        int                  `yaml:"history_limit" koanf:"history_limit"`
	IdleTimeoutMinutes  int                  `yaml:"idle_timeout_minutes" koanf:"idle_timeout_minutes"`
	SweepSeconds        int                  `yaml:"sweep_seconds" koanf:"sweep_seconds"`
	AnonymousSession    AnonymousSessionMode `yaml:"anonymous_session" koanf:"anonymous_session"`
}

// Timeout returns the Storefront API call timeout as a duration.
func (s ShopifyConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// IdleTimeout returns how long a session may sit idle before the sweeper
// evicts it.
func (c ChatConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// SweepInterval returns how often the background sweeper runs.
func (c ChatConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepSeconds) * time.Second
}
