package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:     8080,
		AllowAll: false,
		DataDir:  "data",
		Shopify: ShopifyConfig{
			APIVersion:     "2024-07",
			TimeoutSeconds: 5,
		},
		Chat: ChatConfig{
			EscalationThreshold: 2,
			HistoryLimit:        5,
			IdleTimeoutMinutes:  30,
			SweepSeconds:        300,
			AnonymousSession:    AnonymousRandom,
		},
	}
}
