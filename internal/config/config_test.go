package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.Chat.EscalationThreshold != 2 {
		t.Errorf("expected default escalation_threshold 2, got %d", cfg.Chat.EscalationThreshold)
	}
	if cfg.Chat.HistoryLimit != 5 {
		t.Errorf("expected default history_limit 5, got %d", cfg.Chat.HistoryLimit)
	}
	if cfg.Chat.AnonymousSession != AnonymousRandom {
		t.Errorf("expected default anonymous_session %q, got %q", AnonymousRandom, cfg.Chat.AnonymousSession)
	}
	if cfg.Shopify.Timeout() != 5*time.Second {
		t.Errorf("expected default shopify timeout 5s, got %v", cfg.Shopify.Timeout())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.flaggy.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.Shopify.Domain = "example.myshopify.com"
	original.Shopify.StorefrontToken = "tok"
	original.Chat.EscalationThreshold = 3
	original.KnowledgeFile = "intents.yml"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Shopify.Domain != original.Shopify.Domain {
		t.Errorf("shopify.domain: got %q, want %q", loaded.Shopify.Domain, original.Shopify.Domain)
	}
	if loaded.Chat.EscalationThreshold != original.Chat.EscalationThreshold {
		t.Errorf("escalation_threshold: got %d, want %d", loaded.Chat.EscalationThreshold, original.Chat.EscalationThreshold)
	}
	if loaded.KnowledgeFile != original.KnowledgeFile {
		t.Errorf("knowledge_file: got %q, want %q", loaded.KnowledgeFile, original.KnowledgeFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override port via env var.
	os.Setenv("FLAGGY_PORT", "3001")
	defer os.Unsetenv("FLAGGY_PORT")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 3001 {
		t.Errorf("env override failed: got %d, want 3001", loaded.Port)
	}
}

func TestLoadNestedEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("FLAGGY_SHOPIFY__DOMAIN", "env.myshopify.com")
	defer os.Unsetenv("FLAGGY_SHOPIFY__DOMAIN")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Shopify.Domain != "env.myshopify.com" {
		t.Errorf("nested env override failed: got %q", loaded.Shopify.Domain)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateBadPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for port 0")
	}
}

func TestValidateBadThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chat.EscalationThreshold = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for escalation_threshold 0")
	}
}

func TestValidateBadAnonymousMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chat.AnonymousSession = "per-ip"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown anonymous_session mode")
	}
}

func TestValidateTokenWithoutDomain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shopify.StorefrontToken = "tok"
	cfg.Shopify.Domain = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for token without domain")
	}
}

func TestCatalogEnabled(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.CatalogEnabled() {
		t.Error("catalog should be disabled with no credentials")
	}
	cfg.Shopify.Domain = "example.myshopify.com"
	cfg.Shopify.StorefrontToken = "tok"
	if !cfg.CatalogEnabled() {
		t.Error("catalog should be enabled with domain and token")
	}
}
