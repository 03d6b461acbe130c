package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CREDENTIAL_SOURCE", "")
	t.Setenv("GITHUB_PAGE_SIZE", "")
	t.Setenv("GITHUB_API_URL", "")
	t.Setenv("NAV_SETTLE_DELAY_MS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GitHub.PageSize != 100 {
		t.Errorf("PageSize = %v, want 100", cfg.GitHub.PageSize)
	}
	if cfg.GitHub.APIURL != "https://api.github.com" {
		t.Errorf("APIURL = %v", cfg.GitHub.APIURL)
	}
	if cfg.Credential.Source != CredentialSourceEnv {
		t.Errorf("Source = %v, want env", cfg.Credential.Source)
	}
	if cfg.SettleDelay() != 300*time.Millisecond {
		t.Errorf("SettleDelay = %v, want 300ms", cfg.SettleDelay())
	}
}

func TestLoadTrimsAPIURL(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GitHub.APIURL != "https://ghe.example.com/api/v3" {
		t.Errorf("APIURL = %v", cfg.GitHub.APIURL)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			GitHub:     GitHubConfig{APIURL: "https://api.github.com", WebHost: "github.com", PageSize: 100},
			Credential: CredentialConfig{Source: CredentialSourceEnv},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"page size zero", func(c *Config) { c.GitHub.PageSize = 0 }, true},
		{"page size too large", func(c *Config) { c.GitHub.PageSize = 101 }, true},
		{"negative settle delay", func(c *Config) { c.Navigation.SettleDelayMs = -1 }, true},
		{"unknown source", func(c *Config) { c.Credential.Source = "vault" }, true},
		{"database without dsn", func(c *Config) { c.Credential.Source = CredentialSourceDatabase }, true},
		{"database complete", func(c *Config) {
			c.Credential.Source = CredentialSourceDatabase
			c.Database.DSN = "postgres://localhost/gotofork"
			c.Credential.EncryptionKey = "key"
			c.Credential.JWTSecret = "secret"
		}, false},
		{"database without secret", func(c *Config) {
			c.Credential.Source = CredentialSourceDatabase
			c.Database.DSN = "postgres://localhost/gotofork"
			c.Credential.EncryptionKey = "key"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
