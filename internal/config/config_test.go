package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, defaultBaseURL)
	}
	if cfg.PopularCount != defaultPopularCount {
		t.Fatalf("PopularCount = %d, want %d", cfg.PopularCount, defaultPopularCount)
	}
	if cfg.FeedLimit != defaultFeedLimit {
		t.Fatalf("FeedLimit = %d, want %d", cfg.FeedLimit, defaultFeedLimit)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
base_url = "  http://10.0.0.5:9999  "
popular_count = 25
feed_limit = 100
`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "http://10.0.0.5:9999" {
		t.Fatalf("BaseURL = %q, want trimmed value", cfg.BaseURL)
	}
	if cfg.PopularCount != 25 {
		t.Fatalf("PopularCount = %d, want 25", cfg.PopularCount)
	}
	if cfg.FeedLimit != 100 {
		t.Fatalf("FeedLimit = %d, want 100", cfg.FeedLimit)
	}
}

func TestLoad_IgnoresNonPositiveLimits(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
popular_count = 0
feed_limit = -3
`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PopularCount != defaultPopularCount {
		t.Fatalf("PopularCount = %d, want default %d", cfg.PopularCount, defaultPopularCount)
	}
	if cfg.FeedLimit != defaultFeedLimit {
		t.Fatalf("FeedLimit = %d, want default %d", cfg.FeedLimit, defaultFeedLimit)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "http://override:8081")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`base_url = "http://from-file:8080"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "http://override:8081" {
		t.Fatalf("BaseURL = %q, want env override", cfg.BaseURL)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`base_url = [not toml`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted invalid TOML")
	} else if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("error = %v, want parse config wrap", err)
	}
}

func TestLoad_ResolvesTildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")

	dir := filepath.Join(home, ".config", "reeler")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	body := []byte(`base_url = "http://tilde.example:9090"`)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load("~/.config/reeler/config.toml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "http://tilde.example:9090" {
		t.Fatalf("BaseURL = %q, tilde path not resolved against HOME", cfg.BaseURL)
	}
}
