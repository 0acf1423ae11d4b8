package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/dkozyrev/reeler/internal/paths"
)

// Config captures the fields reeler needs to reach the film service.
type Config struct {
	BaseURL      string
	PopularCount int
	FeedLimit    int
}

const (
	defaultConfigPath   = "~/.config/reeler/config.toml"
	defaultBaseURL      = "http://127.0.0.1:8080"
	defaultPopularCount = 10
	defaultFeedLimit    = 50

	// EnvBaseURL overrides base_url; a .env file in the working directory
	// is honored too.
	EnvBaseURL = "REELER_BASE_URL"
)

// Load locates and parses the reeler config, falling back to defaults when
// missing. Environment takes precedence over the file for the base URL.
func Load(path string) (Config, error) {
	resolved, err := paths.Resolve(path, defaultConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:      defaultBaseURL,
		PopularCount: defaultPopularCount,
		FeedLimit:    defaultFeedLimit,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL      string `toml:"base_url"`
		PopularCount int    `toml:"popular_count"`
		FeedLimit    int    `toml:"feed_limit"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if url := strings.TrimSpace(raw.BaseURL); url != "" {
		cfg.BaseURL = url
	}
	if raw.PopularCount > 0 {
		cfg.PopularCount = raw.PopularCount
	}
	if raw.FeedLimit > 0 {
		cfg.FeedLimit = raw.FeedLimit
	}

	return applyEnv(cfg), nil
}

// applyEnv layers the environment over the file. godotenv never overrides
// variables already exported, matching its usual load order.
func applyEnv(cfg Config) Config {
	_ = godotenv.Load()
	if url := strings.TrimSpace(os.Getenv(EnvBaseURL)); url != "" {
		cfg.BaseURL = url
	}
	return cfg
}
