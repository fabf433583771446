package console

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds console settings loaded from a yaml file, with environment
// overrides for the API URL.
type Config struct {
	APIBaseURL string
	TokenPath  string
	CacheTTL   time.Duration
}

// fileConfig mirrors Config on disk. The TTL is a duration string such
// as "30s" or "2m".
type fileConfig struct {
	APIBaseURL string `yaml:"api_base_url"`
	TokenPath  string `yaml:"token_path"`
	CacheTTL   string `yaml:"cache_ttl"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: "http://localhost:8080",
		CacheTTL:   30 * time.Second,
	}
}

// LoadConfig reads a yaml config file, filling unset fields with
// defaults. The STAYHUB_API_URL environment variable wins over both.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		var raw fileConfig
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		if raw.APIBaseURL != "" {
			cfg.APIBaseURL = raw.APIBaseURL
		}
		if raw.TokenPath != "" {
			cfg.TokenPath = raw.TokenPath
		}
		if raw.CacheTTL != "" {
			ttl, err := time.ParseDuration(raw.CacheTTL)
			if err != nil {
				return nil, fmt.Errorf("invalid cache_ttl %q: %w", raw.CacheTTL, err)
			}
			cfg.CacheTTL = ttl
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if url := os.Getenv("STAYHUB_API_URL"); url != "" {
		cfg.APIBaseURL = url
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	return cfg, nil
}
