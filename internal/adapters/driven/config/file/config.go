// Package file provides file-based configuration adapters: the TOML
// application config and the user-editable prompt store.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/marikraa/metropolia-first-year-helper/internal/core/domain"
	"github.com/marikraa/metropolia-first-year-helper/internal/logger"
)

// Environment variables consulted for provider credentials. Presence of
// the relevant key is the sole signal that a cloud provider is
// configured; an empty value means the provider degrades to absence.
const (
	EnvGroqAPIKey        = "GSK_API_KEY"
	EnvHuggingFaceAPIKey = "HF_API_TOKEN"
)

// DefaultWebAddr is the default listen address for the web front end.
const DefaultWebAddr = "127.0.0.1:8080"

// Config is the application configuration, read once at startup.
// Nothing re-reads it at runtime.
type Config struct {
	// Generator selects and configures the answer provider.
	Generator GeneratorConfig `toml:"generator"`

	// Web configures the web front end.
	Web WebConfig `toml:"web"`

	// TopicsFile optionally points at an alternative topic registry.
	// Empty selects the embedded default registry.
	TopicsFile string `toml:"topics_file"`
}

// GeneratorConfig selects and configures the answer provider.
type GeneratorConfig struct {
	// Provider is one of "groq", "huggingface", "ollama", or empty for
	// topics-only mode.
	Provider string `toml:"provider"`

	// Model overrides the provider's default model.
	Model string `toml:"model"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url"`

	// APIKey is the credential. The provider's environment variable
	// takes precedence over this value.
	APIKey string `toml:"api_key"`

	// TimeoutSecs bounds a single generation call.
	TimeoutSecs int `toml:"timeout_secs"`
}

// WebConfig configures the web front end.
type WebConfig struct {
	// Addr is the listen address (default: 127.0.0.1:8080).
	Addr string `toml:"addr"`
}

// DefaultPath returns the default config file location,
// ~/.helper/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".helper", "config.toml"), nil
}

// Load reads the config file at path. A missing file is not an error:
// it yields the zero config, which selects the embedded registry,
// topics-only mode and all defaults. If path is empty the default
// location is used.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug("no config file at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	logger.Debug("loaded config from %s", path)
	return cfg, nil
}

// GeneratorSettings resolves the generator configuration into domain
// settings, pulling cloud credentials from the environment. The
// environment takes precedence over the config file so deployments never
// need credentials on disk.
func (c Config) GeneratorSettings() (domain.GeneratorSettings, error) {
	settings := domain.GeneratorSettings{
		Provider: domain.GeneratorProvider(c.Generator.Provider),
		Model:    c.Generator.Model,
		BaseURL:  c.Generator.BaseURL,
		APIKey:   c.Generator.APIKey,
	}

	if c.Generator.TimeoutSecs > 0 {
		settings.Timeout = time.Duration(c.Generator.TimeoutSecs) * time.Second
	}

	if settings.Provider != "" && !settings.Provider.IsValid() {
		return settings, fmt.Errorf("%w: %q", domain.ErrUnsupportedProvider, c.Generator.Provider)
	}

	switch settings.Provider {
	case domain.ProviderGroq:
		if key := os.Getenv(EnvGroqAPIKey); key != "" {
			settings.APIKey = key
		}
	case domain.ProviderHuggingFace:
		if key := os.Getenv(EnvHuggingFaceAPIKey); key != "" {
			settings.APIKey = key
		}
	}

	return settings, nil
}

// WebAddr returns the configured listen address or the default.
func (c Config) WebAddr() string {
	if c.Web.Addr != "" {
		return c.Web.Addr
	}
	return DefaultWebAddr
}
