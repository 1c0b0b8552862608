// Package config loads almanac settings from YAML files and the environment.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/germanamz/almanac/pkg/monthpicker"
	"github.com/germanamz/almanac/pkg/providers/ollama"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Default.
const (
	EnvBaseURL = "OLLAMA_BASE_URL"
	EnvModel   = "OLLAMA_MODEL"
	EnvAPIKey  = "OLLAMA_API_KEY" //nolint:gosec // variable name, not a secret
)

// Config is the top-level configuration.
type Config struct {
	Ollama   OllamaConfig `yaml:"ollama"`
	Picker   PickerConfig `yaml:"picker"`
	LogLevel string       `yaml:"log_level"`
}

// OllamaConfig describes the local generation server.
type OllamaConfig struct {
	BaseURL     string   `yaml:"base_url"`
	Model       string   `yaml:"model"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	APIKey      string   `yaml:"api_key,omitempty"` //nolint:gosec // configuration field, not a hardcoded secret
	// Headers are added to every request, e.g. for a proxy in front of the server.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// PickerConfig holds month picker presentation settings.
type PickerConfig struct {
	Placeholder string `yaml:"placeholder"`
	Width       int    `yaml:"width,omitempty"`
}

// Default returns the built-in configuration with OLLAMA_* environment
// variables applied.
func Default() Config {
	return Config{
		Ollama: OllamaConfig{
			BaseURL: getEnv(EnvBaseURL, ollama.DefaultBaseURL),
			Model:   getEnv(EnvModel, ollama.DefaultModel),
			APIKey:  os.Getenv(EnvAPIKey),
		},
		Picker: PickerConfig{
			Placeholder: monthpicker.DefaultPlaceholder,
		},
		LogLevel: "info",
	}
}

// LoadConfig reads a YAML file on top of Default. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing, so
// secrets can live in a .env file rather than the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Ollama.BaseURL == "" {
		return fmt.Errorf("config: ollama.base_url is required")
	}

	u, err := url.Parse(c.Ollama.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: ollama.base_url %q is not an absolute URL", c.Ollama.BaseURL)
	}

	if c.Ollama.Model == "" {
		return fmt.Errorf("config: ollama.model is required")
	}

	if t := c.Ollama.Temperature; t != nil && (*t < 0 || *t > 1) {
		return fmt.Errorf("config: ollama.temperature %v out of range [0, 1]", *t)
	}

	if c.Picker.Width < 0 {
		return fmt.Errorf("config: picker.width must not be negative")
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level returns the slog level named by LogLevel. Empty means info.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// ClientConfig converts the Ollama settings into a client configuration.
func (c OllamaConfig) ClientConfig(log *slog.Logger) ollama.Config {
	return ollama.Config{
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		Temperature: c.Temperature,
		APIKey:      c.APIKey,
		Headers:     c.Headers,
		Logger:      log,
	}
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}
