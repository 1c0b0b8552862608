package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/germanamz/almanac/pkg/monthpicker"
	"github.com/germanamz/almanac/pkg/providers/ollama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
ollama:
  base_url: http://gpu-box:11434
  model: qwen2.5:7b
  temperature: 0.2
picker:
  placeholder: Billing month
  width: 30
log_level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvModel, "")
	t.Setenv(EnvAPIKey, "")
}

func TestDefault(t *testing.T) {
	clearEnv(t)

	cfg := Default()
	assert.Equal(t, ollama.DefaultBaseURL, cfg.Ollama.BaseURL)
	assert.Equal(t, ollama.DefaultModel, cfg.Ollama.Model)
	assert.Nil(t, cfg.Ollama.Temperature)
	assert.Equal(t, monthpicker.DefaultPlaceholder, cfg.Picker.Placeholder)
	assert.NoError(t, cfg.Validate())
}

func TestDefault_Env(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://remote:11434")
	t.Setenv(EnvModel, "mistral")
	t.Setenv(EnvAPIKey, "k")

	cfg := Default()
	assert.Equal(t, "http://remote:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "mistral", cfg.Ollama.Model)
	assert.Equal(t, "k", cfg.Ollama.APIKey)
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "http://gpu-box:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "qwen2.5:7b", cfg.Ollama.Model)
	require.NotNil(t, cfg.Ollama.Temperature)
	assert.InDelta(t, 0.2, *cfg.Ollama.Temperature, 1e-9)
	assert.Equal(t, "Billing month", cfg.Picker.Placeholder)
	assert.Equal(t, 30, cfg.Picker.Width)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeConfig(t, "ollama:\n  model: phi3\n"))
	require.NoError(t, err)

	assert.Equal(t, ollama.DefaultBaseURL, cfg.Ollama.BaseURL)
	assert.Equal(t, "phi3", cfg.Ollama.Model)
	assert.Equal(t, monthpicker.DefaultPlaceholder, cfg.Picker.Placeholder)
}

func TestLoadConfig_ExpandsEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALMANAC_TEST_KEY", "from-env")

	cfg, err := LoadConfig(writeConfig(t, "ollama:\n  api_key: ${ALMANAC_TEST_KEY}\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Ollama.APIKey)
}

func TestLoadConfig_Headers(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(writeConfig(t, "ollama:\n  headers:\n    X-Tenant: team-a\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"X-Tenant": "team-a"}, cfg.Ollama.Headers)
	assert.Equal(t, cfg.Ollama.Headers, cfg.Ollama.ClientConfig(nil).Headers)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/no/such/file.yaml")
	assert.ErrorContains(t, err, "config: load")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "ollama: [unclosed"))
	assert.ErrorContains(t, err, "config: parse")
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	hot := 1.5
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty base url", func(c *Config) { c.Ollama.BaseURL = "" }, "base_url is required"},
		{"relative base url", func(c *Config) { c.Ollama.BaseURL = "localhost" }, "not an absolute URL"},
		{"empty model", func(c *Config) { c.Ollama.Model = "" }, "model is required"},
		{"temperature", func(c *Config) { c.Ollama.Temperature = &hot }, "out of range"},
		{"width", func(c *Config) { c.Picker.Width = -1 }, "width"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestLevel(t *testing.T) {
	lvl, err := Config{LogLevel: "warn"}.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	lvl, err = Config{}.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestMarshal_RoundTrip(t *testing.T) {
	clearEnv(t)

	temp := 0.4
	cfg := Default()
	cfg.Ollama.Model = "llama3.1"
	cfg.Ollama.Temperature = &temp

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "model: llama3.1")

	loaded, err := LoadConfig(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestClientConfig(t *testing.T) {
	temp := 0.3
	oc := OllamaConfig{BaseURL: "http://x:1", Model: "m", Temperature: &temp, APIKey: "k", Headers: map[string]string{"a": "b"}}

	cc := oc.ClientConfig(nil)
	assert.Equal(t, "http://x:1", cc.BaseURL)
	assert.Equal(t, "m", cc.Model)
	assert.Equal(t, &temp, cc.Temperature)
	assert.Equal(t, "k", cc.APIKey)
	assert.Equal(t, map[string]string{"a": "b"}, cc.Headers)
}
