package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/germanamz/almanac/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_MissingIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_Loads(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ALMANAC_DOTENV_TEST=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ALMANAC_DOTENV_TEST") })

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("ALMANAC_DOTENV_TEST"))
}

func TestResolveConfigPath_Explicit(t *testing.T) {
	assert.Equal(t, "custom.yaml", resolveConfigPath("custom.yaml"))
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvModel, "")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestSetup_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ollama:\n  model: phi3\nlog_level: warn\n"), 0o600))

	g := globalOptions{configPath: path, envFile: filepath.Join(dir, ".env")}
	cfg, log, err := g.setup(os.Stderr)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, "phi3", cfg.Ollama.Model)
}

func TestSetup_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "almanac.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ollama:\n  temperature: 3\n"), 0o600))

	g := globalOptions{configPath: path}
	_, _, err := g.setup(os.Stderr)
	assert.ErrorContains(t, err, "temperature")
}

func TestRenderMarkdown_KeepsText(t *testing.T) {
	out := renderMarkdown("# Heading\n\nsome body text", 80)
	assert.Contains(t, out, "Heading")
	assert.Contains(t, out, "some body text")
}
