package main

import (
	"testing"

	"github.com/germanamz/almanac/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemperature(t *testing.T) {
	got, err := parseTemperature("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseTemperature(" 0.25 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 0.25, *got, 1e-9)

	_, err = parseTemperature("hot")
	assert.EqualError(t, err, "temperature must be a number")

	_, err = parseTemperature("1.1")
	assert.EqualError(t, err, "temperature must be between 0 and 1")
}

func TestRequireNonEmpty(t *testing.T) {
	check := requireNonEmpty("model")
	assert.EqualError(t, check("  "), "model is required")
	assert.NoError(t, check("llama3.2"))
}

func TestBuildWizardConfig(t *testing.T) {
	cfg, err := buildWizardConfig(wizardAnswers{
		BaseURL:     " http://localhost:11434 ",
		Model:       "llama3.2",
		Temperature: "0",
		Placeholder: "Pick a month",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	require.NotNil(t, cfg.Ollama.Temperature)
	assert.Zero(t, *cfg.Ollama.Temperature)
	assert.Equal(t, "Pick a month", cfg.Picker.Placeholder)
}

func TestBuildWizardConfig_Invalid(t *testing.T) {
	_, err := buildWizardConfig(wizardAnswers{BaseURL: "not a url", Model: "m"})
	assert.ErrorContains(t, err, "base_url")
}

func TestDefaultAnswers(t *testing.T) {
	temp := 0.5
	cfg := config.Default()
	cfg.Ollama.Temperature = &temp
	cfg.Ollama.APIKey = "secret"

	a := defaultAnswers(cfg)
	assert.Equal(t, cfg.Ollama.BaseURL, a.BaseURL)
	assert.Equal(t, "0.5", a.Temperature)
	assert.Empty(t, a.APIKey)
}
