package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/germanamz/almanac/pkg/config"
)

// wizardAnswers holds the raw form values.
type wizardAnswers struct {
	BaseURL     string
	Model       string
	Temperature string // empty = client default
	APIKey      string //nolint:gosec // env var reference, not a secret
	Placeholder string
}

func initCmd(args []string) error {
	var g globalOptions
	fs := newFlagSet("init", "Write a configuration file interactively.", &g)
	out := fs.String("output", defaultConfigFile, "path of the config file to write")
	force := fs.Bool("force", false, "overwrite an existing file")
	_ = fs.Parse(args)

	if err := loadDotEnv(g.envFile); err != nil {
		return err
	}

	if _, err := os.Stat(*out); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *out)
	}

	answers := defaultAnswers(config.Default())
	if err := runWizardForm(&answers); err != nil {
		return err
	}

	cfg, err := buildWizardConfig(answers)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, data, 0o600); err != nil {
		return fmt.Errorf("init: write config: %w", err)
	}

	fmt.Printf("%s wrote %s\n", okStyle.Render("✓"), *out)

	return nil
}

func defaultAnswers(cfg config.Config) wizardAnswers {
	a := wizardAnswers{
		BaseURL:     cfg.Ollama.BaseURL,
		Model:       cfg.Ollama.Model,
		Placeholder: cfg.Picker.Placeholder,
	}
	if cfg.Ollama.Temperature != nil {
		a.Temperature = strconv.FormatFloat(*cfg.Ollama.Temperature, 'f', -1, 64)
	}
	return a
}

func runWizardForm(a *wizardAnswers) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ollama base URL").
				Value(&a.BaseURL).
				Validate(requireNonEmpty("base URL")),
			huh.NewInput().
				Title("Model").
				Description("Any installed model whose name contains this value passes the health check").
				Value(&a.Model).
				Validate(requireNonEmpty("model")),
			huh.NewInput().
				Title("Temperature").
				Description("0 to 1; leave empty for the default (0.7)").
				Value(&a.Temperature).
				Validate(validateTemperature),
			huh.NewInput().
				Title("API key").
				Description("Only for servers behind an authenticating proxy, e.g. ${OLLAMA_API_KEY}").
				Value(&a.APIKey),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Month picker placeholder").
				Value(&a.Placeholder),
		),
	).Run()
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateTemperature(s string) error {
	_, err := parseTemperature(s)
	return err
}

func parseTemperature(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil //nolint:nilnil // empty means "use default"
	}

	t, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New("temperature must be a number")
	}
	if t < 0 || t > 1 {
		return nil, errors.New("temperature must be between 0 and 1")
	}

	return &t, nil
}

// buildWizardConfig converts form answers into a validated Config.
func buildWizardConfig(a wizardAnswers) (config.Config, error) {
	t, err := parseTemperature(a.Temperature)
	if err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{
		Ollama: config.OllamaConfig{
			BaseURL:     strings.TrimSpace(a.BaseURL),
			Model:       strings.TrimSpace(a.Model),
			Temperature: t,
			APIKey:      strings.TrimSpace(a.APIKey),
		},
		Picker: config.PickerConfig{
			Placeholder: a.Placeholder,
		},
		LogLevel: "info",
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
