package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/germanamz/almanac/pkg/config"
	"github.com/joho/godotenv"
)

// defaultConfigFile is used when --config is not given and the file exists.
const defaultConfigFile = "almanac.yaml"

type globalOptions struct {
	configPath string
	envFile    string
	verbose    bool
}

func (g *globalOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&g.configPath, "config", "", "path to configuration file (default: "+defaultConfigFile+" if present)")
	fs.StringVar(&g.envFile, "env", ".env", "path to .env file (ignored if missing)")
	fs.BoolVar(&g.verbose, "verbose", false, "enable debug logging")
}

// setup loads the .env file and configuration and builds the logger that
// writes to logOut.
func (g *globalOptions) setup(logOut io.Writer) (config.Config, *slog.Logger, error) {
	if err := loadDotEnv(g.envFile); err != nil {
		return config.Config{}, nil, err
	}

	cfg, err := loadConfig(resolveConfigPath(g.configPath))
	if err != nil {
		return config.Config{}, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	lvl, _ := cfg.Level()
	if g.verbose {
		lvl = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: lvl}))

	return cfg, log, nil
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// resolveConfigPath returns the explicit path, else the default file when it
// exists, else "" meaning built-in defaults.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadConfig(path)
}

// renderMarkdown converts markdown text to terminal-formatted output. It falls
// back to the plain text when the renderer is unavailable.
func renderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}
