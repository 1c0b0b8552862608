package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/germanamz/almanac/pkg/providers/ollama"
)

var errUnhealthy = errors.New("ollama unavailable")

func healthCmd(ctx context.Context, args []string) error {
	var g globalOptions
	fs := newFlagSet("health", "Check that Ollama is reachable and the configured model is installed. Exits 1 when it is not.", &g)
	_ = fs.Parse(args)

	cfg, log, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	client := ollama.New(cfg.Ollama.ClientConfig(log))

	return runHealth(ctx, client, os.Stdout)
}

func runHealth(ctx context.Context, c *ollama.Client, w io.Writer) error {
	if c.CheckHealth(ctx) {
		fmt.Fprintf(w, "%s %s %s\n", okStyle.Render("✓"), c.Name, dimStyle.Render("available at "+c.BaseURL))
		return nil
	}

	fmt.Fprintf(w, "%s %s %s\n", failStyle.Render("✗"), c.Name, dimStyle.Render("not available at "+c.BaseURL))
	return errUnhealthy
}
