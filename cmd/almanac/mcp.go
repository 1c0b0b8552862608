package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/germanamz/almanac/pkg/modeladapter/usage"
	"github.com/germanamz/almanac/pkg/providers/ollama"
	"github.com/germanamz/almanac/pkg/tools/generation"
	"github.com/germanamz/almanac/pkg/tools/mcpserver"
)

func mcpCmd(ctx context.Context, args []string) error {
	var g globalOptions
	fs := newFlagSet("mcp", "Serve generate_content and check_health tools over MCP on stdin/stdout.", &g)
	_ = fs.Parse(args)

	// stdout carries the protocol; logs go to stderr.
	cfg, log, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	client := ollama.New(cfg.Ollama.ClientConfig(log))

	srv := mcpserver.New("almanac", version, log)
	srv.Register(generation.Tools(client)...)

	log.Info("mcp server started", "model", client.Name, "base_url", client.BaseURL)

	err = srv.Serve(ctx, os.Stdin, os.Stdout)
	logSessionUsage(log, client.UsageTracker())

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

// logSessionUsage reports the generations served during an MCP session.
func logSessionUsage(log *slog.Logger, tr *usage.Tracker) {
	total := tr.Total()
	log.Info("mcp server stopped",
		"generations", tr.Count(),
		"prompt_tokens", total.PromptTokens,
		"response_tokens", total.ResponseTokens,
		"tokens", total.Tokens(),
	)
}
