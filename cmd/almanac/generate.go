package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/germanamz/almanac/pkg/modeladapter/usage"
	"github.com/germanamz/almanac/pkg/providers/ollama"
)

// generator is the client surface used by the generate command.
type generator interface {
	GenerateContent(ctx context.Context, prompt string, opts ...ollama.GenerateOption) (*ollama.Result, error)
	UsageTracker() *usage.Tracker
}

func generateCmd(ctx context.Context, args []string) error {
	var g globalOptions
	fs := newFlagSet("generate", "Send a prompt to the local Ollama server. With no prompt arguments the prompt is read from stdin.", &g)
	model := fs.String("model", "", "model override")
	temperature := fs.Float64("temperature", -1, "sampling temperature override in [0, 1]")
	raw := fs.Bool("raw", false, "print the reply without markdown rendering")
	width := fs.Int("width", 100, "word wrap width for rendered output")
	stats := fs.Bool("stats", false, "print token counts and generation speed to stderr")
	_ = fs.Parse(args)

	cfg, log, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}

	prompt, err := readPrompt(fs.Args(), os.Stdin)
	if err != nil {
		return err
	}

	var opts []ollama.GenerateOption
	if *model != "" {
		opts = append(opts, ollama.WithModel(*model))
	}
	if *temperature >= 0 {
		opts = append(opts, ollama.WithTemperature(*temperature))
	}

	client := ollama.New(cfg.Ollama.ClientConfig(log))

	ro := renderOptions{raw: *raw, width: *width}
	if *stats {
		ro.stats = os.Stderr
	}

	return runGenerate(ctx, client, prompt, opts, ro, os.Stdout)
}

type renderOptions struct {
	raw   bool
	width int
	stats io.Writer // nil disables the stats line.
}

func runGenerate(ctx context.Context, g generator, prompt string, opts []ollama.GenerateOption, ro renderOptions, w io.Writer) error {
	res, err := g.GenerateContent(ctx, prompt, opts...)
	if err != nil {
		return err
	}

	text := res.Response.Text()
	if !ro.raw {
		text = renderMarkdown(text, ro.width)
	}

	if _, err := fmt.Fprintln(w, text); err != nil {
		return err
	}

	if ro.stats != nil {
		if eval, ok := g.UsageTracker().Last(); ok {
			_, err = fmt.Fprintln(ro.stats, dimStyle.Render(formatEval(eval)))
		}
	}

	return err
}

func formatEval(e usage.Eval) string {
	return fmt.Sprintf("%d tokens (%d prompt, %d response) in %s, %.1f tokens/s",
		e.Tokens(), e.PromptTokens, e.ResponseTokens, e.Duration.Round(time.Millisecond), e.TokensPerSecond())
}

// readPrompt joins args, or reads r when args are empty or a single "-".
func readPrompt(args []string, r io.Reader) (string, error) {
	var prompt string
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read prompt: %w", err)
		}
		prompt = string(data)
	} else {
		prompt = strings.Join(args, " ")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt is empty")
	}

	return prompt, nil
}
