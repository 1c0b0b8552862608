// Package generation exposes a text generation client as MCP tools.
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/germanamz/almanac/pkg/providers/ollama"
	"github.com/germanamz/almanac/pkg/tools/mcpserver"
)

// Generator is the client surface the tools need.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, opts ...ollama.GenerateOption) (*ollama.Result, error)
	CheckHealth(ctx context.Context) bool
}

var _ Generator = (*ollama.Client)(nil)

// Tools returns the generate_content and check_health tools backed by g.
func Tools(g Generator) []mcpserver.Tool {
	return []mcpserver.Tool{
		{
			Name:        "generate_content",
			Description: "Generate text for a prompt with the local model server. Returns the model reply verbatim.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "Prompt sent to the model"},
					"model": {"type": "string", "description": "Model override"},
					"temperature": {"type": "number", "minimum": 0, "maximum": 1, "description": "Sampling temperature override"}
				},
				"required": ["prompt"]
			}`),
			Handler: generateHandler(g),
		},
		{
			Name:        "check_health",
			Description: "Report whether the model server is reachable and has the configured model installed.",
			InputSchema: json.RawMessage(`{"type":"object"}`),
			Handler:     healthHandler(g),
		},
	}
}

type generateInput struct {
	Prompt      string   `json:"prompt"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
}

func generateHandler(g Generator) mcpserver.Handler {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		var in generateInput
		if err := json.Unmarshal(input, &in); err != nil {
			return "", fmt.Errorf("generate_content: invalid input: %w", err)
		}

		if strings.TrimSpace(in.Prompt) == "" {
			return "", errors.New("generate_content: prompt is required")
		}

		var opts []ollama.GenerateOption
		if in.Model != "" {
			opts = append(opts, ollama.WithModel(in.Model))
		}
		if in.Temperature != nil {
			opts = append(opts, ollama.WithTemperature(*in.Temperature))
		}

		res, err := g.GenerateContent(ctx, in.Prompt, opts...)
		if err != nil {
			return "", err
		}

		return res.Response.Text(), nil
	}
}

func healthHandler(g Generator) mcpserver.Handler {
	return func(ctx context.Context, _ json.RawMessage) (string, error) {
		if g.CheckHealth(ctx) {
			return "healthy", nil
		}
		return "unavailable", nil
	}
}
