// Package ollama provides a client for a local Ollama server whose replies
// mirror the hosted generative-model client shape: a result holding a
// response with a Text accessor.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/germanamz/almanac/pkg/modeladapter"
	"github.com/germanamz/almanac/pkg/modeladapter/usage"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultBaseURL     = "http://localhost:11434"
	DefaultModel       = "llama3.2"
	DefaultTemperature = 0.7
)

// ErrGenerate is wrapped by every error returned from GenerateContent.
var ErrGenerate = errors.New("failed to generate content")

// Texter is implemented by generation replies.
type Texter interface {
	Text() string
}

// Result is the adapted reply of a generation call.
type Result struct {
	Response Texter
}

// ContentGenerator generates text for a prompt.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (*Result, error)
}

var (
	_ ContentGenerator = (*GenerativeModel)(nil)
	_ Texter           = textReply("")
)

// Config configures a Client. Zero fields fall back to the package defaults.
type Config struct {
	BaseURL     string
	Model       string
	Temperature *float64 // nil means DefaultTemperature.
	APIKey      string   // Sent as a bearer token when set (for proxied servers).
	Headers     map[string]string
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

// Client talks to the Ollama HTTP API. Calls are stateless one-shot requests
// with no retries.
type Client struct {
	modeladapter.ModelAdapter

	log *slog.Logger
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		ModelAdapter: modeladapter.New(baseURL, modeladapter.Auth{Key: cfg.APIKey}, cfg.HTTPClient),
		log:          cfg.Logger,
	}
	c.Headers = cfg.Headers

	c.Name = cfg.Model
	if c.Name == "" {
		c.Name = DefaultModel
	}

	c.Temperature = DefaultTemperature
	if cfg.Temperature != nil {
		c.Temperature = *cfg.Temperature
	}

	if c.log == nil {
		c.log = slog.Default()
	}

	return c
}

type generateOptions struct {
	model       string
	temperature *float64
}

// GenerateOption overrides a client default for a single call.
type GenerateOption func(*generateOptions)

// WithModel overrides the model for one call.
func WithModel(model string) GenerateOption {
	return func(o *generateOptions) { o.model = model }
}

// WithTemperature overrides the sampling temperature for one call. Zero is a
// valid override.
func WithTemperature(t float64) GenerateOption {
	return func(o *generateOptions) { o.temperature = &t }
}

// GenerateContent sends prompt to /api/generate with streaming disabled and
// returns the reply text unmodified. Any failure is logged and returned
// wrapped in ErrGenerate.
func (c *Client) GenerateContent(ctx context.Context, prompt string, opts ...GenerateOption) (*Result, error) {
	o := generateOptions{model: c.Name}
	for _, opt := range opts {
		opt(&o)
	}

	temperature := c.Temperature
	if o.temperature != nil {
		temperature = *o.temperature
	}

	resp, err := c.generate(ctx, generateRequest{
		Model:   o.model,
		Prompt:  prompt,
		Stream:  false,
		Options: generateParams{Temperature: temperature},
	})
	if err != nil {
		c.log.ErrorContext(ctx, "ollama generate failed", "model", o.model, "error", err)
		return nil, fmt.Errorf("ollama: %w: %w", ErrGenerate, err)
	}

	c.Usage.Add(usage.Eval{
		PromptTokens:   resp.PromptEvalCount,
		ResponseTokens: resp.EvalCount,
		Duration:       time.Duration(resp.TotalDuration),
	})

	c.log.DebugContext(ctx, "ollama generate finished",
		"model", o.model,
		"prompt_tokens", resp.PromptEvalCount,
		"response_tokens", resp.EvalCount,
	)

	return &Result{Response: textReply(resp.Response)}, nil
}

func (c *Client) generate(ctx context.Context, req generateRequest) (generateResponse, error) {
	if t := req.Options.Temperature; t < 0 || t > 1 {
		return generateResponse{}, fmt.Errorf("temperature %v out of range [0, 1]", t)
	}

	var resp generateResponse
	if err := c.PostJSON(ctx, "/api/generate", req, &resp); err != nil {
		return generateResponse{}, err
	}

	return resp, nil
}

// CheckHealth reports whether the server is reachable and lists a model whose
// name contains the configured model name. Failures are logged and reported
// as false.
func (c *Client) CheckHealth(ctx context.Context) bool {
	var tags tagsResponse
	if err := c.GetJSON(ctx, "/api/tags", &tags); err != nil {
		c.log.WarnContext(ctx, "ollama health check failed", "base_url", c.BaseURL, "error", err)
		return false
	}

	for _, m := range tags.Models {
		if strings.Contains(m.Name, c.Name) {
			return true
		}
	}

	c.log.WarnContext(ctx, "ollama model not installed", "model", c.Name, "available", len(tags.Models))

	return false
}

// GenerativeModel returns a ContentGenerator bound to the client defaults.
func (c *Client) GenerativeModel() *GenerativeModel {
	return &GenerativeModel{client: c}
}

// GenerativeModel generates content with the client's default model and
// temperature.
type GenerativeModel struct {
	client *Client
}

// GenerateContent delegates to Client.GenerateContent without overrides.
func (m *GenerativeModel) GenerateContent(ctx context.Context, prompt string) (*Result, error) {
	return m.client.GenerateContent(ctx, prompt)
}

// textReply is the Texter returned inside a Result.
type textReply string

func (t textReply) Text() string { return string(t) }

// --- wire types ---

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options generateParams `json:"options"`
}

type generateParams struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
	TotalDuration   int64  `json:"total_duration"` // nanoseconds
}

type tagsResponse struct {
	Models []tagModel `json:"models"`
}

type tagModel struct {
	Name string `json:"name"`
}
