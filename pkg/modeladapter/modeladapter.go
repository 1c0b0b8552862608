package modeladapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/germanamz/almanac/pkg/modeladapter/usage"
)

// StatusError is returned when a model server answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// Auth holds optional authentication for a model server, typically a reverse
// proxy in front of a local runtime.
type Auth struct {
	Key    string // API key value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
}

// ModelAdapter holds shared state for model server clients. Embed it in
// concrete clients to get HTTP helpers, auth, custom headers, and eval
// tracking.
type ModelAdapter struct {
	Name        string            // Model identifier (e.g. "llama3.2").
	Temperature float64           // Default sampling temperature.
	Auth        Auth              // Authentication settings.
	BaseURL     string            // Server base URL (no trailing slash).
	Client      *http.Client      // HTTP client; falls back to http.DefaultClient.
	Headers     map[string]string // Extra headers applied to every request.
	Usage       usage.Tracker     // Eval counters reported by the server.
}

// New creates a ModelAdapter with the given settings. A trailing slash on
// baseURL is dropped. A nil client falls back to http.DefaultClient at call
// time.
func New(baseURL string, auth Auth, client *http.Client) ModelAdapter {
	return ModelAdapter{
		Auth:    auth,
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  client,
	}
}

// UsageTracker returns the adapter's eval tracker.
func (a *ModelAdapter) UsageTracker() *usage.Tracker { return &a.Usage }

func (a *ModelAdapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}

	return http.DefaultClient
}

// NewRequest builds an *http.Request with the base URL, auth, and custom
// headers already applied.
func (a *ModelAdapter) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	if a.Auth.Key != "" {
		header := a.Auth.Header
		if header == "" {
			header = "Authorization"
		}

		value := a.Auth.Key
		if header == "Authorization" {
			scheme := a.Auth.Scheme
			if scheme == "" {
				scheme = "Bearer"
			}

			value = scheme + " " + value
		} else if a.Auth.Scheme != "" {
			value = a.Auth.Scheme + " " + value
		}

		req.Header.Set(header, value)
	}

	for k, v := range a.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// Do sends the request using the configured HTTP client.
func (a *ModelAdapter) Do(req *http.Request) (*http.Response, error) {
	return a.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
}

// PostJSON marshals payload as JSON, sends a POST to the given path, checks
// for a 2xx status, and unmarshals the response body into dest. If dest is nil
// the response body is discarded after the status check.
func (a *ModelAdapter) PostJSON(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := a.NewRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return a.roundTrip(req, dest)
}

// GetJSON sends a GET to the given path, checks for a 2xx status, and
// unmarshals the response body into dest.
func (a *ModelAdapter) GetJSON(ctx context.Context, path string, dest any) error {
	req, err := a.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	return a.roundTrip(req, dest)
}

func (a *ModelAdapter) roundTrip(req *http.Request, dest any) error {
	resp, err := a.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
