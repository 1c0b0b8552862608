// Package providers groups clients for text generation servers.
//
// Each sub-package embeds [github.com/germanamz/almanac/pkg/modeladapter.ModelAdapter]
// for HTTP plumbing and exposes its own request and reply shapes:
//   - [github.com/germanamz/almanac/pkg/providers/ollama]: local Ollama server, non-streaming /api/generate and /api/tags
package providers
