// Package tools exposes almanac functionality to MCP (Model Context Protocol)
// clients.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/almanac/pkg/tools/mcpserver]: Tool type and an MCP server over the official MCP Go SDK
//   - [github.com/germanamz/almanac/pkg/tools/generation]: generate_content and check_health tools backed by a generation client
package tools
