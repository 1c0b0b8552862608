package mcpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler executes a tool with the given JSON input and returns a text result.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool is a named handler with a JSON Schema describing its input.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// MCPServer serves tools over the MCP protocol using the official MCP Go SDK.
type MCPServer struct {
	server *mcp.Server
	log    *slog.Logger
}

// New creates a new MCPServer with the given name and version. A nil logger
// falls back to slog.Default().
func New(name, version string, log *slog.Logger) *MCPServer {
	if log == nil {
		log = slog.Default()
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	return &MCPServer{server: server, log: log}
}

// Register adds tools to the server.
func (s *MCPServer) Register(tools ...Tool) {
	for _, t := range tools {
		s.server.AddTool(toSDKTool(t), s.toSDKHandler(t))
	}
}

// Serve reads requests from in and writes responses to out until ctx is
// cancelled or the transport closes.
func (s *MCPServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}

	return s.run(ctx, transport)
}

// run is split from Serve so tests can use an in-memory transport.
func (s *MCPServer) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

func toSDKTool(t Tool) *mcp.Tool {
	schema := t.InputSchema
	if schema == nil {
		schema = json.RawMessage(`{"type":"object"}`)
	}

	return &mcp.Tool{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: schema,
	}
}

// toSDKHandler reports handler errors as tool results with IsError set, so
// clients see the message instead of a protocol failure.
func (s *MCPServer) toSDKHandler(t Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if args == nil {
			args = json.RawMessage("{}")
		}

		result, err := t.Handler(ctx, args)
		if err != nil {
			s.log.WarnContext(ctx, "mcp tool failed", "tool", t.Name, "error", err)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result}},
		}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
