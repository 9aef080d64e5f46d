package mcptools

import (
	"depctl/internal/config"
	"depctl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

// NewServer assembles the MCP server exposing depctl's tools.
func NewServer(cfg config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"depctl",
		version,
		server.WithToolCapabilities(true),
	)

	ct := NewConstraintTools(cfg)
	handlers := map[string]server.ToolHandlerFunc{
		"constraint_rewrite": ct.HandleConstraintRewrite,
		"constraint_inspect": ct.HandleConstraintInspect,
		"manifest_preview":   ct.HandleManifestPreview,
	}

	tools := ct.GetConstraintTools()
	for _, tool := range tools {
		s.AddTool(tool, handlers[tool.Name])
	}

	logging.Debug("MCPTools", "Registered %d tools", len(tools))
	return s
}

// ServeStdio runs the MCP server on stdin/stdout until the client hangs up.
func ServeStdio(cfg config.Config, version string) error {
	return server.ServeStdio(NewServer(cfg, version))
}
