package mcp

import (
	"context"

	"cdr.dev/slog"
	"github.com/mark3labs/mcp-go/server"
)

// NewMcpServer creates a new MCP server instance.
// The management plane tools are always registered; without Entra ID they
// answer with an error explaining how to enable them.
func NewMcpServer(ctx context.Context, cfg Config, logger slog.Logger) (*FlexMCPServer, error) {
	facade, err := NewServerFacade(cfg, WithLogger(logger))
	if err != nil {
		return nil, err
	}

	if !facade.ManagementEnabled() {
		logger.Info(ctx, "management plane tools disabled, set "+EnvUseAAD+" to enable them")
	}

	return newFlexMCPServer(facade), nil
}

func newFlexMCPServer(facade *ServerFacade) *FlexMCPServer {
	s := &FlexMCPServer{
		server: server.NewMCPServer(
			ServerName,
			ServerVersion,
			server.WithToolCapabilities(true),
			server.WithResourceCapabilities(false, false),
		),
		facade: facade,
	}

	// Register tools and resources
	s.registerTools()
	s.registerResources()

	return s
}

// Start starts the MCP server in stdio mode
func (s *FlexMCPServer) Start() error {
	return server.ServeStdio(s.server)
}
