package main

import (
	"context"
	"os"

	"cdr.dev/slog"
	"github.com/joho/godotenv"

	"azure-postgresql-mcp/mcp"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx := context.Background()
	logger := mcp.NewLogger(os.Stderr, os.Getenv(mcp.EnvLogLevel))

	cfg, err := mcp.LoadConfig()
	if err != nil {
		logger.Fatal(ctx, "invalid configuration", slog.Error(err))
	}

	// Define MCP Server
	mcpServer, err := mcp.NewMcpServer(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "error setting up MCP server", slog.Error(err))
	}

	// Start server in stdio
	logger.Info(ctx, "serving on stdio",
		slog.F("host", cfg.Host), slog.F("aad", cfg.AADEnabled))
	if err = mcpServer.Start(); err != nil {
		logger.Fatal(ctx, "error starting server", slog.Error(err))
	}
}
