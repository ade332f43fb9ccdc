package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *FlexMCPServer) toolGetDatabases() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "get_databases",
		Description: "Gets the list of all the databases in a server instance",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGetDatabases
}

func (s *FlexMCPServer) handleGetDatabases(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.facade.GetDatabases(ctx)), nil
}

func (s *FlexMCPServer) toolGetSchemas() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "get_schemas",
		Description: "Gets schemas of all the tables in the public schema of a database",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"database": stringSchema("Database to inspect"),
			},
			Required: []string{"database"},
		},
	}, s.handleGetSchemas
}

func (s *FlexMCPServer) handleGetSchemas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	database, err := requireStringArg(args, "database", ErrDatabaseRequired)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.facade.GetSchemas(ctx, database)), nil
}

func (s *FlexMCPServer) handleDatabasesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     s.facade.GetDatabases(ctx),
		},
	}, nil
}
