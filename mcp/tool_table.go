package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *FlexMCPServer) toolCreateTable() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "create_table",
		Description: "Creates a table in a database. The statement is committed when it succeeds.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"dbname": stringSchema("Database to connect to"),
				"s":      stringSchema("CREATE TABLE statement to be executed"),
			},
			Required: []string{"dbname", "s"},
		},
	}, s.handleCreateTable
}

func (s *FlexMCPServer) handleCreateTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database, statement, err := statementArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.facade.CreateTable(ctx, database, statement)
	return mcp.NewToolResultText(""), nil
}

func (s *FlexMCPServer) toolDropTable() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "drop_table",
		Description: "Drops a table in a database. The statement is committed when it succeeds.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"dbname": stringSchema("Database to connect to"),
				"s":      stringSchema("DROP TABLE statement to be executed"),
			},
			Required: []string{"dbname", "s"},
		},
	}, s.handleDropTable
}

func (s *FlexMCPServer) handleDropTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database, statement, err := statementArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.facade.DropTable(ctx, database, statement)
	return mcp.NewToolResultText(""), nil
}
