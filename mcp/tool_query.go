package mcp

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *FlexMCPServer) toolQueryData() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "query_data",
		Description: "Runs read queries on a database and returns the columns and rows as JSON. Returns an empty result if the query fails.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"dbname": stringSchema("Database to connect to"),
				"s":      stringSchema("SQL query to be executed"),
			},
			Required: []string{"dbname", "s"},
		},
	}, s.handleQueryData
}

func (s *FlexMCPServer) handleQueryData(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database, statement, err := statementArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(s.facade.QueryData(ctx, database, statement)), nil
}

func (s *FlexMCPServer) toolUpdateValues() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "update_values",
		Description: "Updates or inserts values into a table. The statement is committed when it succeeds.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"dbname": stringSchema("Database to connect to"),
				"s":      stringSchema("INSERT or UPDATE statement to be executed"),
			},
			Required: []string{"dbname", "s"},
		},
	}, s.handleUpdateValues
}

func (s *FlexMCPServer) handleUpdateValues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database, statement, err := statementArgs(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.facade.UpdateValues(ctx, database, statement)
	return mcp.NewToolResultText(""), nil
}

// statementArgs extracts the dbname and s arguments shared by the data plane tools.
func statementArgs(request mcp.CallToolRequest) (string, string, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return "", "", ErrInvalidArguments
	}

	database, err := requireStringArg(args, "dbname", ErrDatabaseRequired)
	if err != nil {
		return "", "", err
	}
	statement, err := requireStringArg(args, "s", ErrStatementRequired)
	if err != nil {
		return "", "", err
	}
	return database, statement, nil
}

// formatValue converts database values to JSON-safe formats
func formatValue(val interface{}) interface{} {
	switch v := val.(type) {
	case []byte:
		if len(v) > 1000 {
			return fmt.Sprintf("<binary data: %d bytes>", len(v))
		}
		if utf8.Valid(v) {
			return string(v)
		}
		return fmt.Sprintf("<binary data: %d bytes>", len(v))
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case nil:
		return nil
	default:
		return v
	}
}
