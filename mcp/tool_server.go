package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *FlexMCPServer) toolGetServerConfig() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "get_server_config",
		Description: "Gets the configuration of a server instance (name, location, version, SKU, storage and backup settings). [Available with Microsoft Entra ID]",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGetServerConfig
}

func (s *FlexMCPServer) handleGetServerConfig(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := s.facade.GetServerConfig(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

func (s *FlexMCPServer) toolGetServerParameter() (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.Tool{
		Name:        "get_server_parameter",
		Description: "Gets the value of a server parameter. [Available with Microsoft Entra ID]",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"parameter_name": stringSchema("Server parameter name, e.g. max_connections"),
			},
			Required: []string{"parameter_name"},
		},
	}, s.handleGetServerParameter
}

func (s *FlexMCPServer) handleGetServerParameter(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := getArgs(request.Params.Arguments)
	if !ok {
		return mcp.NewToolResultError(ErrInvalidArguments.Error()), nil
	}

	name, _ := getStringArg(args, "parameter_name")
	out, err := s.facade.GetServerParameter(ctx, name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}
