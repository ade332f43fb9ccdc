package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *FlexMCPServer) registerTools() {
	// Server Configuration
	s.server.AddTool(s.toolGetServerConfig())

	// Server Parameter
	s.server.AddTool(s.toolGetServerParameter())

	// Query Data
	s.server.AddTool(s.toolQueryData())

	// Update Values
	s.server.AddTool(s.toolUpdateValues())

	// Create Table
	s.server.AddTool(s.toolCreateTable())

	// Drop Table
	s.server.AddTool(s.toolDropTable())

	// List Databases
	s.server.AddTool(s.toolGetDatabases())

	// List Table Schemas
	s.server.AddTool(s.toolGetSchemas())
}

func (s *FlexMCPServer) registerResources() {
	s.server.AddResource(
		mcp.NewResource(
			s.databasesResourceURI(),
			"databases",
			mcp.WithResourceDescription("Lists all databases in the server instance"),
			mcp.WithMIMEType("application/json"),
		),
		s.handleDatabasesResource,
	)
}

func (s *FlexMCPServer) databasesResourceURI() string {
	return fmt.Sprintf(ResourceURI, s.facade.Config().ServerName())
}
