package mcp

import "time"

// Scoped session configuration. Every tool call opens and closes its own
// connection, so the pool never needs more than one.
const (
	DBMaxOpenConns = 1
	DBMaxIdleConns = 1
	DBPingTimeout  = 5 * time.Second
)

// Query timeout constants
const (
	DefaultQueryTimeout = 30 * time.Second
)

// Connection defaults
const (
	DefaultPort         = 5432
	DefaultSSLMode      = "require"
	MaintenanceDatabase = "postgres"
)

// Environment variables
const (
	EnvHost           = "PGHOST"
	EnvPort           = "PGPORT"
	EnvUser           = "PGUSER"
	EnvPassword       = "PGPASSWORD"
	EnvSSLMode        = "PGSSLMODE"
	EnvUseAAD         = "AZURE_USE_AAD"
	EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	EnvResourceGroup  = "AZURE_RESOURCE_GROUP"
	EnvLogLevel       = "LOG_LEVEL"
)

// Server identity
const (
	ServerName    = "Azure PostgreSQL Flexible Server MCP"
	ServerVersion = "1.0.0"
	ResourceURI   = "flexpg://%s/databases"
)
