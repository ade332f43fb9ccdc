package mcp

import "errors"

// Configuration errors
var (
	ErrMissingEnvironment = errors.New("environment variable not found")
	ErrInvalidPort        = errors.New("invalid port")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// Connection errors
var (
	ErrConnectionFailed     = errors.New("failed to connect to database")
	ErrConnectionTestFailed = errors.New("connection test failed")
	ErrDatabaseRequired     = errors.New("database is required")
	ErrPasswordUnavailable  = errors.New("unable to obtain database password")
)

// Management plane errors
var (
	ErrManagementUnavailable = errors.New("this tool is available only with Microsoft Entra ID (AZURE_USE_AAD)")
	ErrParameterNameRequired = errors.New("parameter_name is required")
)

// Argument errors
var (
	ErrInvalidArguments  = errors.New("invalid arguments")
	ErrStatementRequired = errors.New("SQL statement is required")
)

// Serialization errors
var (
	ErrSerializingJSON = errors.New("error serializing JSON")
)

// Query errors
var (
	ErrRetrievingColumns = errors.New("error retrieving columns")
	ErrReadingRow        = errors.New("error reading row")
	ErrReadingResults    = errors.New("error reading results")
)
