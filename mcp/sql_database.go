package mcp

// Catalog queries used by the listing tools.
const (
	listDatabasesSQL = `SELECT datname FROM pg_database WHERE datistemplate = false;`

	listColumnsSQL = `
		SELECT table_name, column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position;`
)
