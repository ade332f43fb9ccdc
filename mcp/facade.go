package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"cdr.dev/slog"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"azure-postgresql-mcp/flexserver"
)

// ManagementClient is the management plane surface used by the facade.
// *flexserver.Client implements it.
type ManagementClient interface {
	GetServer(ctx context.Context, serverName string) (*flexserver.Server, error)
	GetConfiguration(ctx context.Context, serverName, name string) (*flexserver.Configuration, error)
}

// ServerFacade maps tool operations onto one management plane call or one
// scoped database session each.
//
// Management plane getters return the collaborator's error unchanged. Data
// plane operations are best effort: failures are logged and swallowed, and a
// statement that failed is never committed.
type ServerFacade struct {
	cfg        Config
	management ManagementClient
	connector  Connector
	credential azcore.TokenCredential
	logger     slog.Logger
}

// FacadeOption customizes NewServerFacade.
type FacadeOption func(*ServerFacade)

// WithManagementClient replaces the ARM backed management client.
func WithManagementClient(mc ManagementClient) FacadeOption {
	return func(f *ServerFacade) {
		f.management = mc
	}
}

// WithConnector replaces the lib/pq connector.
func WithConnector(c Connector) FacadeOption {
	return func(f *ServerFacade) {
		f.connector = c
	}
}

// WithCredential sets the Azure credential used in Entra ID mode instead of
// the default credential chain.
func WithCredential(cred azcore.TokenCredential) FacadeOption {
	return func(f *ServerFacade) {
		f.credential = cred
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger slog.Logger) FacadeOption {
	return func(f *ServerFacade) {
		f.logger = logger
	}
}

// NewServerFacade validates cfg and builds the collaborators it needs.
// In Entra ID mode the management client and the token based connector share
// one credential; otherwise only the password connector is built.
func NewServerFacade(cfg Config, opts ...FacadeOption) (*ServerFacade, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &ServerFacade{
		cfg:    cfg,
		logger: slog.Make(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	if cfg.AADEnabled && (f.management == nil || f.connector == nil) {
		if f.credential == nil {
			cred, err := flexserver.NewDefaultCredential()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
			}
			f.credential = cred
		}
		if f.management == nil && cfg.SubscriptionID != "" && cfg.ResourceGroup != "" {
			client, err := flexserver.NewClient(cfg.SubscriptionID, cfg.ResourceGroup, f.credential, nil)
			if err != nil {
				return nil, err
			}
			f.management = client
		}
		if f.connector == nil {
			f.connector = NewPQConnector(cfg, flexserver.NewTokenSource(f.credential))
		}
	}
	if f.connector == nil {
		f.connector = NewPQConnector(cfg, StaticPassword(cfg.Password))
	}

	return f, nil
}

// Config returns the configuration the facade was built with.
func (f *ServerFacade) Config() Config {
	return f.cfg
}

// ManagementEnabled reports whether management plane tools can be served.
func (f *ServerFacade) ManagementEnabled() bool {
	return f.management != nil
}

// GetServerConfig describes the flexible server named after the configured host.
func (f *ServerFacade) GetServerConfig(ctx context.Context) (string, error) {
	return f.serverConfig(ctx).Unwrap()
}

// GetServerParameter returns the name and current value of a server parameter.
func (f *ServerFacade) GetServerParameter(ctx context.Context, name string) (string, error) {
	return f.serverParameter(ctx, name).Unwrap()
}

func (f *ServerFacade) serverConfig(ctx context.Context) Result[string] {
	if f.management == nil {
		return Failure[string](ErrManagementUnavailable)
	}

	server, err := f.management.GetServer(ctx, f.cfg.ServerName())
	if err != nil {
		f.logger.Error(ctx, "failed to get server configuration",
			slog.F("server", f.cfg.ServerName()), slog.Error(err))
		return Failure[string](err)
	}

	return marshalResult(serverConfigResponse{Server: newServerDocument(server)})
}

func (f *ServerFacade) serverParameter(ctx context.Context, name string) Result[string] {
	if name == "" {
		return Failure[string](ErrParameterNameRequired)
	}
	if f.management == nil {
		return Failure[string](ErrManagementUnavailable)
	}

	cfg, err := f.management.GetConfiguration(ctx, f.cfg.ServerName(), name)
	if err != nil {
		f.logger.Error(ctx, "failed to get server parameter",
			slog.F("server", f.cfg.ServerName()), slog.F("parameter", name), slog.Error(err))
		return Failure[string](err)
	}

	return marshalResult(parameterResponse{Param: cfg.Name, Value: cfg.Value})
}

// QueryData runs statement against database and returns the columns and
// rows as JSON. Any failure yields "".
func (f *ServerFacade) QueryData(ctx context.Context, database, statement string) string {
	var ret string
	err := f.withSession(ctx, database, func(ctx context.Context, db *sql.DB) error {
		out, err := queryRows(ctx, db, statement)
		if err != nil {
			return err
		}
		ret = out
		return nil
	})
	if err != nil {
		f.logger.Error(ctx, "query failed", slog.F("database", database), slog.Error(err))
		return ""
	}
	return ret
}

// CreateTable executes a CREATE TABLE statement and commits it.
func (f *ServerFacade) CreateTable(ctx context.Context, database, ddl string) {
	f.execAndCommit(ctx, database, ddl)
}

// DropTable executes a DROP TABLE statement and commits it.
func (f *ServerFacade) DropTable(ctx context.Context, database, ddl string) {
	f.execAndCommit(ctx, database, ddl)
}

// UpdateValues executes an INSERT/UPDATE statement and commits it.
func (f *ServerFacade) UpdateValues(ctx context.Context, database, statement string) {
	f.execAndCommit(ctx, database, statement)
}

// GetDatabases lists the non-template databases of the server.
func (f *ServerFacade) GetDatabases(ctx context.Context) string {
	return f.QueryData(ctx, MaintenanceDatabase, listDatabasesSQL)
}

// GetSchemas lists the columns of every table in the public schema of database.
func (f *ServerFacade) GetSchemas(ctx context.Context, database string) string {
	return f.QueryData(ctx, database, listColumnsSQL)
}

func (f *ServerFacade) execAndCommit(ctx context.Context, database, statement string) {
	err := f.withSession(ctx, database, func(ctx context.Context, db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, statement); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				f.logger.Warn(ctx, "rollback failed", slog.Error(rbErr))
			}
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		f.logger.Error(ctx, "statement failed", slog.F("database", database), slog.Error(err))
	}
}

// withSession opens a connection to database, hands it to fn and closes it
// on every exit path.
func (f *ServerFacade) withSession(ctx context.Context, database string, fn func(context.Context, *sql.DB) error) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultQueryTimeout)
	defer cancel()

	db, err := f.connector.Connect(ctx, database)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			f.logger.Warn(ctx, "failed to close connection", slog.F("database", database), slog.Error(cerr))
		}
	}()

	return fn(ctx, db)
}

func queryRows(ctx context.Context, db *sql.DB, statement string) (string, error) {
	rows, err := db.QueryContext(ctx, statement)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRetrievingColumns, err)
	}

	results := make([][]interface{}, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err = rows.Scan(valuePtrs...); err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadingRow, err)
		}

		row := make([]interface{}, len(columns))
		for i := range values {
			row[i] = formatValue(values[i])
		}
		results = append(results, row)
	}
	if err = rows.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadingResults, err)
	}

	return marshalResult(queryResponse{Columns: columns, Rows: results}).Unwrap()
}

func marshalResult(v interface{}) Result[string] {
	data, err := json.Marshal(v)
	if err != nil {
		return Failure[string](fmt.Errorf("%w: %v", ErrSerializingJSON, err))
	}
	return Success(string(data))
}
