package mcp

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Connector opens a database session scoped to a single tool call.
// The caller owns the returned *sql.DB and must close it.
type Connector interface {
	Connect(ctx context.Context, database string) (*sql.DB, error)
}

// ConnectorFunc adapts a function to the Connector interface.
type ConnectorFunc func(ctx context.Context, database string) (*sql.DB, error)

func (f ConnectorFunc) Connect(ctx context.Context, database string) (*sql.DB, error) {
	return f(ctx, database)
}

// PasswordSource supplies the password for a new connection.
type PasswordSource interface {
	Password(ctx context.Context) (string, error)
}

// StaticPassword is a fixed password read from the environment.
type StaticPassword string

func (p StaticPassword) Password(context.Context) (string, error) {
	return string(p), nil
}

// pqConnector opens lib/pq connections from a Config.
type pqConnector struct {
	cfg      Config
	password PasswordSource
}

// NewPQConnector returns a Connector dialing cfg.Host with passwords from src.
func NewPQConnector(cfg Config, src PasswordSource) Connector {
	return &pqConnector{cfg: cfg, password: src}
}

func (c *pqConnector) Connect(ctx context.Context, database string) (*sql.DB, error) {
	if database == "" {
		return nil, ErrDatabaseRequired
	}

	password, err := c.password.Password(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPasswordUnavailable, err)
	}

	connector, err := pq.NewConnector(c.cfg.DSN(database, password))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxOpenConns(DBMaxOpenConns)
	db.SetMaxIdleConns(DBMaxIdleConns)

	// Test connection with timeout
	pingCtx, cancel := context.WithTimeout(ctx, DBPingTimeout)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnectionTestFailed, err)
	}

	return db, nil
}
