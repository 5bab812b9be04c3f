package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Open connects to the configured warehouse and verifies the connection with
// a ping before returning it. The pool is pinned to a single connection
// because extraction reads views strictly one after another.
func Open(ctx context.Context, settings Settings) (*sqlx.DB, error) {
	factory, err := GetDriverFactory(settings.Driver)
	if err != nil {
		return nil, err
	}

	if settings.Port == 0 {
		settings.Port = factory.DefaultPort()
	}

	conn, err := sqlx.Open(settings.Driver, factory.GetDSN(settings))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", settings.Driver, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", settings.Driver, err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	return conn, nil
}
