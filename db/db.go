// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/polls/cliparse"
)

// Driver names as registered by lib/pq and modernc.org/sqlite.
const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

func init() {
	// sqlx only knows "sqlite3" out of the box
	sqlx.BindDriver(driverSQLite, sqlx.QUESTION)
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg cliparse.Config) (*sqlx.DB, error) {
	var (
		conn *sqlx.DB
		err  error
	)

	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		conn, err = sqlx.Open(driverPostgres, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.DBMaxOpenConns > 0 {
			conn.SetMaxOpenConns(cfg.DBMaxOpenConns)
			conn.SetMaxIdleConns(cfg.DBMaxOpenConns)
		}
	case cliparse.DatabaseSQLite:
		conn, err = sqlx.Open(driverSQLite, SQLiteDSN(cfg.DatabaseURL))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// A single writer; concurrent requests queue on the pool
		conn.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.DatabaseType, err)
	}

	return conn, nil
}

// SQLiteDSN appends the connection pragmas the schema relies on: foreign keys
// for cascading deletes, a busy timeout, and a sortable timestamp format.
func SQLiteDSN(path string) string {
	params := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	if strings.Contains(path, "?") {
		return path + "&" + params
	}
	return path + "?" + params
}
