// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Getter is generic interface for getting single entity
type Getter interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Selector is generic interface for getting multiple entities
type Selector interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Execer is generic interface for executing SQL query with no result
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Queryer is the storage handle passed to every repository function.
// Both *sqlx.DB and *sqlx.Tx satisfy it. Queries are written with ? and
// rebound to the driver's placeholder style.
type Queryer interface {
	Getter
	Selector
	Execer
	Rebind(query string) string
}

var (
	ErrNotFound   = errors.New("not found")
	ErrConstraint = errors.New("constraint violation")
)

// CastErr inspects the given error and replaces driver specific errors with
// easier to compare equivalents.
//
// See http://www.postgresql.org/docs/current/static/errcodes-appendix.html
func CastErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return ErrNotFound
		case "23514": // check_violation
			return ErrConstraint
		}
		return err
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ErrNotFound
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return ErrConstraint
		}
		// Without extended result codes only the message tells them apart
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			switch msg := liteErr.Error(); {
			case strings.Contains(msg, "FOREIGN KEY"):
				return ErrNotFound
			case strings.Contains(msg, "CHECK"):
				return ErrConstraint
			}
		}
	}
	return err
}

// affectedOne turns an UPDATE/DELETE result that touched no row into ErrNotFound.
func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return CastErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
