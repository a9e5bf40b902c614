package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

// schemaVersion is stored in PRAGMA user_version once the schema exists.
// A fresh file reports 0.
const schemaVersion = 1

// Schema DDL for all tables.
const (
	createFavoriteRoutes = `CREATE TABLE favorite_routes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT NOT NULL
);`

	createUserProfile = `CREATE TABLE user_profile (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL
);`
)

// schemaDDL lists all CREATE TABLE statements in creation order.
var schemaDDL = []string{
	createFavoriteRoutes,
	createUserProfile,
}

// execer is the statement surface shared by *sql.DB, *sql.Conn and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// applySchema creates and seeds the tables when the database is new. The
// version check, table creation, seeding and version bump share one
// BEGIN IMMEDIATE transaction: the write lock is held before user_version is
// read, so a second process attaching the same fresh file waits (up to
// busy_timeout) and then sees version 1. A failure leaves the file at
// version 0 and the next attach starts over. It reports whether the schema
// was created by this call.
func applySchema(ctx context.Context, db *sql.DB) (bool, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return false, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return false, fmt.Errorf("beginning schema transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			conn.ExecContext(context.Background(), "ROLLBACK")
		}
	}()

	var version int
	if err := conn.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return false, fmt.Errorf("reading user_version: %w", err)
	}

	switch version {
	case schemaVersion:
		return false, nil
	case 0:
	default:
		return false, fmt.Errorf("%w: %d (want %d)", types.ErrSchemaVersion, version, schemaVersion)
	}

	for _, ddl := range schemaDDL {
		if _, err := conn.ExecContext(ctx, ddl); err != nil {
			return false, fmt.Errorf("creating tables: %w", err)
		}
	}

	if err := seedFavoriteRoutes(ctx, conn); err != nil {
		return false, err
	}

	if _, err := conn.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
		return false, fmt.Errorf("setting user_version: %w", err)
	}

	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return false, fmt.Errorf("committing schema transaction: %w", err)
	}
	committed = true
	return true, nil
}
