package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

// ListFavoriteRoutes returns all routes, newest ID first.
func (b *Backend) ListFavoriteRoutes(ctx context.Context) ([]types.FavoriteRoute, error) {
	const op = "list favorite routes"

	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn(op)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, title, description FROM favorite_routes ORDER BY id DESC")
	if err != nil {
		return nil, types.NewStorageFault(op, err)
	}
	defer rows.Close()

	routes := make([]types.FavoriteRoute, 0)
	for rows.Next() {
		var r types.FavoriteRoute
		if err := rows.Scan(&r.ID, &r.Title, &r.Description); err != nil {
			return nil, types.NewStorageFault(op, err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewStorageFault(op, err)
	}
	return routes, nil
}

// ReplaceFavoriteRoutes inserts routes in a single transaction. A route with
// an existing ID replaces that row; a route with ID 0 is given a new ID.
// Either every route is written or none is.
func (b *Backend) ReplaceFavoriteRoutes(ctx context.Context, routes []types.FavoriteRoute) error {
	const op = "replace favorite routes"

	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn(op)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return types.NewStorageFault(op, err)
	}
	defer tx.Rollback()

	for _, r := range routes {
		id := sql.NullInt64{Int64: r.ID, Valid: r.ID != 0}
		_, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO favorite_routes (id, title, description) VALUES (?, ?, ?)",
			id, r.Title, r.Description,
		)
		if err != nil {
			return types.NewStorageFault(op, fmt.Errorf("route %q: %w", r.Title, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return types.NewStorageFault(op, err)
	}
	return nil
}

// ClearFavoriteRoutes deletes every route.
func (b *Backend) ClearFavoriteRoutes(ctx context.Context) error {
	const op = "clear favorite routes"

	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn(op)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM favorite_routes"); err != nil {
		return types.NewStorageFault(op, err)
	}
	return nil
}
