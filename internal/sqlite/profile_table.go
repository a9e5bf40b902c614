package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mesh-intelligence/navstore/pkg/types"
)

// GetUserProfile returns the stored profile, or found=false when none has
// been saved.
func (b *Backend) GetUserProfile(ctx context.Context) (types.UserProfile, bool, error) {
	const op = "get user profile"

	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn(op)
	if err != nil {
		return types.UserProfile{}, false, err
	}

	var p types.UserProfile
	err = db.QueryRowContext(ctx,
		"SELECT id, name, email FROM user_profile LIMIT 1",
	).Scan(&p.ID, &p.Name, &p.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return types.UserProfile{}, false, nil
	}
	if err != nil {
		return types.UserProfile{}, false, types.NewStorageFault(op, err)
	}
	return p, true, nil
}

// SaveUserProfile writes profile at types.ProfileID, replacing the previous
// row in full.
func (b *Backend) SaveUserProfile(ctx context.Context, profile types.UserProfile) error {
	const op = "save user profile"

	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn(op)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		"INSERT OR REPLACE INTO user_profile (id, name, email) VALUES (?, ?, ?)",
		types.ProfileID, profile.Name, profile.Email,
	)
	if err != nil {
		return types.NewStorageFault(op, err)
	}
	return nil
}
