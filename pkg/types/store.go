package types

import (
	"context"
	"errors"
)

// Store is the persistence contract for favorite routes and the single user
// profile. Every error returned by a Store method is a *StorageFault.
type Store interface {
	// ListFavoriteRoutes returns every route ordered by ID descending, so the
	// most recently inserted route comes first. The slice is empty, not nil,
	// when the table has no rows.
	ListFavoriteRoutes(ctx context.Context) ([]FavoriteRoute, error)

	// ReplaceFavoriteRoutes inserts routes in one transaction. A route whose
	// ID matches an existing row replaces that row; an ID of 0 is assigned.
	ReplaceFavoriteRoutes(ctx context.Context, routes []FavoriteRoute) error

	// ClearFavoriteRoutes deletes every route.
	ClearFavoriteRoutes(ctx context.Context) error

	// GetUserProfile returns the stored profile. found is false, with a nil
	// error, when no profile has been written yet.
	GetUserProfile(ctx context.Context) (profile UserProfile, found bool, err error)

	// SaveUserProfile writes profile at ProfileID, replacing any prior row
	// entirely. The ID field of profile is ignored.
	SaveUserProfile(ctx context.Context, profile UserProfile) error
}

// Store lifecycle errors.
var (
	ErrDetached        = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrSchemaVersion   = errors.New("unsupported schema version")
)
