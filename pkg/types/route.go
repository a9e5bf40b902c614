package types

// FavoriteRoute is a route the user saved for quick access.
type FavoriteRoute struct {
	ID          int64  `json:"id"`          // Assigned by the store on insert; 0 means unassigned.
	Title       string `json:"title"`       // Short name shown in lists (required).
	Description string `json:"description"` // Free text detail (required).
}
