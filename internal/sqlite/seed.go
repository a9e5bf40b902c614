package sqlite

import (
	"context"
	"fmt"
)

// seedRoute describes a favorite route inserted when the database is created.
type seedRoute struct {
	title       string
	description string
}

// seedRoutes are inserted in order, so the last one gets the highest ID and
// lists first.
var seedRoutes = []seedRoute{
	{
		title:       "Miraflores panorámica",
		description: "Ruta guardada hacia Miraflores con tráfico moderado",
	},
	{
		title:       "Achumani rápido",
		description: "Atajo favorito para llegar a San Pedro en menos de 25 minutos",
	},
}

// seedFavoriteRoutes inserts the default routes. It runs only inside the
// transaction that creates the schema.
func seedFavoriteRoutes(ctx context.Context, tx execer) error {
	for _, r := range seedRoutes {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO favorite_routes (title, description) VALUES (?, ?)",
			r.title, r.description,
		)
		if err != nil {
			return fmt.Errorf("seeding route %q: %w", r.title, err)
		}
	}
	return nil
}
