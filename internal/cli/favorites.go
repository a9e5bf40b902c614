package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/mesh-intelligence/navstore/internal/bridge"
	"github.com/mesh-intelligence/navstore/internal/sqlite"
	"github.com/mesh-intelligence/navstore/pkg/types"
)

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Inspect and edit favorite routes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite routes, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesList(cmd, a)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title> <description>",
		Short: "Add a favorite route",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesAdd(cmd, a, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every favorite route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFavoritesClear(cmd, a)
		},
	})

	return cmd
}

func runFavoritesList(cmd *cobra.Command, a *app) error {
	s := a.newSession()
	defer s.close()

	value, err := s.invoke(cmd.Context(), bridge.MethodGetFavorites, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(cmd, value)
	}

	routes, _ := value.([]any)
	if len(routes) == 0 {
		fmt.Fprintln(out, "no favorite routes")
		return nil
	}
	for _, r := range routes {
		route, _ := r.(map[string]any)
		fmt.Fprintf(out, "%v\t%s\n\t%v\n", route["id"], labelColor.Sprint(route["title"]), route["description"])
	}
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, a *app, title, description string) error {
	store, err := sqlite.GetOrCreate(cmd.Context(), a.storeConfig())
	if err != nil {
		return sysError("open store: %s", err)
	}

	// Terminals may hand over decomposed accents; stored text is NFC like
	// the seed rows.
	route := types.FavoriteRoute{
		Title:       norm.NFC.String(title),
		Description: norm.NFC.String(description),
	}
	if err := store.ReplaceFavoriteRoutes(cmd.Context(), []types.FavoriteRoute{route}); err != nil {
		return sysError("%s", err)
	}

	printDone(cmd, "route added")
	return nil
}

func runFavoritesClear(cmd *cobra.Command, a *app) error {
	store, err := sqlite.GetOrCreate(cmd.Context(), a.storeConfig())
	if err != nil {
		return sysError("open store: %s", err)
	}
	if err := store.ClearFavoriteRoutes(cmd.Context()); err != nil {
		return sysError("%s", err)
	}

	printDone(cmd, "favorite routes cleared")
	return nil
}
