package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/navstore/internal/bridge"
	"github.com/mesh-intelligence/navstore/internal/sqlite"
)

// initResult is the --json form of init's output.
type initResult struct {
	ConfigFile string `json:"config_file"`
	Database   string `json:"database"`
	AppID      string `json:"app_id"`
	Channel    string `json:"channel"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize navstore storage",
		Long: "Create the configuration and data directories, write a default config.yaml\n" +
			"if missing, and create and seed the database on first run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a)
		},
	}
}

func runInit(cmd *cobra.Command, a *app) error {
	if _, err := sqlite.GetOrCreate(cmd.Context(), a.storeConfig()); err != nil {
		return sysError("initialize storage: %s", err)
	}

	res := initResult{
		ConfigFile: filepath.Join(a.configDir, configFileExt),
		Database:   sqlite.DatabasePath(a.dataDir),
		AppID:      a.appID(),
	}
	res.Channel = bridge.ChannelName(res.AppID)

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return printJSON(cmd, res)
	}

	successColor.Fprintln(out, "navstore initialized successfully")
	fmt.Fprintf(out, "config:   %s\ndatabase: %s\nchannel:  %s\n", res.ConfigFile, res.Database, res.Channel)
	return nil
}
