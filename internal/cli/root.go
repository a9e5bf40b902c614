// Package cli implements the navstore command-line interface. It plays the
// host side of the bridge: it loads configuration, binds the shared store to
// the "<app-id>/db" channel, and sends method calls from its own goroutine.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/navstore/internal/paths"
	"github.com/mesh-intelligence/navstore/internal/sqlite"
	"github.com/mesh-intelligence/navstore/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	logLevel  string
	jsonMode  bool
}

// app is the state shared by subcommands, filled in by the root
// PersistentPreRunE.
type app struct {
	flags     rootFlags
	config    *viper.Viper
	configDir string
	dataDir   string
	logger    *slog.Logger
}

// exitError carries a process exit code alongside the message.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// NewRootCmd creates the top-level "navstore" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "navstore",
		Short: "Local storage bridge for the navigation app",
		Long: "navstore owns the favorite routes and user profile of the navigation app\n" +
			"and serves them over the <app-id>/db method channel.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newCallCmd(a))
	root.AddCommand(newFavoritesCmd(a))
	root.AddCommand(newProfileCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if cerr := sqlite.CloseShared(); cerr != nil && err == nil {
		err = sysError("close store: %s", cerr)
	}
	if err != nil {
		errorColor.Fprintln(os.Stderr, "navstore:", err)
	}
	os.Exit(exitCode(err))
}

// load resolves directories, reads config.yaml and installs the logger.
func (a *app) load(logOut io.Writer) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %s", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError("%s", err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return sysError("resolve data dir: %s", err)
	}

	levelName := a.flags.logLevel
	if levelName == "" {
		levelName = cfg.GetString(cfgKeyLogLevel)
	}
	level, err := parseLevel(levelName)
	if err != nil {
		return userError("%s", err)
	}

	a.config = cfg
	a.configDir = configDir
	a.dataDir = dataDir
	a.logger = newLogger(logOut, level)
	slog.SetDefault(a.logger)
	return nil
}

// storeConfig returns the backend configuration for the resolved data dir.
func (a *app) storeConfig() types.Config {
	return types.Config{
		Backend: a.config.GetString(cfgKeyBackend),
		DataDir: a.dataDir,
	}
}

// appID returns the configured application id.
func (a *app) appID() string {
	return a.config.GetString(cfgKeyAppID)
}
