package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration and the database",
		Long: `Create the configuration directory and a default config.yaml, then create
the database file and its tables. Existing files are kept.

With --seed the Madang sample books, customers and orders are loaded when the
Book, Customer and Orders tables are all empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "load the Madang sample data into an empty database")
	return cmd
}

func (a *app) runInit(cmd *cobra.Command, seed bool) error {
	out := cmd.OutOrStdout()
	configDir := a.settings.ConfigDir

	if err := ensureConfigDir(configDir); err != nil {
		return wrapExitError(exitSysError, "create config directory", err)
	}

	// Only an explicit --data-dir is recorded; otherwise the default
	// resolution stays in effect.
	var dataDir string
	if a.flags.dataDir != "" {
		abs, err := filepath.Abs(a.flags.dataDir)
		if err != nil {
			return wrapExitError(exitSysError, "resolve data dir", err)
		}
		dataDir = abs
	}
	written, err := writeConfigIfMissing(configDir, dataDir)
	if err != nil {
		return wrapExitError(exitSysError, "write config", err)
	}
	configPath := filepath.Join(configDir, configFileExt)
	if written {
		fmt.Fprintf(out, "Config: %s (created)\n", configPath)
	} else {
		fmt.Fprintf(out, "Config: %s\n", configPath)
	}

	log, closeLog, err := a.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	backend, err := a.attachBackend()
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Detach(); err != nil {
			log.Error("closing database", "error", err)
		}
	}()
	fmt.Fprintf(out, "Database: %s\n", backend.Path())

	if seed {
		loaded, err := backend.Seed(cmd.Context())
		if err != nil {
			return wrapExitError(exitSysError, "seed sample data", err)
		}
		if loaded {
			log.Info("sample data loaded", "path", backend.Path())
			fmt.Fprintln(out, "Sample data loaded")
		} else {
			fmt.Fprintln(out, "Sample data skipped: the Book table is not empty")
		}
	}

	fmt.Fprintln(out, "Madang initialized successfully")
	return nil
}
