// Package cli implements the madang command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/madang/internal/bookstore"
	"github.com/mesh-intelligence/madang/internal/logging"
	"github.com/mesh-intelligence/madang/internal/paths"
	"github.com/mesh-intelligence/madang/internal/sqlite"
	"github.com/mesh-intelligence/madang/pkg/types"
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
	jsonMode  bool
	verbose   bool
}

// app is the state shared by one root command and its subcommands.
type app struct {
	flags    rootFlags
	settings settings
}

// NewRootCmd creates the top-level "madang" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "madang",
		Short: "Madang book-store management",
		Long: `Madang looks up customers' order history and registers new customers
and purchase transactions against an embedded database file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory holding the database file (default: next to the executable)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newBooksCmd(a))
	root.AddCommand(newLookupCmd(a))
	root.AddCommand(newRegisterCmd(a))
	root.AddCommand(newOrderCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newUICmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.ExecuteContext(context.Background())
	if err == nil {
		os.Exit(exitSuccess)
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, "madang:", err)
	}
	os.Exit(exitCode(err))
}

// load resolves the config directory and reads config.yaml.
func (a *app) load() error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return wrapExitError(exitSysError, "resolve config dir", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return wrapExitError(exitSysError, "load config", err)
	}
	a.settings = settingsFrom(v)
	a.settings.ConfigDir = configDir
	return nil
}

// backendConfig resolves where the database file lives.
func (a *app) backendConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.settings.DataDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{DataDir: dataDir, Database: a.settings.Database}, nil
}

// attachBackend opens the database. The caller must defer backend.Detach().
func (a *app) attachBackend() (*sqlite.Backend, error) {
	cfg, err := a.backendConfig()
	if err != nil {
		return nil, wrapExitError(exitSysError, "open database", err)
	}
	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, wrapExitError(exitSysError, "open database", err)
	}
	return backend, nil
}

// newLogger builds the command logger. fallback receives records when no log
// file is configured; nil discards them.
func (a *app) newLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level := a.settings.LogLevel
	if a.flags.verbose {
		level = "debug"
	}
	log, closeFn, err := logging.New(logging.Config{
		Level:      level,
		Format:     a.settings.LogFormat,
		OutputPath: a.settings.LogFile,
		Fallback:   fallback,
	})
	if err != nil {
		return nil, closeFn, wrapExitError(exitSysError, "configure logging", err)
	}
	return log, closeFn, nil
}

// session bundles everything a flow-running command needs.
type session struct {
	backend *sqlite.Backend
	service *bookstore.Service
	state   *bookstore.Session
	log     *slog.Logger
	close   func()
}

// openSession attaches the database and builds a Service reporting to
// surface. Logs go to logOut unless a log file is configured.
func (a *app) openSession(surface bookstore.Surface, logOut io.Writer) (*session, error) {
	log, closeLog, err := a.newLogger(logOut)
	if err != nil {
		return nil, err
	}
	backend, err := a.attachBackend()
	if err != nil {
		closeLog()
		return nil, err
	}

	state := bookstore.NewSession()
	log = log.With("session", state.ID)
	log.Debug("database attached", "path", backend.Path())

	svc := bookstore.New(backend, surface, bookstore.Options{
		Logger: log,
		Pricing: bookstore.Pricing{
			Min:  a.settings.PriceMin,
			Step: a.settings.PriceStep,
		},
	})

	return &session{
		backend: backend,
		service: svc,
		state:   state,
		log:     log,
		close: func() {
			if err := backend.Detach(); err != nil {
				log.Error("closing database", "error", err)
			}
			closeLog()
		},
	}, nil
}
