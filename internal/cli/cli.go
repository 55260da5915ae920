// Package cli implements the drift command-line interface.
//
// Commands compute the straight-line displacement of compact route
// strings ("3F4R"), inspect their token sequences, render walked paths,
// browse calculation history, and run the HTTP API. Running drift with no
// arguments starts the interactive menu.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/driftcli/drift/pkg/buildinfo"
	"github.com/driftcli/drift/pkg/config"
	"github.com/driftcli/drift/pkg/history"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "drift"

	// defaultHistoryLimit is how many history entries "history list" shows.
	defaultHistoryLimit = 20
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. With no subcommand, the interactive menu starts.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Drift computes straight-line displacement from route strings",
		Long:         `Drift parses compact movement encodings like "3F4R" (3 steps forward, 4 steps right) and computes the straight-line distance from the origin.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd.Context())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default ~/.config/drift/config.toml)")

	// Register all subcommands
	root.AddCommand(c.distCommand())
	root.AddCommand(c.tokensCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Store Factory
// =============================================================================

// loadConfig reads the config file named by --config (or the default
// location).
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.ConfigPath)
}

// newHistoryStore opens the history backend the config selects.
// Returns nil when history is disabled for this invocation.
func (c *CLI) newHistoryStore(ctx context.Context, cfg config.Config) (history.Store, error) {
	h := cfg.History
	switch strings.ToLower(h.Backend) {
	case config.BackendMemory:
		return history.NewMemoryStore(), nil
	case config.BackendRedis:
		return history.NewRedisStore(ctx, history.RedisOptions{
			Addr:     h.Redis.Addr,
			Password: h.Redis.Password,
			DB:       h.Redis.DB,
			TTL:      h.TTL.Duration(),
		})
	case config.BackendMongo:
		return history.NewMongoStore(ctx, h.Mongo.URI, h.Mongo.Database, h.Mongo.Collection)
	default: // file
		dir := h.Dir
		if dir == "" {
			d, err := config.StateDir()
			if err != nil {
				c.Logger.Warn("history disabled: no state directory", "err", err)
				return nil, nil
			}
			dir = d
		}
		return history.NewFileStore(dir)
	}
}
