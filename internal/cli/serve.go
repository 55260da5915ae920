package cli

import (
	"github.com/spf13/cobra"

	"github.com/driftcli/drift/internal/server"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the drift HTTP API",
		Long: `Run the drift HTTP API.

Endpoints:
  POST   /v1/distance  compute the distance of a route
  POST   /v1/tokens    tokenize a route
  GET    /v1/history   list recorded calculations
  DELETE /v1/history   clear recorded calculations
  GET    /healthz      liveness check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	store, err := c.newHistoryStore(ctx, cfg)
	if err != nil {
		// The API still works without history; say so and carry on.
		logger.Warn("history disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return server.New(addr, store, logger).ListenAndServe(ctx)
}
