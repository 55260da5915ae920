package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftcli/drift/pkg/history"
	"github.com/driftcli/drift/pkg/observability"
	"github.com/driftcli/drift/pkg/route"
)

// distResult is the --json output of the dist command.
type distResult struct {
	Route      string        `json:"route"`
	Tokens     []route.Token `json:"tokens"`
	Horizontal float64       `json:"horizontal"`
	Vertical   float64       `json:"vertical"`
	Distance   float64       `json:"distance"`
}

// distCommand creates the dist command.
func (c *CLI) distCommand() *cobra.Command {
	var (
		jsonOut   bool
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "dist <route>",
		Short: "Compute the straight-line distance of a route",
		Long: `Compute the straight-line (Euclidean) distance from the origin after
executing a route string.

A route is a concatenation of {steps}{direction} groups with no separators.
Directions are F (forward), B (back), L (left), R (right), either case.

Examples:
  drift dist 3F4R       # 3 forward, 4 right: distance 5
  drift dist 1b2f3l4r   # lower case works too
  drift dist 10F --json # machine-readable output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDist(cmd, args[0], jsonOut, noHistory)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the calculation")

	return cmd
}

func (c *CLI) runDist(cmd *cobra.Command, input string, jsonOut, noHistory bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	tokens, err := route.Tokenize(input)
	observability.Route().OnTokenize(ctx, input, len(tokens), err)
	if err != nil {
		return err
	}

	d, err := route.Displace(tokens)
	observability.Route().OnCompute(ctx, len(tokens), d.Distance(), err)
	if err != nil {
		return err
	}

	if !noHistory {
		c.recordHistory(cmd, route.Encode(tokens), d)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(distResult{
			Route:      input,
			Tokens:     tokens,
			Horizontal: d.Horizontal,
			Vertical:   d.Vertical,
			Distance:   d.Distance(),
		})
	}

	printKeyValue("route", route.Encode(tokens))
	printKeyValue("tokens", fmt.Sprintf("%d", len(tokens)))
	printKeyValue("offset", fmt.Sprintf("%g right, %g forward", d.Horizontal, d.Vertical))
	printSuccess("%s", "distance "+StyleNumber.Render(fmt.Sprintf("%g", d.Distance())))

	logger.Debug("computed", "route", input, "distance", d.Distance())
	return nil
}

// recordHistory saves a calculation, logging rather than failing on store
// errors: history must never fail the calculation it records.
func (c *CLI) recordHistory(cmd *cobra.Command, routeStr string, d route.Displacement) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		logger.Warn("history disabled", "err", err)
		return
	}
	store, err := c.newHistoryStore(ctx, cfg)
	if err != nil || store == nil {
		if err != nil {
			logger.Warn("history disabled", "err", err)
		}
		return
	}
	defer store.Close()

	err = store.Put(ctx, history.NewEntry(routeStr, d))
	observability.Store().OnPut(ctx, cfg.History.Backend, err)
	if err != nil {
		logger.Warn("recording history entry", "err", err)
	}
}
