package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/driftcli/drift/pkg/errors"
	"github.com/driftcli/drift/pkg/history"
	"github.com/driftcli/drift/pkg/observability"
)

// historyCommand creates the history command with list/clear subcommands.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage recorded calculations",
	}

	cmd.AddCommand(c.historyListCommand())
	cmd.AddCommand(c.historyClearCommand())

	return cmd
}

func (c *CLI) historyListCommand() *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistoryList(cmd, limit, jsonOut)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", defaultHistoryLimit, "maximum entries to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")

	return cmd
}

func (c *CLI) historyClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistoryClear(cmd)
		},
	}
}

func (c *CLI) openHistory(cmd *cobra.Command) (history.Store, string, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, "", err
	}
	store, err := c.newHistoryStore(cmd.Context(), cfg)
	if err != nil {
		return nil, "", err
	}
	if store == nil {
		return nil, "", errors.New(errors.ErrCodeNotFound, "history is not enabled")
	}
	return store, cfg.History.Backend, nil
}

func (c *CLI) runHistoryList(cmd *cobra.Command, limit int, jsonOut bool) error {
	ctx := cmd.Context()

	store, backend, err := c.openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(ctx, limit)
	observability.Store().OnList(ctx, backend, len(entries), err)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		printDetail("no calculations recorded")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.CreatedAt.Local().Format("Jan 2 15:04"),
			e.Route,
			fmt.Sprintf("%g", e.Distance),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("When", "Route", "Distance").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				return StyleNumber
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printDetail("%d entries (%s backend)", len(entries), backend)
	return nil
}

func (c *CLI) runHistoryClear(cmd *cobra.Command) error {
	store, backend, err := c.openHistory(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return err
	}
	printSuccess("cleared history (%s backend)", backend)
	return nil
}
