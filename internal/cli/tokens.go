package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/driftcli/drift/pkg/observability"
	"github.com/driftcli/drift/pkg/route"
)

// tokensCommand creates the tokens command, which validates a route and
// prints its token sequence without computing a distance.
func (c *CLI) tokensCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "tokens <route>",
		Short: "Tokenize a route string and show its movements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTokens(cmd, args[0], jsonOut)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON")

	return cmd
}

func (c *CLI) runTokens(cmd *cobra.Command, input string, jsonOut bool) error {
	ctx := cmd.Context()

	tokens, err := route.Tokenize(input)
	observability.Route().OnTokenize(ctx, input, len(tokens), err)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(tokens))
	for i, t := range tokens {
		rows[i] = []string{fmt.Sprintf("%d", i+1), t.Magnitude, t.Direction.String()}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Steps", "Direction").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleNumber
			}
			return StyleValue
		})

	fmt.Println(t.Render())
	printDetail("%d movements", len(tokens))
	return nil
}
