package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/driftcli/drift/pkg/errors"
	"github.com/driftcli/drift/pkg/route"
	"github.com/driftcli/drift/pkg/trace"
)

// traceCommand creates the trace command, which renders the walked path
// as a node-link diagram.
func (c *CLI) traceCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "trace <route>",
		Short: "Render the walked path of a route",
		Long: `Render the path a route walks as a node-link diagram, one waypoint per
movement, starting at the origin.

Examples:
  drift trace 3F4R -o walk.svg
  drift trace 3F4R -o walk.png --format png
  drift trace 3F4R --format dot        # DOT source to stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrace(cmd, args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout for dot)")
	cmd.Flags().StringVar(&format, "format", "svg", "output format: svg, png or dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label every waypoint with its coordinates")

	return cmd
}

func (c *CLI) runTrace(cmd *cobra.Command, input, output, format string, detailed bool) error {
	logger := loggerFromContext(cmd.Context())

	tokens, err := route.Tokenize(input)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	dot, err := trace.ToDOT(tokens, trace.Options{Detailed: detailed})
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(format) {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = trace.RenderSVG(dot)
	case "png":
		data, err = trace.RenderPNG(dot)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (expected svg, png or dot)", format)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d waypoints", len(tokens)+1))

	if output == "" {
		if strings.ToLower(format) != "dot" {
			return errors.New(errors.ErrCodeInvalidInput, "--output is required for %s", format)
		}
		fmt.Print(dot)
		return nil
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return err
	}
	printFile(output)
	return nil
}
