package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/maisem/pressure"
	"github.com/maisem/pressure/internal/render"
)

func (c *CLI) dotCommand() *cobra.Command {
	var (
		flags   solverFlags
		costs   bool
		svg     bool
		output  string
		doFetch bool
	)
	cmd := &cobra.Command{
		Use:   "dot [file|-]",
		Short: "Draw the tunnel network as Graphviz DOT or SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd, &flags)
			if err != nil {
				return err
			}
			input, err := c.readInput(cmd, args, cfg, doFetch)
			if err != nil {
				return err
			}
			n, err := pressure.Parse(bytes.NewReader(input))
			if err != nil {
				return err
			}
			ix, err := pressure.NewIndex(n, cfg.Start)
			if err != nil {
				return err
			}
			if cfg.Collapse {
				ix = ix.Collapse()
			}
			out := []byte(render.ToDOT(ix, render.Options{Costs: costs}))
			if svg {
				if out, err = render.RenderSVG(cmd.Context(), string(out)); err != nil {
					return err
				}
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			c.Logger.Info("writing", "path", output, "bytes", len(out))
			return os.WriteFile(output, out, 0644)
		},
	}
	// Drawings show the raw tunnels unless the config or --collapse asks otherwise.
	defaults := DefaultConfig()
	defaults.Collapse = false
	flags.register(cmd.Flags(), defaults)
	cmd.Flags().BoolVar(&costs, "costs", false, "label every arc with its travel time")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&doFetch, "fetch", false, "use the cached or downloaded puzzle input from the [fetch] config")
	return cmd
}
