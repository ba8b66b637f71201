package cli

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/maisem/pressure"
)

// part is one question asked of a network.
type part struct {
	name   string
	budget int
	solve  func(*pressure.Solver, int) (int64, error)
}

func (c Config) parts() []part {
	return []part{
		{name: "1", budget: c.Budget, solve: (*pressure.Solver).Alone},
		{name: "2", budget: c.PairBudget, solve: (*pressure.Solver).Pair},
	}
}

// config loads the config file and applies the command's flag overrides.
func (c *CLI) config(cmd *cobra.Command, flags *solverFlags) (Config, error) {
	cfg, err := loadConfig(c.configPath, flags.defaults)
	if err != nil {
		return cfg, err
	}
	flags.apply(cmd.Flags(), &cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	c.Logger.Debug("config", "start", cfg.Start, "budget", cfg.Budget, "pair_budget", cfg.PairBudget,
		"collapse", cfg.Collapse, "workers", cfg.Workers)
	return cfg, nil
}

func (c *CLI) solver(cfg Config, input []byte) (*pressure.Solver, error) {
	n, err := pressure.Parse(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}
	return pressure.New(n, cfg.Options(c.Logger)...)
}

// readInput returns the named file, stdin for "-" or no argument, or the
// fetched puzzle input.
func (c *CLI) readInput(cmd *cobra.Command, args []string, cfg Config, doFetch bool) ([]byte, error) {
	switch {
	case doFetch:
		return c.fileOrFetch(cmd.Context(), cfg.Fetch, http.DefaultClient)
	case len(args) == 0 || args[0] == "-":
		return io.ReadAll(cmd.InOrStdin())
	default:
		return os.ReadFile(args[0])
	}
}

func (c *CLI) solveCommand() *cobra.Command {
	var (
		flags   solverFlags
		part    string
		doFetch bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print the most pressure that can be released",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd, &flags)
			if err != nil {
				return err
			}
			if doFetch && len(args) > 0 {
				return fmt.Errorf("--fetch takes no input file")
			}
			input, err := c.readInput(cmd, args, cfg, doFetch)
			if err != nil {
				return err
			}
			solver, err := c.solver(cfg, input)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range cfg.parts() {
				if part != "" && p.name != part {
					continue
				}
				t0 := time.Now()
				got, err := p.solve(solver, p.budget)
				if err != nil {
					return fmt.Errorf("part %s: %w", p.name, err)
				}
				fmt.Fprintf(out, "part %s: %v (took %v)\n", p.name, got, time.Since(t0).Round(time.Microsecond))
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), DefaultConfig())
	cmd.Flags().StringVar(&part, "part", "", "part to run (1 or 2)")
	cmd.Flags().BoolVar(&doFetch, "fetch", false, "use the cached or downloaded puzzle input from the [fetch] config")
	return cmd
}
