// Package cli implements the valves command-line interface.
//
// Commands:
//   - solve: print the answers for a puzzle input (file, stdin or fetched)
//   - sample: check the answers against inputs with known results
//   - dot: draw the tunnel network as Graphviz DOT or SVG
//
// All commands read an optional TOML config (--config) and support
// --verbose (-v) for debug logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "valves",
		Short:        "Release as much pressure as possible before the volcano erupts",
		Long:         `valves finds the most pressure that can be released from a network of valves and tunnels, alone in 30 minutes or with a helper in 26.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file (default "+defaultConfigFile+" if present)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.dotCommand())
	return root
}
