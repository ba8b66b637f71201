package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/maisem/pressure"
)

const defaultConfigFile = "valves.toml"

// Config is the TOML configuration shared by all commands.
type Config struct {
	Start      string      `toml:"start"`
	Budget     int         `toml:"budget"`
	PairBudget int         `toml:"pair_budget"`
	Collapse   bool        `toml:"collapse"`
	Workers    int         `toml:"workers"`
	MaxCells   int         `toml:"max_cells"`
	Fetch      FetchConfig `toml:"fetch"`
}

// FetchConfig locates puzzle input on disk or on the puzzle site.
type FetchConfig struct {
	Year        int    `toml:"year"`
	Day         int    `toml:"day"`
	SessionFile string `toml:"session_file"`
	BaseURL     string `toml:"base_url"`
	CacheDir    string `toml:"cache_dir"`
}

// DefaultConfig returns the configuration used when no file sets a value.
func DefaultConfig() Config {
	return Config{
		Start:      pressure.DefaultStart,
		Budget:     pressure.DefaultBudget,
		PairBudget: pressure.DefaultPairBudget,
		Collapse:   true,
		MaxCells:   pressure.DefaultMaxCells,
		Fetch: FetchConfig{
			Year:        2022,
			Day:         16,
			SessionFile: "~/keys/aoc.session",
			BaseURL:     "https://adventofcode.com",
			CacheDir:    ".",
		},
	}
}

// LoadConfig reads path over the defaults. An empty path reads
// valves.toml if it exists.
func LoadConfig(path string) (Config, error) {
	return loadConfig(path, DefaultConfig())
}

// loadConfig reads path over base.
func loadConfig(path string, base Config) (Config, error) {
	cfg := base
	required := path != ""
	if !required {
		path = defaultConfigFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return cfg, fmt.Errorf("config %s: unknown keys %v", path, keys)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Start == "":
		return errors.New("config: start must not be empty")
	case c.Budget < 1:
		return fmt.Errorf("config: budget %d < 1", c.Budget)
	case c.PairBudget < 1:
		return fmt.Errorf("config: pair_budget %d < 1", c.PairBudget)
	case c.Workers < 0:
		return fmt.Errorf("config: workers %d < 0", c.Workers)
	case c.MaxCells < 1:
		return fmt.Errorf("config: max_cells %d < 1", c.MaxCells)
	}
	return nil
}

// Options returns the solver options for c.
func (c Config) Options(l *log.Logger) []pressure.Option {
	return []pressure.Option{
		pressure.WithStart(c.Start),
		pressure.WithCollapse(c.Collapse),
		pressure.WithWorkers(c.Workers),
		pressure.WithMaxCells(c.MaxCells),
		pressure.WithLogger(l),
	}
}

// solverFlags are command-line overrides for Config. defaults is the
// command's config before the file and flags are applied.
type solverFlags struct {
	defaults Config

	start      string
	budget     int
	pairBudget int
	collapse   bool
	workers    int
}

func (f *solverFlags) register(set *pflag.FlagSet, d Config) {
	f.defaults = d
	set.StringVar(&f.start, "start", d.Start, "start valve")
	set.IntVar(&f.budget, "budget", d.Budget, "minutes for a single actor")
	set.IntVar(&f.pairBudget, "pair-budget", d.PairBudget, "minutes for each of two actors")
	set.BoolVar(&f.collapse, "collapse", d.Collapse, "drop valves without flow before solving")
	set.IntVar(&f.workers, "workers", d.Workers, "goroutines per table layer (0 = GOMAXPROCS)")
}

// apply copies the flags that were set on the command line into c.
func (f *solverFlags) apply(set *pflag.FlagSet, c *Config) {
	if set.Changed("start") {
		c.Start = f.start
	}
	if set.Changed("budget") {
		c.Budget = f.budget
	}
	if set.Changed("pair-budget") {
		c.PairBudget = f.pairBudget
	}
	if set.Changed("collapse") {
		c.Collapse = f.collapse
	}
	if set.Changed("workers") {
		c.Workers = f.workers
	}
}

// expandHome replaces a leading ~/ with the user's home directory.
func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rest), nil
}
