package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "valves.toml", `
start = "BB"
budget = 20
collapse = false

[fetch]
year = 2023
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Start = "BB"
	want.Budget = 20
	want.Collapse = false
	want.Fetch.Year = 2023
	assert.Equal(t, want, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err, "an explicit config file must exist")

	_, err = LoadConfig(writeFile(t, "bad.toml", "budget = \"thirty\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "unknown.toml", "budgte = 30\n"))
	assert.ErrorContains(t, err, "unknown keys")

	cfg, err := LoadConfig("")
	require.NoError(t, err, "the default config file is optional")
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for _, mod := range []func(*Config){
		func(c *Config) { c.Start = "" },
		func(c *Config) { c.Budget = 0 },
		func(c *Config) { c.PairBudget = -1 },
		func(c *Config) { c.Workers = -2 },
		func(c *Config) { c.MaxCells = 0 },
	} {
		cfg := DefaultConfig()
		mod(&cfg)
		assert.Error(t, cfg.Validate(), "%+v", cfg)
	}
}

func TestSolverFlags(t *testing.T) {
	var f solverFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.register(fs, DefaultConfig())
	require.NoError(t, fs.Parse([]string{"--budget=12", "--collapse=false"}))

	cfg := DefaultConfig()
	cfg.Start = "ZZ"
	cfg.PairBudget = 7
	f.apply(fs, &cfg)

	assert.Equal(t, 12, cfg.Budget)
	assert.False(t, cfg.Collapse)
	assert.Equal(t, "ZZ", cfg.Start, "unset flags keep the config value")
	assert.Equal(t, 7, cfg.PairBudget)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	got, err := expandHome("~/keys/aoc.session")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "keys", "aoc.session"), got)

	got, err = expandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
