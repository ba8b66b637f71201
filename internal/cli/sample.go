package cli

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

//go:embed sample.txt
var embeddedSample string

// sample is an input with its known answers, one per part.
type sample struct {
	want  string
	input string
}

var sampleRx = regexp.MustCompile(`(?s)^\s*want=([^\n]*)(?:\s+(.+?))?\s*$`)

// parseSample parses text of the form
//
//	want=1651 1707
//
//	Valve AA has flow rate=0; ...
func parseSample(text string) (sample, bool) {
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	input := m[2]
	if input != "" {
		input += "\n"
	}
	return sample{want: strings.TrimSpace(m[1]), input: input}, true
}

func (c *CLI) sampleCommand() *cobra.Command {
	var (
		flags solverFlags
		part  string
	)
	cmd := &cobra.Command{
		Use:   "sample [file...]",
		Short: "Check answers against samples with known results",
		Long: `Each sample starts with a want= line listing the expected answer of every part,
followed by a blank line and the puzzle input. Without files the built-in sample is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config(cmd, &flags)
			if err != nil {
				return err
			}
			texts := []string{embeddedSample}
			if len(args) > 0 {
				texts = texts[:0]
				for _, a := range args {
					b, err := os.ReadFile(a)
					if err != nil {
						return err
					}
					texts = append(texts, string(b))
				}
			}
			failed := 0
			for i, text := range texts {
				s, ok := parseSample(text)
				if !ok {
					return fmt.Errorf("sample %d: no want= line", i+1)
				}
				n, err := c.check(cmd, cfg, s, part)
				if err != nil {
					return fmt.Errorf("sample %d: %w", i+1, err)
				}
				failed += n
			}
			if failed > 0 {
				return fmt.Errorf("%d sample answers wrong", failed)
			}
			return nil
		},
	}
	flags.register(cmd.Flags(), DefaultConfig())
	cmd.Flags().StringVar(&part, "part", "", "part to run (1 or 2)")
	return cmd
}

// check solves s and prints a line per part. It returns how many answers
// differ from s.want.
func (c *CLI) check(cmd *cobra.Command, cfg Config, s sample, only string) (int, error) {
	wants := strings.Fields(s.want)
	solver, err := c.solver(cfg, []byte(s.input))
	if err != nil {
		return 0, err
	}
	out := cmd.OutOrStdout()
	failed := 0
	for i, p := range cfg.parts() {
		if only != "" && p.name != only {
			continue
		}
		if i >= len(wants) || wants[i] == "???" {
			continue
		}
		t0 := time.Now()
		got, err := p.solve(solver, p.budget)
		if err != nil {
			return failed, fmt.Errorf("part %s: %w", p.name, err)
		}
		if fmt.Sprint(got) != wants[i] {
			fmt.Fprintf(out, "part %s: %v ❌; want %v\n", p.name, got, wants[i])
			failed++
			continue
		}
		fmt.Fprintf(out, "part %s sample: %v ✅ (%v)\n", p.name, got, time.Since(t0).Round(time.Microsecond))
	}
	return failed, nil
}
