package pressure

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
)

const (
	// DefaultStart is the valve every actor starts at.
	DefaultStart = "AA"
	// DefaultBudget is the number of minutes a single actor has.
	DefaultBudget = 30
	// DefaultPairBudget is the number of minutes each of two actors has.
	DefaultPairBudget = 26
	// DefaultMaxCells caps the number of DP table cells (8 bytes each).
	DefaultMaxCells = 1 << 27
)

// Option configures a Solver, BuildTable or BestPair.
type Option func(*options)

type options struct {
	start    string
	collapse bool
	workers  int
	maxCells int
	logger   *log.Logger

	err error // first invalid option
}

func defaultOptions() options {
	return options{
		start:    DefaultStart,
		workers:  runtime.GOMAXPROCS(0),
		maxCells: DefaultMaxCells,
	}
}

func buildOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func (o *options) fail(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOption}, args...)...)
	}
}

// WithStart sets the name of the start valve.
func WithStart(name string) Option {
	return func(o *options) {
		if name == "" {
			o.fail("empty start valve")
			return
		}
		o.start = name
	}
}

// WithCollapse makes New drop valves without flow before building tables.
func WithCollapse(on bool) Option {
	return func(o *options) { o.collapse = on }
}

// WithWorkers bounds the goroutines filling a table layer or searching
// pairs. Zero means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.fail("workers %d < 0", n)
		case n == 0:
			o.workers = runtime.GOMAXPROCS(0)
		default:
			o.workers = n
		}
	}
}

// WithMaxCells caps the size of a DP table.
func WithMaxCells(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.fail("max cells %d <= 0", n)
			return
		}
		o.maxCells = n
	}
}

// WithLogger sets a logger for debug output. Nil disables logging.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}
