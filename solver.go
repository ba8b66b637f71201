package pressure

import "fmt"

// Solver answers budget queries for one network.
type Solver struct {
	ix   *Index
	opts []Option
}

// New validates opts, renumbers n and, with WithCollapse, drops the valves
// that only connect others. Every input error is reported here.
func New(n *Network, opts ...Option) (*Solver, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	ix, err := NewIndex(n, o.start)
	if err != nil {
		return nil, err
	}
	if o.logger != nil {
		if lost := ix.Stranded(); lost != 0 {
			o.logger.Warn("valves unreachable from start", "start", o.start, "count", lost.Len(), "valves", ix.maskNames(lost))
		}
	}
	if o.collapse {
		ix = ix.Collapse()
	}
	if o.logger != nil {
		o.logger.Debug("indexed network", "valves", n.Len(), "kept", ix.Len(), "interesting", n.Interesting(), "start", o.start)
	}
	return &Solver{ix: ix, opts: opts}, nil
}

// Index returns the index tables are built from.
func (s *Solver) Index() *Index {
	return s.ix
}

// Table builds the DP table for budget minutes.
func (s *Solver) Table(budget int) (*Table, error) {
	return BuildTable(s.ix, budget, s.opts...)
}

// Alone returns the most pressure one actor can release in budget minutes.
func (s *Solver) Alone(budget int) (int64, error) {
	t, err := s.Table(budget)
	if err != nil {
		return 0, fmt.Errorf("alone: %w", err)
	}
	return t.Best(s.ix.Start), nil
}

// Pair returns the most pressure two actors can release with budget
// minutes each.
func (s *Solver) Pair(budget int) (int64, error) {
	t, err := s.Table(budget)
	if err != nil {
		return 0, fmt.Errorf("pair: %w", err)
	}
	return t.BestPair(s.ix.Start, s.opts...)
}
