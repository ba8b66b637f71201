package pressure

import (
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Best returns the most pressure a single actor starting at the valve with
// dense index start can release over the table's budget.
func (t *Table) Best(start int) int64 {
	return t.At(t.budget-1, start, FullMask(t.k))
}

// BestPair returns the most pressure two actors, both starting at start
// with the table's budget each, can release when no valve is opened by
// both. A start outside the table is an error wrapping ErrStartNotFound.
// Every disjoint pair of masks is tried, not only the pairs that
// cover all valves: with little time a smaller set can be worth more.
func (t *Table) BestPair(start int, opts ...Option) (int64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	if start < 0 || start >= t.nodes {
		return 0, fmt.Errorf("%w: index %d of %d valves", ErrStartNotFound, start, t.nodes)
	}
	top := t.row(t.budget-1, start)

	shards := max(1, min(o.workers, len(top)))
	best := make([]int64, shards)
	step := (len(top) + shards - 1) / shards
	var g errgroup.Group
	for i := range shards {
		lo, hi := i*step, min((i+1)*step, len(top))
		g.Go(func() error {
			best[i] = bestDisjoint(top, FullMask(t.k), lo, hi)
			return nil
		})
	}
	g.Wait()
	return slices.Max(best), nil
}

// bestDisjoint returns max(top[m] + top[j]) over lo <= m < hi and every
// submask j of the valves not in m.
func bestDisjoint(top []int64, full Mask, lo, hi int) int64 {
	var best int64
	for m := lo; m < hi; m++ {
		a := top[m]
		rest := full &^ Mask(m)
		for j := rest; ; j = (j - 1) & rest {
			best = max(best, a+top[j])
			if j == 0 {
				break
			}
		}
	}
	return best
}
