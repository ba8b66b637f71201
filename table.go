package pressure

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"tailscale.com/util/deephash"
)

// Table holds totals[time][node][mask]: the most pressure that can still be
// released with time+1 minutes left, standing at node, opening only valves
// in mask. Layer 0 is all zero since a valve opened in the last minute
// releases nothing.
//
// A Table is read-only once built.
type Table struct {
	budget int
	nodes  int
	k      int
	cells  []int64
}

// BuildTable fills the table for ix with budget minutes. Moving from node
// follows the tunnels leading out of node: an arc node->to costing c
// minutes reads totals[time-c][to][mask]. On an uncollapsed index every arc
// costs one, and for tunnels listed both ways in and out are the same.
//
// All size and overflow checks happen before the table is allocated.
func BuildTable(ix *Index, budget int, opts ...Option) (*Table, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if budget < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBudget, budget)
	}
	cells, ok := tableCells(budget, ix.Len(), ix.K)
	if !ok || cells > o.maxCells {
		return nil, fmt.Errorf("%w: %d minutes x %d valves x 2^%d masks, limit %d cells",
			ErrTableTooLarge, budget, ix.Len(), ix.K, o.maxCells)
	}
	rates := ix.Rates()
	if err := checkOverflow(rates, budget); err != nil {
		return nil, err
	}

	t0 := time.Now()
	t := &Table{
		budget: budget,
		nodes:  ix.Len(),
		k:      ix.K,
		cells:  make([]int64, cells),
	}
	for tm := 1; tm < budget; tm++ {
		t.fillLayer(ix, rates, tm, o.workers)
	}
	if o.logger != nil {
		o.logger.Debug("built table",
			"minutes", budget, "valves", t.nodes, "interesting", t.k,
			"cells", cells, "took", time.Since(t0).Round(time.Microsecond))
	}
	return t, nil
}

// tableCells returns budget*n*2^k, or false if it does not fit in an int.
func tableCells(budget, n, k int) (int, bool) {
	if n == 0 || k >= 62 {
		return 0, false
	}
	if budget > math.MaxInt/n {
		return 0, false
	}
	per := budget * n
	if per > math.MaxInt>>k {
		return 0, false
	}
	return per << k, true
}

// checkOverflow reports whether opening every valve for the whole budget
// could exceed int64.
func checkOverflow(rates []int, budget int) error {
	if len(rates) == 0 {
		return nil
	}
	top := int64(slices.Max(rates))
	if top > 0 && top > math.MaxInt64/int64(len(rates))/int64(budget) {
		return fmt.Errorf("%w: rate %d over %d minutes", ErrOverflow, top, budget)
	}
	if total := int64(Sum(rates...)); total > math.MaxInt64/int64(budget) {
		return fmt.Errorf("%w: total rate %d over %d minutes", ErrOverflow, total, budget)
	}
	return nil
}

// fillLayer computes layer tm from the layers below it. Nodes are
// independent within a layer, so they are spread over workers.
func (t *Table) fillLayer(ix *Index, rates []int, tm, workers int) {
	if workers <= 1 {
		for node := 0; node < t.nodes; node++ {
			t.fillNode(ix.Adj[node], rates[node], tm, node)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for node := 0; node < t.nodes; node++ {
		g.Go(func() error {
			t.fillNode(ix.Adj[node], rates[node], tm, node)
			return nil
		})
	}
	g.Wait()
}

func (t *Table) fillNode(arcs []Arc, rate, tm, node int) {
	cur := t.row(tm, node)
	here := t.row(tm-1, node)
	gain := int64(rate) * int64(tm)
	from := make([][]int64, 0, len(arcs))
	for _, a := range arcs {
		if a.Cost <= tm {
			from = append(from, t.row(tm-a.Cost, a.To))
		}
	}
	for m := range cur {
		mask := Mask(m)
		var best int64
		if mask.Has(node) {
			best = here[mask.Without(node)] + gain
		}
		for _, r := range from {
			best = max(best, r[m])
		}
		cur[m] = best
	}
}

// row returns the 2^k cells of totals[tm][node].
func (t *Table) row(tm, node int) []int64 {
	size := 1 << t.k
	off := (tm*t.nodes + node) * size
	return t.cells[off : off+size : off+size]
}

// Budget returns the number of minutes the table covers.
func (t *Table) Budget() int { return t.budget }

// Nodes returns the number of valves.
func (t *Table) Nodes() int { return t.nodes }

// K returns the number of valves with a positive rate.
func (t *Table) K() int { return t.k }

// At returns totals[time][node][mask]. It panics if any index is out of
// range.
func (t *Table) At(time, node int, mask Mask) int64 {
	if time < 0 || time >= t.budget || node < 0 || node >= t.nodes || mask > FullMask(t.k) {
		panic(fmt.Sprintf("pressure: cell (%d, %d, %#x) outside %dx%dx2^%d table",
			time, node, uint64(mask), t.budget, t.nodes, t.k))
	}
	return t.row(time, node)[mask]
}

var hashCells = sync.OnceValue(func() func(*[]int64) deephash.Sum {
	return deephash.HasherForType[[]int64]()
})

// Hash returns a hash of every cell. Tables built from the same input hash
// equal.
func (t *Table) Hash() deephash.Sum {
	return hashCells()(&t.cells)
}
