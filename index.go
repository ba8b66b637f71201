package pressure

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Arc is a one-way tunnel to the valve at dense index To taking Cost minutes.
type Arc struct {
	To   int
	Cost int
}

// Index is a Network renumbered for the DP table. Valves are ordered by
// descending flow rate (ties by name), so the K valves with a positive rate
// occupy indices 0..K-1 and are the only ones with a Mask bit.
type Index struct {
	Valves []Valve
	Adj    [][]Arc // outgoing arcs per dense index
	K      int
	Start  int

	names map[string]int
}

// NewIndex renumbers n and locates the start valve.
func NewIndex(n *Network, start string) (*Index, error) {
	valves := n.Valves()
	slices.SortStableFunc(valves, func(a, b Valve) int {
		if c := cmp.Compare(b.Rate, a.Rate); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
	ix := &Index{
		Valves: valves,
		Adj:    make([][]Arc, len(valves)),
		names:  make(map[string]int, len(valves)),
	}
	for i, v := range valves {
		ix.names[v.Name] = i
		if v.Rate > 0 {
			ix.K++
		}
	}
	if ix.K > MaxInteresting {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, ix.K, MaxInteresting)
	}
	s, ok := ix.names[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	ix.Start = s
	for i, v := range valves {
		for _, t := range v.Tunnels {
			ix.Adj[i] = addArc(ix.Adj[i], Arc{To: ix.names[t], Cost: 1})
		}
	}
	return ix, nil
}

// addArc appends a to arcs, keeping only the cheapest arc per target.
func addArc(arcs []Arc, a Arc) []Arc {
	for i, o := range arcs {
		if o.To == a.To {
			arcs[i].Cost = min(o.Cost, a.Cost)
			return arcs
		}
	}
	return append(arcs, a)
}

// Len returns the number of valves.
func (ix *Index) Len() int {
	return len(ix.Valves)
}

// Lookup returns the dense index of the named valve.
func (ix *Index) Lookup(name string) (int, bool) {
	i, ok := ix.names[name]
	return i, ok
}

// maskNames returns the names of the valves in m.
func (ix *Index) maskNames(m Mask) []string {
	var out []string
	for i := 0; i < ix.K; i++ {
		if m.Has(i) {
			out = append(out, ix.Valves[i].Name)
		}
	}
	return out
}

// Rates returns the flow rate of every valve by dense index.
func (ix *Index) Rates() []int {
	out := make([]int, len(ix.Valves))
	for i, v := range ix.Valves {
		out[i] = v.Rate
	}
	return out
}

// Graph returns the arcs of ix as a Graph keyed by dense index.
func (ix *Index) Graph() *Graph[int] {
	var g Graph[int]
	for i, arcs := range ix.Adj {
		g.AddNode(i)
		for _, a := range arcs {
			g.AddArc(i, a.To, a.Cost)
		}
	}
	return &g
}

// unitCost reports whether every arc costs one minute.
func (ix *Index) unitCost() bool {
	for _, arcs := range ix.Adj {
		for _, a := range arcs {
			if a.Cost != 1 {
				return false
			}
		}
	}
	return true
}
