package pressure

// Unreachable is the distance between valves with no path between them.
const Unreachable = -1

// Distances returns the shortest travel time from every valve to every
// other valve, by dense index.
func (ix *Index) Distances() [][]int {
	g := ix.Graph()
	unit := ix.unitCost()
	out := make([][]int, ix.Len())
	for i := range out {
		out[i] = distanceRow(g, i, ix.Len(), unit)
	}
	return out
}

// Stranded returns the valves with a positive rate that cannot be reached
// from the start valve. They never contribute to any result.
func (ix *Index) Stranded() Mask {
	reach := ix.Graph().ReachableNodes(ix.Start)
	var m Mask
	for i := 0; i < ix.K; i++ {
		if !reach[i] {
			m = m.With(i)
		}
	}
	return m
}

func distanceRow(g *Graph[int], from, n int, unit bool) []int {
	var d map[int]int
	if unit {
		d = g.Hops(from)
	} else {
		d = g.ShortestPaths(from)
	}
	row := make([]int, n)
	for j := range row {
		row[j] = Unreachable
		if v, ok := d[j]; ok {
			row[j] = v
		}
	}
	return row
}

// Collapse returns an equivalent Index holding only the valves with a
// positive rate plus the start valve. Each kept valve gets an arc to every
// other reachable valve with a positive rate, costing the shortest travel
// time through the full network; its Tunnels list the arc targets.
//
// Valves without flow that are only passed through disappear, which shrinks
// the DP table while leaving every result unchanged.
func (ix *Index) Collapse() *Index {
	keep := make([]int, 0, ix.K+1)
	for i := 0; i < ix.K; i++ {
		keep = append(keep, i)
	}
	if ix.Start >= ix.K {
		keep = append(keep, ix.Start)
	}

	out := &Index{
		Valves: make([]Valve, len(keep)),
		Adj:    make([][]Arc, len(keep)),
		K:      ix.K,
		Start:  len(keep) - 1,
		names:  make(map[string]int, len(keep)),
	}
	if ix.Start < ix.K {
		out.Start = ix.Start
	}
	g := ix.Graph()
	unit := ix.unitCost()
	for ni, oi := range keep {
		row := distanceRow(g, oi, ix.Len(), unit)
		v := ix.Valves[oi]
		v.Tunnels = nil
		for to := 0; to < ix.K; to++ {
			if to == oi || row[to] == Unreachable {
				continue
			}
			out.Adj[ni] = append(out.Adj[ni], Arc{To: to, Cost: row[to]})
			v.Tunnels = append(v.Tunnels, ix.Valves[to].Name)
		}
		out.Valves[ni] = v
		out.names[v.Name] = ni
	}
	return out
}
