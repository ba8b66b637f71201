package pressure

// Graph is a weighted directed graph. Edges[a][b] is the cost of the arc
// from a to b.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddArc adds the one-way arc a->b. An existing arc keeps the lower cost.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	g.AddNode(a)
	g.AddNode(b)
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	if d, ok := g.Edges[a][b]; ok && d <= dist {
		return
	}
	g.Edges[a][b] = dist
}

// ReachableNodes returns every node reachable from a, including a.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

// Hops returns the number of arcs on the shortest path from a to every
// reachable node, ignoring arc costs.
func (g *Graph[K]) Hops(a K) map[K]int {
	dist := map[K]int{a: 0}
	q := NewQueue(a)
	q.While(func(v K) bool {
		for k := range g.Edges[v] {
			if _, ok := dist[k]; !ok {
				dist[k] = dist[v] + 1
				q.Push(k)
			}
		}
		return true
	})
	return dist
}

// ShortestPaths returns the cost of the cheapest path from a to every
// reachable node. Costs must be non-negative.
func (g *Graph[K]) ShortestPaths(a K) map[K]int {
	dist := map[K]int{a: 0}
	var pq PQ[K]
	pq.Push(&PQI[K]{V: a})
	for pq.Len() > 0 {
		it := pq.Pop()
		if it.P > dist[it.V] {
			continue // stale
		}
		for k, w := range g.Edges[it.V] {
			d := it.P + w
			if old, ok := dist[k]; ok && old <= d {
				continue
			}
			dist[k] = d
			pq.Push(&PQI[K]{V: k, P: d})
		}
	}
	return dist
}

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
