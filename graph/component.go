package graph

// ConnectedComponent returns the vertices reachable from start in DFS
// preorder, neighbors explored in insertion order. Directed graphs follow
// edge orientation, so the result is the reachable set of start rather than
// a weakly connected component.
// Complexity: O(V + E) over the reached subgraph.
func (g *Graph[V]) ConnectedComponent(start V) ([]V, error) {
	if !g.HasVertex(start) {
		return nil, ErrVertexNotFound
	}

	visited := make(map[V]struct{}, len(g.order))
	out := make([]V, 0, len(g.order))

	var walk func(v V)
	walk = func(v V) {
		visited[v] = struct{}{}
		out = append(out, v)
		for _, u := range g.neighbors[v] {
			if _, ok := visited[u]; !ok {
				walk(u)
			}
		}
	}
	walk(start)

	return out, nil
}
