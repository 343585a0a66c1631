package graph

// checkWeight enforces the construction-time weight policy.
func (g *Graph[V]) checkWeight(weight float64) error {
	if g.weighted && weight == 0 {
		return ErrBadWeight
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}

	return nil
}

// AddEdge connects from and to, inserting missing endpoints on the fly.
// Reports whether the edge is new; an existing edge is left untouched (use
// SetEdgeWeight to change weights). Weighted graphs reject weight 0 and
// unweighted graphs reject anything else, both with ErrBadWeight.
// Complexity: O(1).
func (g *Graph[V]) AddEdge(from, to V, weight float64) (bool, error) {
	if err := g.checkWeight(weight); err != nil {
		return false, err
	}

	g.AddVertex(from, to)
	if _, ok := g.adj[from][to]; ok {
		return false, nil
	}

	g.adj[from][to] = weight
	g.neighbors[from] = append(g.neighbors[from], to)
	if !g.directed && from != to {
		g.adj[to][from] = weight
		g.neighbors[to] = append(g.neighbors[to], from)
	}
	g.edgeCount++

	return true, nil
}

// RemoveEdge deletes the edge between from and to (either orientation for
// undirected graphs). Reports whether an edge existed.
func (g *Graph[V]) RemoveEdge(from, to V) bool {
	if _, ok := g.adj[from][to]; !ok {
		return false
	}

	delete(g.adj[from], to)
	g.neighbors[from] = dropValue(g.neighbors[from], to)
	if !g.directed && from != to {
		delete(g.adj[to], from)
		g.neighbors[to] = dropValue(g.neighbors[to], from)
	}
	g.edgeCount--

	return true
}

// SetEdgeWeight replaces the weight of an existing edge. Lookup faults
// (ErrVertexNotFound, ErrEdgeNotFound) are reported before the ErrBadWeight
// policy check.
func (g *Graph[V]) SetEdgeWeight(from, to V, weight float64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexNotFound
	}
	if _, ok := g.adj[from][to]; !ok {
		return ErrEdgeNotFound
	}
	if err := g.checkWeight(weight); err != nil {
		return err
	}

	g.adj[from][to] = weight
	if !g.directed && from != to {
		g.adj[to][from] = weight
	}

	return nil
}

// EdgeWeight returns the weight of the edge between from and to.
func (g *Graph[V]) EdgeWeight(from, to V) (float64, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, ErrVertexNotFound
	}
	w, ok := g.adj[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// HasEdge reports whether an edge connects from to to. Undirected graphs
// answer for either orientation. Complexity: O(1).
func (g *Graph[V]) HasEdge(from, to V) bool {
	_, ok := g.adj[from][to]

	return ok
}

// Edges returns every logical edge once, ordered by the origin vertex's
// insertion position and then by edge insertion. Complexity: O(V + E).
func (g *Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.edgeCount)
	seen := make(map[[2]V]struct{}, g.edgeCount)
	for _, from := range g.order {
		for _, to := range g.neighbors[from] {
			if !g.directed {
				if _, dup := seen[[2]V{to, from}]; dup {
					continue
				}
				seen[[2]V{from, to}] = struct{}{}
			}
			out = append(out, Edge[V]{From: from, To: to, Weight: g.adj[from][to]})
		}
	}

	return out
}

// VertexEdges returns the edges leaving v (every incident edge for
// undirected graphs), in insertion order, with v as From.
func (g *Graph[V]) VertexEdges(v V) ([]Edge[V], error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge[V], 0, len(g.neighbors[v]))
	for _, to := range g.neighbors[v] {
		out = append(out, Edge[V]{From: v, To: to, Weight: g.adj[v][to]})
	}

	return out, nil
}
