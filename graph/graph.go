package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a missing vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a missing edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a weight outside the graph's policy: zero on a
	// weighted graph, non-zero on an unweighted one.
	ErrBadWeight = errors.New("graph: bad weight for graph policy")
)

// Edge is one stored connection. Orientation is meaningful only for
// directed graphs; undirected enumeration picks the endpoint that entered
// the graph first as From.
type Edge[V comparable] struct {
	From   V
	To     V
	Weight float64
}

// config collects construction-time policy flags.
type config struct {
	directed bool
	weighted bool
}

// Option configures a graph at construction.
type Option func(*config)

// WithDirected sets edge orientation policy (true = directed edges).
// Graphs are undirected by default.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithWeighted enables non-zero edge weights. Unweighted graphs store every
// edge with weight 0.
func WithWeighted() Option {
	return func(c *config) { c.weighted = true }
}

// Graph is an adjacency-map container over comparable vertex values.
// The zero value is not usable; construct with New.
type Graph[V comparable] struct {
	directed bool
	weighted bool

	order     []V                 // vertices in insertion order
	adj       map[V]map[V]float64 // from → to → weight, symmetric when undirected
	neighbors map[V][]V           // out-neighbors in insertion order
	edgeCount int                 // logical edges (one per undirected pair)
}

// New creates an empty graph with the given policy options.
func New[V comparable](opts ...Option) *Graph[V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed:  cfg.directed,
		weighted:  cfg.weighted,
		adj:       make(map[V]map[V]float64),
		neighbors: make(map[V][]V),
	}
}

// Directed reports the orientation policy fixed at construction.
func (g *Graph[V]) Directed() bool { return g.directed }

// Weighted reports the weight policy fixed at construction.
func (g *Graph[V]) Weighted() bool { return g.weighted }

// AddVertex inserts the given vertices; already present ones are skipped.
// Complexity: O(len(vs)).
func (g *Graph[V]) AddVertex(vs ...V) {
	for _, v := range vs {
		if _, ok := g.adj[v]; ok {
			continue
		}
		g.adj[v] = make(map[V]float64)
		g.order = append(g.order, v)
	}
}

// RemoveVertex deletes v and every edge incident to it. Reports whether the
// vertex existed. Complexity: O(V + E).
func (g *Graph[V]) RemoveVertex(v V) bool {
	if _, ok := g.adj[v]; !ok {
		return false
	}

	// Outgoing edges, the self-loop included.
	g.edgeCount -= len(g.adj[v])

	// Edges arriving at v from elsewhere. For undirected graphs these are
	// the mirrored halves of already-counted edges.
	for _, u := range g.order {
		if u == v {
			continue
		}
		if _, ok := g.adj[u][v]; !ok {
			continue
		}
		if g.directed {
			g.edgeCount--
		}
		delete(g.adj[u], v)
		g.neighbors[u] = dropValue(g.neighbors[u], v)
	}

	delete(g.adj, v)
	delete(g.neighbors, v)
	g.order = dropValue(g.order, v)

	return true
}

// HasVertex reports whether v is present. Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	_, ok := g.adj[v]

	return ok
}

// HasVertices reports whether every given vertex is present.
func (g *Graph[V]) HasVertices(vs ...V) bool {
	for _, v := range vs {
		if !g.HasVertex(v) {
			return false
		}
	}

	return true
}

// Vertices returns the vertices in insertion order. The slice is the
// caller's to keep.
func (g *Graph[V]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph[V]) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of logical edges; an undirected edge counts
// once. Complexity: O(1).
func (g *Graph[V]) EdgeCount() int { return g.edgeCount }

// dropValue removes the first occurrence of v, preserving order.
func dropValue[V comparable](s []V, v V) []V {
	for i, cur := range s {
		if cur == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
