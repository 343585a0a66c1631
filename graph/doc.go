// Package graph provides a small generic in-memory graph container:
// vertices of any comparable type, optionally directed, optionally weighted.
//
// It is a standalone utility, independent of the numeric packages in this
// module. The container stores adjacency only; traversal beyond
// ConnectedComponent, shortest paths and the like are out of scope.
//
// Construction is option-driven:
//
//	g := graph.New[string](graph.WithDirected(true), graph.WithWeighted())
//
// Policy is fixed at construction. A weighted graph rejects zero edge
// weights and an unweighted graph rejects non-zero ones, both with
// ErrBadWeight. Missing endpoints are reported as ErrVertexNotFound and
// missing edges as ErrEdgeNotFound; all sentinels are errors.Is-checkable.
//
// Enumeration order is deterministic: vertices in insertion order, edges in
// insertion order per origin vertex. Like the rest of the module the
// container is single-threaded; callers coordinate their own access.
package graph
