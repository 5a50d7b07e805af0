// Package coregraph is a graph-algorithms core built around one substrate,
// indexgraph.IndexGraph: a dense integer-indexed vertex/edge arena that
// every algorithm package below operates on directly.
//
// Under the hood, coregraph is organized as a stack of layers:
//
//	indexgraph/ — the array- and linked-adjacency substrate (L0/L1), typed
//	              weight/flag columns attached per vertex or edge
//	idgraph/    — a string-keyed facade over indexgraph, for callers who
//	              want stable external IDs instead of dense indices
//	bitset/     — fixed-size bit vectors (standalone; no package here imports it)
//	builder/    — deterministic constructors for common graph families
//	              (cycle, star, wheel, complete, bipartite, grid, ...)
//	matrix/     — dense adjacency/incidence matrix views of an IndexGraph
//	converters/ — bridges an IndexGraph to gonum.org/v1/gonum/graph
//	heap/       — a referenceable heap trait (binary, binomial, Fibonacci,
//	              pairing, treap), each handing back a stable Ref on Insert
//	unionfind/  — disjoint-set union with union-by-rank and path compression
//	dtree/      — link/cut trees (dynamic trees)
//	bfs/, dfs/  — graph traversal
//	sssp/       — single-source shortest paths (Dijkstra, Dial, Bellman-Ford, DAG)
//	mst/        — minimum spanning forest (Kruskal, Prim, Boruvka, Yao, Fredman-Tarjan)
//	maxflow/    — maximum flow (Edmonds-Karp, Dinic, push-relabel, both
//	              with optional dynamic-tree acceleration)
//	tsp/        — an MST-based 2-approximation for symmetric metric TSP
//	facade/     — one dispatch-by-enum entry point per algorithm family,
//	              plus bare interfaces for the families left out of core
//	              scope (coloring, covers, Hamiltonian path, isomorphism,
//	              cycle enumeration)
//
// Quick example:
//
//	g := indexgraph.NewUndirected()
//	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
//	g.AddEdge(a, b)
//	g.AddEdge(b, c)
//	g.AddEdge(a, c)
//
// represents a triangle on three vertices and three edges.
package coregraph
