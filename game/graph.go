package game

import (
	"fmt"
	"sort"
)

// Node identifies a vertex of the game graph, in [0, n).
type Node int

// Edge is an undirected pair of distinct nodes, stored with A <= B so that
// (u, v) and (v, u) compare equal.
type Edge struct {
	A Node
	B Node
}

// NewEdge returns the canonical edge between u and v.
func NewEdge(u, v Node) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{A: u, B: v}
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.A, e.B)
}

// Less orders edges lexicographically on their canonical pair.
func (e Edge) Less(o Edge) bool {
	if e.A != o.A {
		return e.A < o.A
	}
	return e.B < o.B
}

// Touches reports whether n is an endpoint of e.
func (e Edge) Touches(n Node) bool {
	return e.A == n || e.B == n
}

// SharesNode reports whether e and o have at least one endpoint in common.
func (e Edge) SharesNode(o Edge) bool {
	return e.Touches(o.A) || e.Touches(o.B)
}

// Graph is the static board of the game: a connected, simple, undirected
// graph. It is never modified after NewGraph returns.
type Graph struct {
	numNodes  int
	edges     []Edge // Sorted lexicographically
	adjacency [][]Node
	incident  [][]Edge
	index     map[Edge]struct{}
}

// NewGraph builds a graph over nodes 0..n-1 and checks the board
// invariants: no self loops, no duplicate edges, every endpoint in range,
// at least two edges, connected.
func NewGraph(n int, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("graph needs at least one node, got %d: %w", n, ErrInsufficientEdges)
	}

	g := &Graph{
		numNodes:  n,
		edges:     make([]Edge, 0, len(edges)),
		adjacency: make([][]Node, n),
		incident:  make([][]Edge, n),
		index:     make(map[Edge]struct{}, len(edges)),
	}

	for _, e := range edges {
		e = NewEdge(e.A, e.B)
		if e.A == e.B {
			return nil, fmt.Errorf("edge %s: %w", e, ErrSelfLoop)
		}
		if e.A < 0 || int(e.B) >= n {
			return nil, fmt.Errorf("edge %s outside nodes [0, %d): %w", e, n, ErrUnknownNode)
		}
		if _, ok := g.index[e]; ok {
			return nil, fmt.Errorf("edge %s: %w", e, ErrDuplicateEdge)
		}
		g.index[e] = struct{}{}
		g.edges = append(g.edges, e)
	}

	if len(g.edges) < 2 {
		return nil, fmt.Errorf("graph has %d edges: %w", len(g.edges), ErrInsufficientEdges)
	}

	sort.Slice(g.edges, func(i, j int) bool { return g.edges[i].Less(g.edges[j]) })
	for _, e := range g.edges {
		g.adjacency[e.A] = append(g.adjacency[e.A], e.B)
		g.adjacency[e.B] = append(g.adjacency[e.B], e.A)
		g.incident[e.A] = append(g.incident[e.A], e)
		g.incident[e.B] = append(g.incident[e.B], e)
	}
	for v := range g.adjacency {
		sort.Slice(g.adjacency[v], func(i, j int) bool { return g.adjacency[v][i] < g.adjacency[v][j] })
	}

	for v, d := range g.Distances(0) {
		if d < 0 {
			return nil, fmt.Errorf("node %d unreachable from node 0: %w", v, ErrDisconnectedGraph)
		}
	}

	return g, nil
}

// NumNodes returns n.
func (g *Graph) NumNodes() int {
	return g.numNodes
}

// NumEdges returns the number of edges.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Nodes returns all nodes in ascending order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, g.numNodes)
	for i := range nodes {
		nodes[i] = Node(i)
	}
	return nodes
}

// Edges returns a copy of the edge list, sorted lexicographically.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// HasEdge reports whether e (in any orientation) is an edge of the graph.
func (g *Graph) HasEdge(e Edge) bool {
	_, ok := g.index[NewEdge(e.A, e.B)]
	return ok
}

// Neighbors returns every other edge that shares an endpoint with e, sorted
// lexicographically. Asking for an edge that is not on the board is a bug
// in the caller.
func (g *Graph) Neighbors(e Edge) []Edge {
	e = NewEdge(e.A, e.B)
	if !g.HasEdge(e) {
		panic(fmt.Sprintf("edge %s is not in the graph", e))
	}

	neighbors := make([]Edge, 0, len(g.incident[e.A])+len(g.incident[e.B])-2)
	for _, other := range g.incident[e.A] {
		if other != e {
			neighbors = append(neighbors, other)
		}
	}
	// e is the only edge incident to both endpoints in a simple graph
	for _, other := range g.incident[e.B] {
		if other != e {
			neighbors = append(neighbors, other)
		}
	}
	sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].Less(neighbors[j]) })
	return neighbors
}

// Adjacent reports whether a robber or cop on from may move to to.
func (g *Graph) Adjacent(from, to Edge) bool {
	from, to = NewEdge(from.A, from.B), NewEdge(to.A, to.B)
	return from != to && g.HasEdge(from) && g.HasEdge(to) && from.SharesNode(to)
}

// ShortestDistance returns the number of edges on a shortest path between
// two nodes.
func (g *Graph) ShortestDistance(a, b Node) int {
	g.mustHaveNode(b)
	return g.Distances(a)[b]
}

// Distances runs a breadth-first search from a and returns the hop count to
// every node, -1 for unreachable ones.
func (g *Graph) Distances(from Node) []int {
	g.mustHaveNode(from)

	dist := make([]int, g.numNodes)
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 0
	queue := []Node{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, adj := range g.adjacency[current] {
			if dist[adj] >= 0 {
				continue
			}
			dist[adj] = dist[current] + 1
			queue = append(queue, adj)
		}
	}
	return dist
}

func (g *Graph) mustHaveNode(n Node) {
	if n < 0 || int(n) >= g.numNodes {
		panic(fmt.Sprintf("node %d is not in the graph", n))
	}
}
