package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// RandomConnected builds a random connected graph with n nodes and e edges:
// a spanning path through the shuffled nodes, then random extra edges until
// there are e of them.
func RandomConnected(n, e int, rng *rand.Rand) (*Graph, error) {
	maxEdges := n * (n - 1) / 2
	if e < n-1 {
		return nil, fmt.Errorf("%d edges cannot connect %d nodes: %w", e, n, ErrInsufficientEdges)
	}
	if e > maxEdges {
		return nil, fmt.Errorf("%d nodes allow at most %d edges, got %d: %w", n, maxEdges, e, ErrTooManyEdges)
	}

	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node(i)
	}
	rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	present := make(map[Edge]bool, e)
	edges := make([]Edge, 0, e)
	add := func(edge Edge) {
		if !present[edge] {
			present[edge] = true
			edges = append(edges, edge)
		}
	}

	for i := 0; i < n-1; i++ {
		add(NewEdge(nodes[i], nodes[i+1]))
	}
	for len(edges) < e {
		u, v := Node(rng.Intn(n)), Node(rng.Intn(n))
		if u == v {
			continue
		}
		add(NewEdge(u, v))
	}

	return NewGraph(n, edges)
}

// RandomSetup picks pairwise distinct starting edges for the cops, the
// robber and the goal.
func RandomSetup(g *Graph, numCops int, rng *rand.Rand) (*GameState, error) {
	if numCops < 1 || numCops+2 > g.NumEdges() {
		return nil, fmt.Errorf("%d cops on %d edges: %w", numCops, g.NumEdges(), ErrNotEnoughPositions)
	}

	edges := g.Edges()
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	return NewGameState(g, edges[:numCops], edges[numCops], edges[numCops+1])
}
