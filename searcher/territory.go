package searcher

import "pursuit/game"

// Assignment maps every node of the graph to the cop closest to it.
// Cops are referred to by their index in the slice given to Partition.
type Assignment struct {
	Owner   []int         // Node -> cop index
	Regions [][]game.Node // Cop index -> owned nodes, ascending
}

// Partition assigns each node to the cop whose edge is nearest, measuring
// from the closer of the edge's two endpoints. Ties go to the cop listed
// first. Distances are recomputed on every call.
func Partition(g *game.Graph, cops []game.Edge) Assignment {
	if len(cops) == 0 {
		panic("cannot partition territory without cops")
	}

	// Distance from each cop edge to every node
	dist := make([][]int, len(cops))
	for i, c := range cops {
		fromA := g.Distances(c.A)
		fromB := g.Distances(c.B)
		dist[i] = make([]int, len(fromA))
		for n := range fromA {
			dist[i][n] = min(fromA[n], fromB[n])
		}
	}

	a := Assignment{
		Owner:   make([]int, g.NumNodes()),
		Regions: make([][]game.Node, len(cops)),
	}
	for _, n := range g.Nodes() {
		owner := 0
		for i := 1; i < len(cops); i++ {
			if dist[i][n] < dist[owner][n] {
				owner = i
			}
		}
		a.Owner[n] = owner
		a.Regions[owner] = append(a.Regions[owner], n)
	}
	return a
}

// Covers reports whether cop i owns either endpoint of e.
func (a Assignment) Covers(i int, e game.Edge) bool {
	return a.Owner[e.A] == i || a.Owner[e.B] == i
}
