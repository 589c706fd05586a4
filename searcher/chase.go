package searcher

import (
	"container/heap"
	"fmt"

	"pursuit/game"
	"pursuit/utils"
)

// Chase runs a best-first search over the edges of g, where two edges are
// connected when they share an endpoint, and returns the edges from start to
// target inclusive. It returns [start] when start == target and nil when
// target cannot be reached. Both edges must be in g.
//
// The heuristic compares endpoint identifiers and is not admissible, so the
// path is a reasonable chase route rather than a guaranteed shortest one.
func Chase(g *game.Graph, start, target game.Edge) []game.Edge {
	start = game.NewEdge(start.A, start.B)
	target = game.NewEdge(target.A, target.B)
	for _, e := range []game.Edge{start, target} {
		if !g.HasEdge(e) {
			panic(fmt.Sprintf("chase edge %s is not in the graph", e))
		}
	}
	if start == target {
		return []game.Edge{start}
	}

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &step{edge: start, h: heuristic(start, target)})
	closed := make(map[game.Edge]bool)
	pushed := 0

	for open.Len() > 0 {
		current := heap.Pop(open).(*step)
		if current.edge == target {
			return current.path()
		}
		if closed[current.edge] {
			continue
		}
		closed[current.edge] = true

		for _, next := range g.Neighbors(current.edge) {
			if closed[next] {
				continue
			}
			pushed++
			heap.Push(open, &step{
				edge:   next,
				g:      current.g + 1,
				h:      heuristic(next, target),
				seq:    pushed,
				parent: current,
			})
		}
	}
	return nil
}

// heuristic is the sum of absolute differences between corresponding
// endpoints of the canonical pairs.
func heuristic(e, target game.Edge) int {
	return abs(int(e.A-target.A)) + abs(int(e.B-target.B))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

type step struct {
	edge   game.Edge
	g      int // Edges travelled from start
	h      int
	seq    int // Push order, the last tie breaker
	parent *step
}

func (s *step) f() int {
	return s.g + s.h
}

func (s *step) path() []game.Edge {
	var path []game.Edge
	for n := s; n != nil; n = n.parent {
		path = append(path, n.edge)
	}
	utils.Reverse(path)
	return path
}

// before orders steps by f, then by edge identity with the higher endpoint
// compared first. Equal edges keep insertion order through seq.
func (s *step) before(o *step) bool {
	if s.f() != o.f() {
		return s.f() < o.f()
	}
	if s.edge.B != o.edge.B {
		return s.edge.B < o.edge.B
	}
	if s.edge.A != o.edge.A {
		return s.edge.A < o.edge.A
	}
	return s.seq < o.seq
}

// frontier implements heap.Interface
type frontier []*step

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return f[i].before(f[j]) }

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(*step))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return s
}
