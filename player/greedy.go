package player

import (
	"fmt"
	"sort"

	"pursuit/game"
	"pursuit/searcher"

	"golang.org/x/exp/rand"
)

// Greedy is an automated robber used for simulations. It heads for the goal
// along chase paths and avoids edges next to a cop when it has a choice.
type Greedy struct {
	graph *game.Graph
	rng   *rand.Rand
}

func NewGreedy(g *game.Graph, rng *rand.Rand) *Greedy {
	return &Greedy{graph: g, rng: rng}
}

type candidate struct {
	edge     game.Edge
	danger   int // 2 on a cop, 1 next to a cop, 0 otherwise
	distance int // Chase path length to the goal
}

func (r *Greedy) NextMove(state game.GameState, rejected error) (game.Edge, error) {
	if rejected != nil {
		return game.Edge{}, fmt.Errorf("greedy robber move refused: %w", rejected)
	}

	moves := r.graph.Neighbors(state.Robber)
	r.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})

	candidates := make([]candidate, 0, len(moves))
	for _, m := range moves {
		if m == state.Goal {
			return m, nil
		}
		candidates = append(candidates, candidate{
			edge:     m,
			danger:   r.danger(m, state.Cops),
			distance: len(searcher.Chase(r.graph, m, state.Goal)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].danger != candidates[j].danger {
			return candidates[i].danger < candidates[j].danger
		}
		return candidates[i].distance < candidates[j].distance
	})
	return candidates[0].edge, nil
}

func (r *Greedy) danger(e game.Edge, cops []game.Edge) int {
	danger := 0
	for _, c := range cops {
		if c == e {
			return 2
		}
		if c.SharesNode(e) {
			danger = 1
		}
	}
	return danger
}
