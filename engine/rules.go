package engine

import (
	"fmt"

	"pursuit/game"
	"pursuit/searcher"
)

// CopMove records what one cop did during a turn.
type CopMove struct {
	From        game.Edge
	To          game.Edge
	Responsible bool // The robber landed in this cop's territory
	PathLength  int  // Length of the chase path, 0 if the cop was not responsible
}

// Turn records a robber move and the cops' response.
type Turn struct {
	Step       int
	RobberFrom game.Edge
	RobberTo   game.Edge
	Cops       []CopMove
	Outcome    game.Outcome
}

// CopsMoved counts the cops that changed edge.
func (t Turn) CopsMoved() int {
	moved := 0
	for _, c := range t.Cops {
		if c.From != c.To {
			moved++
		}
	}
	return moved
}

// Advance plays one turn on a copy of state: the robber moves to move, then
// every cop whose territory holds an endpoint of the robber's new edge takes
// one step along its chase path. The robber wins by reaching the goal, which
// is checked before the cops move; the cops win by landing on the robber's
// edge. state is never modified, also when an error is returned.
func Advance(g *game.Graph, state *game.GameState, move game.Edge) (*game.GameState, Turn, error) {
	if state.IsOver() {
		return nil, Turn{}, game.ErrGameOver
	}

	move = game.NewEdge(move.A, move.B)
	if !g.HasEdge(move) {
		return nil, Turn{}, fmt.Errorf("%s is not an edge of the graph: %w", move, game.ErrInvalidMove)
	}
	if !g.Adjacent(state.Robber, move) {
		return nil, Turn{}, fmt.Errorf("%s is not adjacent to the robber at %s: %w", move, state.Robber, game.ErrInvalidMove)
	}

	next := state.Copy()
	next.Robber = move
	next.Turn++

	turn := Turn{
		Step:       next.Turn,
		RobberFrom: state.Robber,
		RobberTo:   move,
		Cops:       make([]CopMove, len(state.Cops)),
	}
	for i, c := range state.Cops {
		turn.Cops[i] = CopMove{From: c, To: c}
	}

	if next.Robber == next.Goal {
		next.Outcome = game.RobberWins
		turn.Outcome = next.Outcome
		return next, turn, nil
	}

	territory := searcher.Partition(g, state.Cops)
	for i, c := range state.Cops {
		if !territory.Covers(i, next.Robber) {
			continue
		}
		path := searcher.Chase(g, c, next.Robber)
		if len(path) == 0 {
			return nil, Turn{}, fmt.Errorf("cop %d from %s to %s: %w", i, c, next.Robber, game.ErrNoPathFound)
		}
		if len(path) > 1 {
			next.Cops[i] = path[1]
		}
		turn.Cops[i] = CopMove{From: c, To: next.Cops[i], Responsible: true, PathLength: len(path)}
	}

	if next.CopAt(next.Robber) >= 0 {
		next.Outcome = game.CopsWin
	}
	turn.Outcome = next.Outcome
	return next, turn, nil
}
