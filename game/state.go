package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"pursuit/utils"
)

// GameState is everything that changes during a game. The graph is static
// and lives outside of it.
type GameState struct {
	Robber  Edge    // The robber's current edge
	Cops    []Edge  // One edge per cop, order is fixed for the whole game
	Goal    Edge    // The edge the robber is trying to reach
	Outcome Outcome // InProgress until the robber reaches the goal or is caught
	Turn    int     // Completed turns
}

// NewGameState checks that every starting position is on g and that no two
// agents (or an agent and the goal) share an edge.
func NewGameState(g *Graph, cops []Edge, robber, goal Edge) (*GameState, error) {
	if len(cops) == 0 {
		return nil, fmt.Errorf("need at least one cop: %w", ErrNotEnoughPositions)
	}

	gs := &GameState{
		Robber:  NewEdge(robber.A, robber.B),
		Cops:    make([]Edge, len(cops)),
		Goal:    NewEdge(goal.A, goal.B),
		Outcome: InProgress,
	}
	for i, c := range cops {
		gs.Cops[i] = NewEdge(c.A, c.B)
	}

	seen := make(map[Edge]string, len(cops)+2)
	positions := append([]Edge{gs.Robber, gs.Goal}, gs.Cops...)
	for i, e := range positions {
		name := agentName(i)
		if !g.HasEdge(e) {
			return nil, fmt.Errorf("%s at %s: %w", name, e, ErrUnknownEdge)
		}
		if other, ok := seen[e]; ok {
			return nil, fmt.Errorf("%s and %s both at %s: %w", other, name, e, ErrOverlappingAgents)
		}
		seen[e] = name
	}
	return gs, nil
}

func agentName(i int) string {
	switch i {
	case 0:
		return "robber"
	case 1:
		return "goal"
	default:
		return fmt.Sprintf("cop %d", i-2)
	}
}

// Copy returns a deep copy of the state.
func (gs GameState) Copy() *GameState {
	copsCopy := make([]Edge, len(gs.Cops))
	copy(copsCopy, gs.Cops)

	return &GameState{
		Robber:  gs.Robber,
		Cops:    copsCopy,
		Goal:    gs.Goal,
		Outcome: gs.Outcome,
		Turn:    gs.Turn,
	}
}

// IsOver reports whether the game has a winner.
func (gs GameState) IsOver() bool {
	return gs.Outcome != InProgress
}

// CopAt returns the index of the first cop on e, or -1.
func (gs GameState) CopAt(e Edge) int {
	return utils.FindIndex(gs.Cops, NewEdge(e.A, e.B))
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	writeEdge := func(e Edge) {
		binary.Write(hasher, binary.LittleEndian, int64(e.A))
		binary.Write(hasher, binary.LittleEndian, int64(e.B))
	}

	writeEdge(gs.Robber)
	writeEdge(gs.Goal)
	for _, c := range gs.Cops {
		writeEdge(c)
	}
	binary.Write(hasher, binary.LittleEndian, int64(gs.Outcome))

	return StateHash(hasher.Sum64())
}
