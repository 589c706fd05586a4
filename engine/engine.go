package engine

import (
	"errors"

	"pursuit/game"
)

// ErrTurnLimit is returned by Run when a game is stopped by WithMaxTurns.
var ErrTurnLimit = errors.New("turn limit reached")

// MoveSource supplies the robber's moves. rejected is the reason the
// previous move was refused, nil on the first request of a turn.
type MoveSource interface {
	NextMove(state game.GameState, rejected error) (game.Edge, error)
}

// Renderer shows the board after setup and after every turn. It must not
// hold on to state.
type Renderer interface {
	Render(g *game.Graph, state game.GameState)
}
