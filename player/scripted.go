package player

import (
	"io"

	"pursuit/game"
)

// Scripted replays a fixed list of moves, one per request, and returns
// io.EOF once they are used up. Rejected moves are skipped.
type Scripted struct {
	moves []game.Edge
	next  int
}

func NewScripted(moves ...game.Edge) *Scripted {
	return &Scripted{moves: moves}
}

func (s *Scripted) NextMove(game.GameState, error) (game.Edge, error) {
	if s.next >= len(s.moves) {
		return game.Edge{}, io.EOF
	}
	move := s.moves[s.next]
	s.next++
	return move, nil
}
