// Package game holds the board and the state of an edge pursuit game: the
// robber and the cops sit on edges and move to edges sharing an endpoint.
package game

type StateHash uint64

// Outcome is the result of a game so far.
type Outcome int

const (
	InProgress Outcome = iota
	RobberWins
	CopsWin
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case RobberWins:
		return "robber wins"
	case CopsWin:
		return "cops win"
	default:
		return "unknown"
	}
}
