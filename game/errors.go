package game

import "errors"

// Graph input errors. These are fatal at setup time.
var (
	ErrDisconnectedGraph = errors.New("graph is not connected")
	ErrInsufficientEdges = errors.New("graph has too few edges")
	ErrTooManyEdges      = errors.New("graph has more edges than a simple graph allows")
	ErrSelfLoop          = errors.New("graph has a self loop")
	ErrDuplicateEdge     = errors.New("graph has a duplicate edge")
	ErrUnknownNode       = errors.New("node is not in the graph")
)

// Setup errors.
var (
	ErrUnknownEdge        = errors.New("edge is not in the graph")
	ErrOverlappingAgents  = errors.New("cop, robber and goal edges must be distinct")
	ErrNotEnoughPositions = errors.New("not enough edges for distinct starting positions")
)

// Turn errors. ErrInvalidMove and ErrMalformedInput are recovered by asking
// for another move; ErrNoPathFound means a board invariant was broken.
var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrMalformedInput = errors.New("malformed input")
	ErrNoPathFound    = errors.New("no chase path found")
	ErrGameOver       = errors.New("game is over - no moves allowed")
)
