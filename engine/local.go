package engine

import (
	"errors"
	"fmt"

	"pursuit/experiments/metrics"
	"pursuit/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithCollector records per turn metrics.
func WithCollector(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.collector = collector
		}
	}
}

// WithMaxTurns stops Run after the given number of turns.
func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine owns the state of a single game and plays it turn by turn.
type Engine struct {
	graph     *game.Graph
	state     *game.GameState
	collector metrics.Collector
	maxTurns  int
}

// New starts a game on g from the given starting positions.
func New(g *game.Graph, start *game.GameState, options ...Option) (*Engine, error) {
	if start.IsOver() {
		return nil, game.ErrGameOver
	}
	state, err := game.NewGameState(g, start.Cops, start.Robber, start.Goal)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		graph:     g,
		state:     state,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

func (e *Engine) Graph() *game.Graph {
	return e.graph
}

// State returns a copy of the current state.
func (e *Engine) State() game.GameState {
	return *e.state.Copy()
}

// Play applies one robber move and the cops' response. A rejected move
// leaves the game untouched.
func (e *Engine) Play(move game.Edge) (Turn, error) {
	e.collector.Start()

	next, turn, err := Advance(e.graph, e.state, move)
	if err != nil {
		if errors.Is(err, game.ErrInvalidMove) {
			e.collector.AddRejectedMove()
		}
		return Turn{}, err
	}

	for _, c := range turn.Cops {
		if c.Responsible {
			e.collector.AddChase(c.PathLength)
		}
	}
	e.collector.Complete(turn.Step, turn.CopsMoved(), next)

	log.Debug().
		Int("turn", turn.Step).
		Stringer("from", turn.RobberFrom).
		Stringer("to", turn.RobberTo).
		Int("cops_moved", turn.CopsMoved()).
		Msg("robber moved")

	e.state = next
	return turn, nil
}

// Run executes the game loop until there is a winner. Rejected moves are
// handed back to src and do not consume a turn.
func (e *Engine) Run(src MoveSource, r Renderer) (game.Outcome, error) {
	log.Info().Msgf("game started, goal is at %s", e.state.Goal)
	r.Render(e.graph, e.State())

	var rejected error
	for !e.state.IsOver() {
		if e.maxTurns > 0 && e.state.Turn >= e.maxTurns {
			return e.state.Outcome, fmt.Errorf("stopped after %d turns: %w", e.state.Turn, ErrTurnLimit)
		}

		move, err := src.NextMove(e.State(), rejected)
		if errors.Is(err, game.ErrMalformedInput) {
			e.collector.AddRejectedMove()
			rejected = err
			continue
		}
		if err != nil {
			return e.state.Outcome, fmt.Errorf("reading robber move: %w", err)
		}

		turn, err := e.Play(move)
		if errors.Is(err, game.ErrInvalidMove) {
			log.Debug().Err(err).Msg("robber move rejected")
			rejected = err
			continue
		}
		if err != nil {
			return e.state.Outcome, err
		}
		rejected = nil

		log.Info().Msgf("robber moved from %s to %s", turn.RobberFrom, turn.RobberTo)
		r.Render(e.graph, e.State())
	}

	switch e.state.Outcome {
	case game.RobberWins:
		log.Info().Msgf("robber reached the goal after %d turns", e.state.Turn)
	case game.CopsWin:
		log.Info().Msgf("cop caught the robber after %d turns", e.state.Turn)
	}
	return e.state.Outcome, nil
}

// Turns returns the metrics collected so far.
func (e *Engine) Turns() []metrics.TurnMetric {
	return e.collector.Turns()
}
