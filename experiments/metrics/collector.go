package metrics

import (
	"time"

	"pursuit/game"
)

type TurnMetric struct {
	Step          int
	Duration      time.Duration
	Chases        int // Cops responsible for the robber's territory
	CopsMoved     int
	LongestChase  int // Longest chase path among responsible cops
	RejectedMoves int // Moves rejected before this turn was played
	Outcome       game.Outcome
	StateHash     game.StateHash
}

type GameMetric struct {
	ID            string
	Nodes         int
	Edges         int
	Cops          int
	Seed          uint64
	Outcome       game.Outcome
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalTurns    int
	RejectedMoves int
}

// Collector gathers per turn metrics for one game. Turns are played one at
// a time so collectors are not safe for concurrent use.
type Collector interface {
	Start()
	AddChase(pathLength int)
	AddRejectedMove()
	Complete(step, copsMoved int, state *game.GameState) TurnMetric
	Turns() []TurnMetric
}

type collector struct {
	startTime    time.Time
	chases       int
	longestChase int
	rejected     int
	turns        []TurnMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.chases = 0
	m.longestChase = 0
}

func (m *collector) AddChase(pathLength int) {
	m.chases++
	m.longestChase = max(m.longestChase, pathLength)
	ChasePathLength.Observe(float64(pathLength))
}

func (m *collector) AddRejectedMove() {
	m.rejected++
	RejectedMoves.Inc()
}

func (m *collector) Complete(step, copsMoved int, state *game.GameState) TurnMetric {
	turn := TurnMetric{
		Step:          step,
		Duration:      time.Since(m.startTime),
		Chases:        m.chases,
		CopsMoved:     copsMoved,
		LongestChase:  m.longestChase,
		RejectedMoves: m.rejected,
		Outcome:       state.Outcome,
		StateHash:     state.Hash(),
	}
	m.rejected = 0
	m.turns = append(m.turns, turn)

	TurnsPlayed.Inc()
	if state.IsOver() {
		GamesCompleted.WithLabelValues(state.Outcome.String()).Inc()
	}
	return turn
}

func (m *collector) Turns() []TurnMetric {
	return m.turns
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()              {}
func (m *dummyCollector) AddChase(int)        {}
func (m *dummyCollector) AddRejectedMove()    {}
func (m *dummyCollector) Turns() []TurnMetric { return nil }

func (m *dummyCollector) Complete(step, copsMoved int, state *game.GameState) TurnMetric {
	return TurnMetric{}
}
