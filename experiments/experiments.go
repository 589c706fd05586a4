// Package experiments plays batches of games with an automated robber and
// records how they went.
package experiments

import (
	"errors"
	"fmt"
	"time"

	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/player"
	"pursuit/render"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary counts outcomes over a batch. Unfinished games hit the turn limit.
type Summary struct {
	Games      int
	RobberWins int
	CopsWins   int
	Unfinished int
}

type Result struct {
	Summary
	GameRecords []metrics.GameRecord
	TurnRecords []metrics.TurnRecord
}

// Run plays cfg.Games games. Game i uses seed cfg.Seed+i so that a batch
// can be replayed.
func Run(cfg config.Game) (Result, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return Result{}, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log.Info().Msgf("starting simulation of %d games with %d nodes, %d edges and %d cops...", cfg.Games, cfg.Nodes, cfg.Edges, cfg.Cops)

	result := Result{}
	for i := 0; i < cfg.Games; i++ {
		gameMetric, turnMetrics, err := runGame(cfg, seed+uint64(i))
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}

		id := i + 1
		result.GameRecords = append(result.GameRecords, metrics.GameRecord{ID: id, GameMetric: gameMetric})
		for _, tm := range turnMetrics {
			result.TurnRecords = append(result.TurnRecords, metrics.TurnRecord{Game: id, TurnMetric: tm})
		}

		result.Games++
		switch gameMetric.Outcome {
		case game.RobberWins:
			result.RobberWins++
		case game.CopsWin:
			result.CopsWins++
		default:
			result.Unfinished++
		}

		log.Info().Msgf("completed game %d of %d after %d turns: %s", id, cfg.Games, gameMetric.TotalTurns, gameMetric.Outcome)
	}

	log.Info().Msgf("completed simulation: robber won %d, cops won %d, unfinished %d", result.RobberWins, result.CopsWins, result.Unfinished)
	return result, nil
}

// runGame plays one game between the greedy robber and the cops.
func runGame(cfg config.Game, seed uint64) (metrics.GameMetric, []metrics.TurnMetric, error) {
	rng := rand.New(rand.NewSource(seed))

	g, err := game.RandomConnected(cfg.Nodes, cfg.Edges, rng)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	start, err := game.RandomSetup(g, cfg.Cops, rng)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e, err := engine.New(g, start,
		engine.WithCollector(metrics.NewCollector()),
		engine.WithMaxTurns(cfg.MaxTurns),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	startTime := time.Now()
	outcome, err := e.Run(player.NewGreedy(g, rng), render.Nop{})
	if err != nil && !errors.Is(err, engine.ErrTurnLimit) {
		return metrics.GameMetric{}, nil, err
	}
	endTime := time.Now()

	turns := e.Turns()
	rejected := 0
	for _, t := range turns {
		rejected += t.RejectedMoves
	}

	return metrics.GameMetric{
		ID:            uuid.NewString(),
		Nodes:         g.NumNodes(),
		Edges:         g.NumEdges(),
		Cops:          cfg.Cops,
		Seed:          seed,
		Outcome:       outcome,
		StartTime:     startTime,
		EndTime:       endTime,
		Duration:      endTime.Sub(startTime),
		TotalTurns:    e.State().Turn,
		RejectedMoves: rejected,
	}, turns, nil
}

// Store writes the records of a batch under root/name and returns the
// directory used.
func Store(result Result, root, name string) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(result.TurnRecords); err != nil {
		return "", fmt.Errorf("failed to write turn records: %w", err)
	}
	log.Info().Msg("stored turn records")

	if err := writer.WriteMetrics(prometheus.DefaultGatherer); err != nil {
		return "", fmt.Errorf("failed to write metrics: %w", err)
	}

	return writer.Dir(), nil
}
