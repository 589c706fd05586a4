package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsPlayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pursuit_turns_total",
		Help: "Total number of turns played across all games.",
	})

	RejectedMoves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pursuit_rejected_moves_total",
		Help: "Total number of robber moves rejected as malformed or not adjacent.",
	})

	GamesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pursuit_games_total",
		Help: "Total number of finished games, labelled by outcome.",
	}, []string{"outcome"})

	ChasePathLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pursuit_chase_path_length",
		Help:    "Number of edges on the chase paths computed for responsible cops.",
		Buckets: []float64{1, 2, 3, 4, 6, 8, 12, 16, 24, 32},
	})
)
