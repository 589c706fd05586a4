package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"pursuit/config"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := config.Game{Nodes: 8, Density: config.Sparse, Cops: 2, Seed: 17, MaxTurns: 40, Games: 4}

	result, err := Run(cfg)

	require.NoError(t, err)
	require.Equal(t, 4, result.Games)
	require.Equal(t, result.Games, result.RobberWins+result.CopsWins+result.Unfinished)
	require.Len(t, result.GameRecords, 4)

	turns := 0
	for i, record := range result.GameRecords {
		require.Equal(t, i+1, record.ID)
		require.NotEmpty(t, record.GameMetric.ID)
		require.Equal(t, uint64(17+i), record.Seed)
		require.Equal(t, 16, record.Edges)
		require.LessOrEqual(t, record.TotalTurns, 40)
		turns += record.TotalTurns
	}
	require.Len(t, result.TurnRecords, turns, "One turn record per played turn")

	t.Run("same seed same outcomes", func(t *testing.T) {
		again, err := Run(cfg)
		require.NoError(t, err)
		require.Equal(t, result.Summary, again.Summary)
	})

	t.Run("store", func(t *testing.T) {
		dir, err := Store(result, t.TempDir(), "batch")
		require.NoError(t, err)
		require.FileExists(t, filepath.Join(dir, "game_records.csv"))
		require.FileExists(t, filepath.Join(dir, "turn_records.csv"))

		exported, err := os.ReadFile(filepath.Join(dir, "metrics.prom"))
		require.NoError(t, err)
		require.Regexp(t, `(?m)^pursuit_turns_total \d+`, string(exported), "Turn counter should be exported")
		require.Contains(t, string(exported), "# TYPE pursuit_turns_total counter")
		require.Contains(t, string(exported), "pursuit_chase_path_length_bucket")
	})

	t.Run("store twice keeps both runs", func(t *testing.T) {
		root := t.TempDir()
		first, err := Store(result, root, "batch")
		require.NoError(t, err)
		second, err := Store(result, root, "batch")
		require.NoError(t, err)
		require.NotEqual(t, first, second)
	})
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(config.Game{Nodes: 2, Density: config.Sparse})
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
