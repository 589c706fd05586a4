package main

import (
	"os"
	"path/filepath"
	"testing"

	"pursuit/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	t.Run("only changed flags override", func(t *testing.T) {
		var overrides config.Game
		cmd := &cobra.Command{}
		cmd.Flags().IntVar(&overrides.Nodes, "nodes", 0, "")
		cmd.Flags().IntVar(&overrides.Cops, "cops", 0, "")
		require.NoError(t, cmd.ParseFlags([]string{"--nodes", "12"}))

		cfg := config.Default()
		cops := cfg.Cops
		applyFlags(cmd, &cfg, overrides)
		require.Equal(t, 12, cfg.Nodes)
		require.Equal(t, cops, cfg.Cops, "Unset flags should keep the file value")
	})

	t.Run("edges without density switches to custom", func(t *testing.T) {
		var overrides config.Game
		cmd := &cobra.Command{}
		cmd.Flags().IntVar(&overrides.Edges, "edges", 0, "")
		cmd.Flags().StringVar(&overrides.Density, "density", "", "")
		require.NoError(t, cmd.ParseFlags([]string{"--edges", "15"}))

		cfg := config.Default()
		applyFlags(cmd, &cfg, overrides)
		require.Equal(t, 15, cfg.Edges)
		require.Equal(t, config.Custom, cfg.Density)
	})
}

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	root := newRootCmd()
	root.SetArgs([]string{
		"simulate", "--nodes", "6", "--cops", "1", "--seed", "3",
		"--games", "2", "--max-turns", "40", "--metrics-dir", dir, "--log-level", "warn",
	})
	require.NoError(t, root.Execute())

	runs, err := os.ReadDir(filepath.Join(dir, "simulation"))
	require.NoError(t, err)
	require.Len(t, runs, 1, "Should write one timestamped run directory")
	for _, name := range []string{"game_records.csv", "turn_records.csv"} {
		_, err := os.Stat(filepath.Join(dir, "simulation", runs[0].Name(), name))
		require.NoError(t, err, "Missing %s", name)
	}
}
