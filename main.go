package main

import (
	"fmt"
	"os"
	"time"

	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments"
	"pursuit/game"
	"pursuit/player"
	"pursuit/render"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	overrides := config.Default()

	root := &cobra.Command{
		Use:          "pursuit",
		Short:        "Cops and robber on the edges of a graph",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().IntVar(&overrides.Nodes, "nodes", overrides.Nodes, "Number of nodes")
	root.PersistentFlags().StringVar(&overrides.Density, "density", overrides.Density, "Graph density: sparse, dense or custom")
	root.PersistentFlags().IntVar(&overrides.Edges, "edges", overrides.Edges, "Number of edges when density is custom")
	root.PersistentFlags().IntVar(&overrides.Cops, "cops", overrides.Cops, "Number of cops")
	root.PersistentFlags().Uint64Var(&overrides.Seed, "seed", overrides.Seed, "Random seed, 0 uses the clock")
	root.PersistentFlags().StringVar(&overrides.LogLevel, "log-level", overrides.LogLevel, "Log level")

	load := func(cmd *cobra.Command) (config.Game, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		applyFlags(cmd, &cfg, overrides)
		setupLogger(cfg.LogLevel)
		return cfg.Resolve()
	}

	play := &cobra.Command{
		Use:   "play",
		Short: "Play the robber against the cops in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return runPlay(cfg)
		},
	}

	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Play a batch of games with an automated robber and store the records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return runSimulate(cfg)
		},
	}
	simulate.Flags().IntVar(&overrides.Games, "games", overrides.Games, "Number of games")
	simulate.Flags().IntVar(&overrides.MaxTurns, "max-turns", overrides.MaxTurns, "Turn limit per game")
	simulate.Flags().StringVar(&overrides.MetricsDir, "metrics-dir", overrides.MetricsDir, "Directory for game and turn records")

	root.AddCommand(play, simulate)
	return root
}

// applyFlags copies explicitly set flags over the file config.
func applyFlags(cmd *cobra.Command, cfg *config.Game, overrides config.Game) {
	flags := cmd.Flags()
	if flags.Changed("nodes") {
		cfg.Nodes = overrides.Nodes
	}
	if flags.Changed("density") {
		cfg.Density = overrides.Density
	}
	if flags.Changed("edges") {
		cfg.Edges = overrides.Edges
		if !flags.Changed("density") {
			cfg.Density = config.Custom
		}
	}
	if flags.Changed("cops") {
		cfg.Cops = overrides.Cops
	}
	if flags.Changed("seed") {
		cfg.Seed = overrides.Seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = overrides.LogLevel
	}
	if flags.Changed("games") {
		cfg.Games = overrides.Games
	}
	if flags.Changed("max-turns") {
		cfg.MaxTurns = overrides.MaxTurns
	}
	if flags.Changed("metrics-dir") {
		cfg.MetricsDir = overrides.MetricsDir
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func runPlay(cfg config.Game) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	g, err := game.RandomConnected(cfg.Nodes, cfg.Edges, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate graph")
	}
	start, err := game.RandomSetup(g, cfg.Cops, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to place cops, robber and goal")
	}

	e, err := engine.New(g, start)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	fmt.Printf("Game started. Goal is present at %s\n", start.Goal)
	outcome, err := e.Run(player.NewConsole(g, os.Stdin, os.Stdout), render.NewText(os.Stdout))
	if err != nil {
		return err
	}

	switch outcome {
	case game.RobberWins:
		fmt.Println("Robber reached the goal! Robber wins!")
	case game.CopsWin:
		fmt.Println("Cop caught the robber! Cops win!")
	}
	return nil
}

func runSimulate(cfg config.Game) error {
	result, err := experiments.Run(cfg)
	if err != nil {
		return err
	}
	dir, err := experiments.Store(result, cfg.MetricsDir, "simulation")
	if err != nil {
		return err
	}

	fmt.Printf("%d games: robber won %d, cops won %d, unfinished %d. Records in %s\n",
		result.Games, result.RobberWins, result.CopsWins, result.Unfinished, dir)
	return nil
}
