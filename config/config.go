// Package config loads the settings of a game or a simulation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pursuit/meta"

	"gopkg.in/yaml.v3"
)

const (
	Sparse = "sparse"
	Dense  = "dense"
	Custom = "custom"
)

var ErrInvalidConfig = errors.New("invalid config")

// Game holds the parameters of a game.
type Game struct {
	Nodes      int    `yaml:"nodes"`
	Density    string `yaml:"density"` // sparse: 2n edges, dense: complete graph, custom: Edges
	Edges      int    `yaml:"edges"`
	Cops       int    `yaml:"cops"`
	Seed       uint64 `yaml:"seed"` // 0 picks a seed from the clock
	MaxTurns   int    `yaml:"max_turns"`
	Games      int    `yaml:"games"`
	LogLevel   string `yaml:"log_level"`
	MetricsDir string `yaml:"metrics_dir"`
}

// Default returns the built-in settings.
func Default() Game {
	return Game{
		Nodes:      meta.NODES,
		Density:    meta.DENSITY,
		Cops:       meta.COPS,
		MaxTurns:   meta.MAX_TURNS,
		Games:      meta.GAMES,
		LogLevel:   "info",
		MetricsDir: meta.METRICS_DIR,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Game, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve fills in the edge count from the density and clamps the number of
// cops so that every cop, the robber and the goal get their own edge.
func (c Game) Resolve() (Game, error) {
	if c.Nodes < 3 {
		return c, fmt.Errorf("need at least 3 nodes, got %d: %w", c.Nodes, ErrInvalidConfig)
	}
	maxEdges := c.Nodes * (c.Nodes - 1) / 2

	switch strings.ToLower(c.Density) {
	case Sparse, "s":
		c.Density = Sparse
		c.Edges = min(c.Nodes*2, maxEdges)
	case Dense, "d":
		c.Density = Dense
		c.Edges = maxEdges
	case Custom, "":
		c.Density = Custom
	default:
		return c, fmt.Errorf("unknown density %q: %w", c.Density, ErrInvalidConfig)
	}

	if c.Edges > maxEdges {
		return c, fmt.Errorf("%d edges exceed the maximum of %d for %d nodes: %w", c.Edges, maxEdges, c.Nodes, ErrInvalidConfig)
	}
	if c.Edges < c.Nodes {
		return c, fmt.Errorf("number of edges (%d) cannot be less than number of nodes (%d): %w", c.Edges, c.Nodes, ErrInvalidConfig)
	}

	maxCops := min(c.Edges-2, c.Nodes/2)
	c.Cops = max(1, min(c.Cops, maxCops))

	if c.Games < 1 {
		c.Games = 1
	}
	return c, nil
}
