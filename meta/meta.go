// meta/meta.go
package meta

// NODES is the default number of graph nodes.
const NODES = 10

// COPS is the default number of cops.
const COPS = 2

// DENSITY is the default edge density: sparse, dense or custom.
const DENSITY = "sparse"

// MAX_TURNS caps simulated games. Interactive games are not capped.
const MAX_TURNS = 300

// GAMES is the default number of games in a simulation.
const GAMES = 30

// METRICS_DIR is where simulations write their records.
const METRICS_DIR = "experiments"
