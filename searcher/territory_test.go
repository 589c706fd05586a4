package searcher

import (
	"testing"

	"pursuit/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPartition(t *testing.T) {
	t.Run("single cop owns everything", func(t *testing.T) {
		g := cycle4(t)
		a := Partition(g, []game.Edge{game.NewEdge(0, 1)})
		require.Equal(t, []int{0, 0, 0, 0}, a.Owner)
		require.Equal(t, [][]game.Node{{0, 1, 2, 3}}, a.Regions)
		require.True(t, a.Covers(0, game.NewEdge(2, 3)))
	})

	t.Run("nearest cop wins, ties go to the first cop", func(t *testing.T) {
		// 0-1-2-3-4-5 path
		var edges []game.Edge
		for i := 0; i < 5; i++ {
			edges = append(edges, game.NewEdge(game.Node(i), game.Node(i+1)))
		}
		g, err := game.NewGraph(6, edges)
		require.NoError(t, err)

		a := Partition(g, []game.Edge{game.NewEdge(0, 1), game.NewEdge(4, 5)})
		// Node 2: distance 1 vs 2, node 3: 2 vs 1
		require.Equal(t, []int{0, 0, 0, 1, 1, 1}, a.Owner)

		a = Partition(g, []game.Edge{game.NewEdge(0, 1), game.NewEdge(3, 4)})
		// Node 2 is at distance 1 from both cops
		require.Equal(t, []int{0, 0, 0, 1, 1, 1}, a.Owner)
		require.False(t, a.Covers(1, game.NewEdge(1, 2)))
		require.True(t, a.Covers(1, game.NewEdge(2, 3)), "Either endpoint is enough")
	})

	t.Run("cops on the same edge", func(t *testing.T) {
		g := cycle4(t)
		a := Partition(g, []game.Edge{game.NewEdge(0, 1), game.NewEdge(0, 1)})
		require.Equal(t, []int{0, 0, 0, 0}, a.Owner)
		require.Empty(t, a.Regions[1])
	})

	t.Run("panics without cops", func(t *testing.T) {
		require.Panics(t, func() {
			Partition(cycle4(t), nil)
		})
	})
}

func TestPartitionCoversEveryNodeOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := 0; round < 20; round++ {
		n := 5 + rng.Intn(10)
		g, err := game.RandomConnected(n, n+rng.Intn(n), rng)
		require.NoError(t, err)

		edges := g.Edges()
		cops := []game.Edge{edges[rng.Intn(len(edges))], edges[rng.Intn(len(edges))], edges[rng.Intn(len(edges))]}
		a := Partition(g, cops)

		seen := make(map[game.Node]int)
		for i, region := range a.Regions {
			for _, node := range region {
				seen[node]++
				require.Equal(t, i, a.Owner[node], "Owner and regions should agree")
			}
		}
		require.Len(t, seen, g.NumNodes(), "Every node should be assigned")
		for node, count := range seen {
			require.Equal(t, 1, count, "Node %d should be assigned once", node)
		}

		// Owner is one of the nearest cops
		for _, node := range g.Nodes() {
			best := -1
			for _, c := range cops {
				d := min(g.ShortestDistance(c.A, node), g.ShortestDistance(c.B, node))
				if best < 0 || d < best {
					best = d
				}
			}
			owner := cops[a.Owner[node]]
			require.Equal(t, best, min(g.ShortestDistance(owner.A, node), g.ShortestDistance(owner.B, node)))
		}
	}
}
