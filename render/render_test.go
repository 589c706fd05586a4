package render

import (
	"bytes"
	"testing"

	"pursuit/game"

	"github.com/stretchr/testify/require"
)

func TestTextRender(t *testing.T) {
	g, err := game.NewGraph(4, []game.Edge{
		game.NewEdge(0, 1), game.NewEdge(1, 2), game.NewEdge(2, 3), game.NewEdge(3, 0),
	})
	require.NoError(t, err)
	state := game.GameState{
		Robber: game.NewEdge(2, 3),
		Cops:   []game.Edge{game.NewEdge(0, 1)},
		Goal:   game.NewEdge(1, 2),
		Turn:   3,
	}

	out := &bytes.Buffer{}
	NewText(out).Render(g, state)

	text := out.String()
	require.Contains(t, text, "Turn 3 - in progress")
	require.Contains(t, text, "Robber: (2, 3)")
	require.Regexp(t, `Cops:\s+\(0, 1\)`, text)
	require.Regexp(t, `Goal:\s+\(1, 2\)`, text)
	require.Regexp(t, `\(0, 1\)\s+C0`, text)
	require.Regexp(t, `\(1, 2\)\s+G`, text)
	require.Regexp(t, `\(2, 3\)\s+R`, text)
	require.Regexp(t, `\(0, 3\)\s+\.`, text)
	require.NotContains(t, text, "\x1b[", "No colours when writing to a buffer")
}
