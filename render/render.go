// Package render draws the board as text after every turn.
package render

import (
	"fmt"
	"io"
	"strings"

	"pursuit/game"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCop    = lipgloss.Color("#E74C3C")
	colorRobber = lipgloss.Color("#F4D03F")
	colorGoal   = lipgloss.Color("#2CD7C7")
	colorMuted  = lipgloss.Color("#2C4A54")
)

// Text writes the positions and the edge list to a writer. Colours are
// dropped automatically when the writer is not a terminal.
type Text struct {
	out    io.Writer
	title  lipgloss.Style
	box    lipgloss.Style
	cop    lipgloss.Style
	robber lipgloss.Style
	goal   lipgloss.Style
	muted  lipgloss.Style
}

func NewText(out io.Writer) *Text {
	r := lipgloss.NewRenderer(out)
	return &Text{
		out:    out,
		title:  r.NewStyle().Bold(true),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1),
		cop:    r.NewStyle().Foreground(colorCop).Bold(true),
		robber: r.NewStyle().Foreground(colorRobber).Bold(true),
		goal:   r.NewStyle().Foreground(colorGoal).Bold(true),
		muted:  r.NewStyle().Foreground(colorMuted),
	}
}

func (t *Text) Render(g *game.Graph, state game.GameState) {
	var b strings.Builder

	b.WriteString(t.title.Render(fmt.Sprintf("Turn %d - %s", state.Turn, state.Outcome)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", t.robber.Render("Robber:"), state.Robber)
	fmt.Fprintf(&b, "%s %s\n", t.cop.Render("Cops:  "), joinEdges(state.Cops))
	fmt.Fprintf(&b, "%s %s\n", t.goal.Render("Goal:  "), state.Goal)
	b.WriteString("\n")

	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "%-10s %s\n", e, t.markers(e, state))
	}

	fmt.Fprintln(t.out, t.box.Render(strings.TrimRight(b.String(), "\n")))
}

func (t *Text) markers(e game.Edge, state game.GameState) string {
	var marks []string
	for i, c := range state.Cops {
		if c == e {
			marks = append(marks, t.cop.Render(fmt.Sprintf("C%d", i)))
		}
	}
	if state.Robber == e {
		marks = append(marks, t.robber.Render("R"))
	}
	if state.Goal == e {
		marks = append(marks, t.goal.Render("G"))
	}
	if len(marks) == 0 {
		return t.muted.Render(".")
	}
	return strings.Join(marks, " ")
}

func joinEdges(edges []game.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// Nop discards every frame. Used by batch simulations.
type Nop struct{}

func (Nop) Render(*game.Graph, game.GameState) {}
