// Package player provides robber move sources for the engine.
package player

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pursuit/game"
)

// Lines longer than this are dropped and read as malformed input.
const maxLineLength = 1024

// Console asks a human for the robber's moves.
type Console struct {
	graph    *game.Graph
	in       *bufio.Scanner
	out      io.Writer
	skipping bool // Discarding the rest of an overlong line
}

// NewConsole reads moves from in and writes prompts to out.
func NewConsole(g *game.Graph, in io.Reader, out io.Writer) *Console {
	c := &Console{
		graph: g,
		out:   out,
	}
	c.in = bufio.NewScanner(in)
	c.in.Split(c.scanLine)
	return c
}

// scanLine is bufio.ScanLines, except that a line reaching maxLineLength
// without a newline yields an empty token and the rest of it is skipped.
func (c *Console) scanLine(data []byte, atEOF bool) (int, []byte, error) {
	if c.skipping {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			c.skipping = false
			return i + 1, nil, nil
		}
		return len(data), nil, nil
	}

	advance, token, err := bufio.ScanLines(data, atEOF)
	if advance == 0 && token == nil && err == nil && len(data) >= maxLineLength {
		c.skipping = true
		return len(data), []byte{}, nil
	}
	return advance, token, err
}

func (c *Console) NextMove(state game.GameState, rejected error) (game.Edge, error) {
	switch {
	case rejected == nil:
		fmt.Fprintf(c.out, "Available moves: %s\n", FormatEdges(c.graph.Neighbors(state.Robber)))
	case errors.Is(rejected, game.ErrMalformedInput):
		fmt.Fprintln(c.out, "Enter valid node numbers.")
	default:
		fmt.Fprintln(c.out, "Invalid move. Choose an adjacent edge.")
	}
	fmt.Fprint(c.out, "Enter your next move (format: node1 node2): ")

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return game.Edge{}, err
		}
		return game.Edge{}, io.EOF
	}
	return ParseEdge(c.in.Text())
}

// ParseEdge reads an edge written as two node numbers separated by
// whitespace or a comma, optionally in parentheses: "1 2", "(1, 2)".
func ParseEdge(s string) (game.Edge, error) {
	s = strings.Trim(strings.TrimSpace(s), "()")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return game.Edge{}, fmt.Errorf("%q: want two node numbers: %w", s, game.ErrMalformedInput)
	}

	nodes := make([]game.Node, 2)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return game.Edge{}, fmt.Errorf("%q is not a node number: %w", f, game.ErrMalformedInput)
		}
		nodes[i] = game.Node(n)
	}
	return game.NewEdge(nodes[0], nodes[1]), nil
}

// FormatEdges joins edges as "(0, 1) (1, 2)".
func FormatEdges(edges []game.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}
