package ui

import (
	"sort"
	"strings"

	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

type segment struct {
	x    int
	text string
}

// canvas assembles styled blocks at absolute cell positions. Blocks are kept
// as segments per row and joined left to right, so ANSI sequences inside a
// block are never split.
type canvas struct {
	width int
	rows  [][]segment
}

func newCanvas(width, height int) *canvas {
	return &canvas{
		width: width,
		rows:  make([][]segment, max(0, height)),
	}
}

// draw places block with its top-left corner at (x, y), clipped to w columns
// and to the canvas.
func (c *canvas) draw(x, y, w int, block string) {
	if block == "" || x < 0 || x >= c.width {
		return
	}
	limit := min(w, c.width-x)
	if limit <= 0 {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(c.rows) {
			continue
		}
		if ansi.PrintableRuneWidth(line) > limit {
			line = truncate.String(line, uint(limit))
		}
		c.rows[row] = append(c.rows[row], segment{x: x, text: line})
	}
}

// String returns the canvas with every row padded to the full width.
// Segments overlapping an earlier one on the same row are dropped.
func (c *canvas) String() string {
	lines := make([]string, len(c.rows))
	for i, segs := range c.rows {
		sort.SliceStable(segs, func(a, b int) bool { return segs[a].x < segs[b].x })

		var sb strings.Builder
		col := 0
		for _, s := range segs {
			if s.x < col {
				continue
			}
			sb.WriteString(strings.Repeat(" ", s.x-col))
			sb.WriteString(s.text)
			col = s.x + ansi.PrintableRuneWidth(s.text)
		}
		if col < c.width {
			sb.WriteString(strings.Repeat(" ", c.width-col))
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}
