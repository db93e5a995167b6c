package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/go-drift/floatdock/pkg/graphics"
)

// cell holds one grapheme cluster. The cell to the right of a wide cluster
// has an empty cluster and is skipped when rendering.
type cell struct {
	cluster string
	style   styleID
}

// grid is a character canvas the size of the terminal.
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	w, h = max(w, 0), max(h, 0)
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{cluster: " "}
	}
	return g
}

// cellRect converts a layout rectangle into clipped cell bounds.
func (g *grid) cellRect(r graphics.Rect) (x0, y0, x1, y1 int) {
	x0 = max(0, int(math.Floor(r.Left)))
	y0 = max(0, int(math.Floor(r.Top)))
	x1 = min(g.w, int(math.Ceil(r.Right)))
	y1 = min(g.h, int(math.Ceil(r.Bottom)))
	return
}

// fill paints r with blanks in style.
func (g *grid) fill(r graphics.Rect, style styleID) {
	x0, y0, x1, y1 := g.cellRect(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			g.cells[y*g.w+x] = cell{cluster: " ", style: style}
		}
	}
}

// text writes s inside r, one line per row, clipped to r.
func (g *grid) text(r graphics.Rect, s string, style styleID) {
	x0, y0, x1, y1 := g.cellRect(r)
	for i, line := range strings.Split(s, "\n") {
		y := y0 + i
		if y >= y1 {
			return
		}
		x := x0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			cw := max(gr.Width(), 1)
			if x+cw > x1 {
				break
			}
			g.cells[y*g.w+x] = cell{cluster: gr.Str(), style: style}
			for k := 1; k < cw; k++ {
				g.cells[y*g.w+x+k] = cell{style: style}
			}
			x += cw
		}
	}
}

// render joins the grid into lines, styling runs of equal style together.
func (g *grid) render(styles map[styleID]lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := styleID(-1)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if st, ok := styles[current]; ok {
				out.WriteString(st.Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < g.w; x++ {
			c := g.cells[y*g.w+x]
			if c.cluster == "" {
				continue
			}
			if c.style != current {
				flush()
				current = c.style
			}
			run.WriteString(c.cluster)
		}
		flush()
	}
	return out.String()
}
