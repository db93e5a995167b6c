package tui

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/go-drift/floatdock/pkg/graphics"
)

// CellMeasure sizes text in terminal cells: one row per line and the
// widest line's display width, counting wide graphemes as two cells.
func CellMeasure(text string) graphics.Size {
	if text == "" {
		return graphics.Size{}
	}
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, uniseg.StringWidth(line))
	}
	return graphics.Size{Width: float64(width), Height: float64(len(lines))}
}
