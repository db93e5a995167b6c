package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/floatdock/pkg/graphics"
)

type styleID int

const (
	styleBlank styleID = iota
	styleWorkspace
	stylePanel
	styleToolbar
	styleBar
	styleTooltip
	styleMenu
	styleToast
)

// Palette colors the terminal host.
type Palette struct {
	Workspace graphics.Color
	Panel     graphics.Color
	Toolbar   graphics.Color
	Bar       graphics.Color
	Tooltip   graphics.Color
	Menu      graphics.Color
	Toast     graphics.Color
	Text      graphics.Color
}

// DefaultPalette is a dark scheme.
var DefaultPalette = Palette{
	Workspace: graphics.RGB(0x1e, 0x1e, 0x2e),
	Panel:     graphics.RGB(0x31, 0x32, 0x44),
	Toolbar:   graphics.RGB(0x45, 0x47, 0x5a),
	Bar:       graphics.RGB(0x58, 0x5b, 0x70),
	Tooltip:   graphics.RGB(0xf9, 0xe2, 0xaf),
	Menu:      graphics.RGB(0x89, 0xb4, 0xfa),
	Toast:     graphics.RGB(0xa6, 0xe3, 0xa1),
	Text:      graphics.RGB(0xcd, 0xd6, 0xf4),
}

func (p Palette) styles() map[styleID]lipgloss.Style {
	bg := func(c graphics.Color) lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Foreground(lipgloss.Color(p.Text.Hex()))
	}
	dark := lipgloss.Color(graphics.ColorBlack.Hex())
	return map[styleID]lipgloss.Style{
		styleWorkspace: bg(p.Workspace),
		stylePanel:     bg(p.Panel),
		styleToolbar:   bg(p.Toolbar).Bold(true),
		styleBar:       bg(p.Bar),
		styleTooltip:   bg(p.Tooltip).Foreground(dark),
		styleMenu:      bg(p.Menu).Foreground(dark),
		styleToast:     bg(p.Toast).Foreground(dark),
	}
}
