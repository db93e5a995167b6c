// Package dock stacks docked chrome (menu bar, status bar, toolbars and side
// panels) along the viewport edges and computes the workspace that remains.
//
// Offsets are never cached. Every query reads current geometry, so a toolbar
// that changes height or is toggled off is reflected on the next call.
package dock

import (
	"fmt"
	"strings"

	"github.com/go-drift/floatdock/pkg/errors"
)

// Side is the viewport edge a docked element attaches to.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

// Sides lists every side in the order a reflow pass computes them.
var Sides = [...]Side{Top, Bottom, Left, Right}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s >= Top && s <= Right
}

// Horizontal reports whether elements on s stack along the x axis.
// Their extent is their width; top and bottom elements use height.
func (s Side) Horizontal() bool {
	return s == Left || s == Right
}

// ParseSide converts "top", "bottom", "left" or "right".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, errors.Config("dock.ParseSide", "", fmt.Errorf("%w: %q", errors.ErrInvalidSide, s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", errors.ErrInvalidSide, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	side, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Role is what a docked element is.
type Role int

const (
	RoleToolbar Role = iota
	RolePanel
	RoleMenuBar
	RoleStatusBar
	RoleWorkspace
)

func (r Role) String() string {
	switch r {
	case RoleToolbar:
		return "toolbar"
	case RolePanel:
		return "panel"
	case RoleMenuBar:
		return "menubar"
	case RoleStatusBar:
		return "statusbar"
	case RoleWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}
