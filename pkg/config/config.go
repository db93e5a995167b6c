// Package config reads chrome layout files.
//
// A layout file names the viewport, the menu bar and status bar, and every
// toolbar and side panel with its side and size. YAML and TOML are both
// accepted:
//
//	version: v1.0.0
//	viewport: {width: 1280, height: 800}
//	menubar: {id: menu, height: 24}
//	toolbars:
//	  - {id: main, side: top, size: 32}
//	panels:
//	  - {id: explorer, side: left, width: 220}
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/errors"
)

// DefaultFileName is the layout file LoadOptional looks for.
const DefaultFileName = "floatdock.yaml"

// CurrentVersion is the layout format version written by this package.
const CurrentVersion = "v1.0.0"

// Defaults applied by Normalize.
const (
	DefaultWidth  = 1280
	DefaultHeight = 800
	DefaultMargin = 4
)

// Format is a layout file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks a format from a file extension. Unknown extensions read
// as YAML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML
	default:
		return YAML
	}
}

// File is a chrome layout description.
type File struct {
	Version   string    `yaml:"version,omitempty" toml:"version,omitempty"`
	Name      string    `yaml:"name,omitempty" toml:"name,omitempty"`
	Viewport  Viewport  `yaml:"viewport" toml:"viewport"`
	Margin    float64   `yaml:"margin,omitempty" toml:"margin,omitempty"`
	MenuBar   *Bar      `yaml:"menubar,omitempty" toml:"menubar,omitempty"`
	StatusBar *Bar      `yaml:"statusbar,omitempty" toml:"statusbar,omitempty"`
	Toolbars  []Toolbar `yaml:"toolbars,omitempty" toml:"toolbars,omitempty"`
	Panels    []Panel   `yaml:"panels,omitempty" toml:"panels,omitempty"`
}

// Viewport is the initial viewport size.
type Viewport struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Bar is the menu bar or the status bar.
type Bar struct {
	ID     string  `yaml:"id" toml:"id"`
	Label  string  `yaml:"label,omitempty" toml:"label,omitempty"`
	Height float64 `yaml:"height" toml:"height"`
	Hidden bool    `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// Toolbar is a docked toolbar. Size is its height on top and bottom and its
// width on left and right.
type Toolbar struct {
	ID     string  `yaml:"id" toml:"id"`
	Side   string  `yaml:"side" toml:"side"`
	Size   float64 `yaml:"size" toml:"size"`
	Label  string  `yaml:"label,omitempty" toml:"label,omitempty"`
	Hidden bool    `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// Panel is a side panel.
type Panel struct {
	ID     string  `yaml:"id" toml:"id"`
	Side   string  `yaml:"side" toml:"side"`
	Width  float64 `yaml:"width" toml:"width"`
	Label  string  `yaml:"label,omitempty" toml:"label,omitempty"`
	Hidden bool    `yaml:"hidden,omitempty" toml:"hidden,omitempty"`
}

// Parse decodes, normalizes and validates a layout.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, &f)
	case YAML, "":
		err = yaml.Unmarshal(data, &f)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, errors.Config("config.Parse", "", fmt.Errorf("failed to parse layout: %w", err))
	}
	f.Normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads the layout at path. The format follows the extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("config.Load", "", fmt.Errorf("failed to read %s: %w", path, err))
	}
	f, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, err
	}
	if f.Name == "" {
		f.Name = defaultName(filepath.Dir(path))
	}
	return f, nil
}

// LoadOptional reads floatdock.yaml in dir if present. A missing file
// yields the defaults.
func LoadOptional(dir string) (*File, error) {
	path := filepath.Join(dir, DefaultFileName)
	f, err := Load(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			f = &File{Name: defaultName(dir)}
			f.Normalize()
			return f, nil
		}
		return nil, err
	}
	return f, nil
}

// Marshal encodes f in format.
func Marshal(f *File, format Format) ([]byte, error) {
	switch format {
	case TOML:
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(f); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case YAML, "":
		return yaml.Marshal(f)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Normalize fills in defaults.
func (f *File) Normalize() {
	if strings.TrimSpace(f.Version) == "" {
		f.Version = CurrentVersion
	}
	if f.Viewport.Width == 0 {
		f.Viewport.Width = DefaultWidth
	}
	if f.Viewport.Height == 0 {
		f.Viewport.Height = DefaultHeight
	}
	if f.Margin == 0 {
		f.Margin = DefaultMargin
	}
	for _, b := range []*Bar{f.MenuBar, f.StatusBar} {
		if b != nil && b.Label == "" {
			b.Label = b.ID
		}
	}
	for i := range f.Toolbars {
		if f.Toolbars[i].Label == "" {
			f.Toolbars[i].Label = f.Toolbars[i].ID
		}
	}
	for i := range f.Panels {
		if f.Panels[i].Label == "" {
			f.Panels[i].Label = f.Panels[i].ID
		}
	}
}

// Validate checks the layout. Unknown sides, panels docked top or bottom,
// missing, reserved or duplicate ids and negative sizes are rejected.
func (f *File) Validate() error {
	if !semver.IsValid(f.Version) {
		return errors.Config("config.Validate", "", fmt.Errorf("invalid version %q", f.Version))
	}
	if major := semver.Major(f.Version); major != semver.Major(CurrentVersion) {
		return errors.Config("config.Validate", "", fmt.Errorf("unsupported layout version %s (want %s)", f.Version, semver.Major(CurrentVersion)))
	}
	if f.Viewport.Width < 0 || f.Viewport.Height < 0 {
		return errors.Config("config.Validate", "", fmt.Errorf("negative viewport %vx%v", f.Viewport.Width, f.Viewport.Height))
	}

	seen := map[string]bool{}
	checkID := func(id string) error {
		if id == "" {
			return errors.Config("config.Validate", "", fmt.Errorf("element without an id"))
		}
		if id == WorkspaceID {
			return errors.Config("config.Validate", id, fmt.Errorf("id %q is reserved", id))
		}
		if seen[id] {
			return errors.Config("config.Validate", id, fmt.Errorf("duplicate id %q", id))
		}
		seen[id] = true
		return nil
	}
	checkSize := func(id string, v float64) error {
		if v < 0 {
			return errors.Config("config.Validate", id, fmt.Errorf("negative size %v", v))
		}
		return nil
	}

	for _, b := range []*Bar{f.MenuBar, f.StatusBar} {
		if b == nil {
			continue
		}
		if err := checkID(b.ID); err != nil {
			return err
		}
		if err := checkSize(b.ID, b.Height); err != nil {
			return err
		}
	}
	for _, t := range f.Toolbars {
		if err := checkID(t.ID); err != nil {
			return err
		}
		if _, err := dock.ParseSide(t.Side); err != nil {
			return errors.Config("config.Validate", t.ID, err)
		}
		if err := checkSize(t.ID, t.Size); err != nil {
			return err
		}
	}
	for _, p := range f.Panels {
		if err := checkID(p.ID); err != nil {
			return err
		}
		side, err := dock.ParseSide(p.Side)
		if err != nil {
			return errors.Config("config.Validate", p.ID, err)
		}
		if !side.Horizontal() {
			return errors.Config("config.Validate", p.ID,
				fmt.Errorf("%w: panels dock left or right, got %s", errors.ErrInvalidSide, side))
		}
		if err := checkSize(p.ID, p.Width); err != nil {
			return err
		}
	}
	return nil
}

// defaultName names a layout after the Go module in dir, falling back to
// the directory name.
func defaultName(dir string) string {
	base := filepath.Base(dir)
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return base
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return base
	}
	if prefix, _, ok := module.SplitPathVersion(path); ok {
		path = prefix
	}
	return path[strings.LastIndex(path, "/")+1:]
}
