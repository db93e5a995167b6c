package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/floatdock/pkg/anchor"
	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "place",
		Short: "Resolve a floating placement against a reference rectangle",
		Long: `Compute where a floating target goes relative to a reference rectangle,
flipping across the reference when it would not fit and clamping it inside
the viewport margin.

Anchors are written primary-sub, for example bottom-left, top-center or
right-top.

Flags:
  --ref x,y,w,h            Reference rectangle (required)
  --target WxH             Target size (required)
  --ref-anchor A           Point on the reference (default: bottom-left)
  --target-anchor B        Point on the target (default: top-left)
  --offset x,y             Offset applied after anchoring
  --margin m               Viewport margin (default: 4)
  --viewport WxH           Viewport size (default: 1280x800)
  --json                   Print the placement as JSON`,
		Usage: "floatdock place --ref x,y,w,h --target WxH [flags]",
		Run:   runPlace,
	})
}

type placeOptions struct {
	ref          *graphics.Rect
	target       *graphics.Size
	refAnchor    string
	targetAnchor string
	offset       graphics.Offset
	margin       float64
	viewport     graphics.Size
	json         bool
}

// placeResult is the --json form of a placement.
type placeResult struct {
	X            engine.SafeFloat `json:"x"`
	Y            engine.SafeFloat `json:"y"`
	Width        engine.SafeFloat `json:"width"`
	Height       engine.SafeFloat `json:"height"`
	RefAnchor    string           `json:"refAnchor"`
	TargetAnchor string           `json:"targetAnchor"`
	Arrow        string           `json:"arrow"`
	Flipped      bool             `json:"flipped"`
}

func runPlace(args []string) error {
	opts := placeOptions{
		refAnchor:    "bottom-left",
		targetAnchor: "top-left",
		margin:       engine.DefaultMargin,
		viewport:     engine.DefaultViewport,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--json" {
			opts.json = true
			continue
		}
		if !strings.HasPrefix(arg, "--") {
			return fmt.Errorf("unexpected argument %q", arg)
		}
		if i+1 >= len(args) {
			return fmt.Errorf("%s requires a value", arg)
		}
		val := args[i+1]
		i++

		var err error
		switch arg {
		case "--ref":
			var r graphics.Rect
			r, err = parseRect(val)
			opts.ref = &r
		case "--target":
			var s graphics.Size
			s, err = parseSize(val)
			opts.target = &s
		case "--ref-anchor":
			opts.refAnchor = val
		case "--target-anchor":
			opts.targetAnchor = val
		case "--offset":
			var p []float64
			p, err = parseFloats(val, ",", 2)
			if err == nil {
				opts.offset = graphics.Offset{X: p[0], Y: p[1]}
			}
		case "--margin":
			opts.margin, err = strconv.ParseFloat(val, 64)
			if err == nil && opts.margin < 0 {
				opts.margin = 0
			}
		case "--viewport":
			opts.viewport, err = parseSize(val)
		default:
			return fmt.Errorf("unknown flag %s", arg)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
	}

	if opts.ref == nil {
		return fmt.Errorf("--ref is required")
	}
	if opts.target == nil {
		return fmt.Errorf("--target is required")
	}

	ra, ta := anchor.Parse(opts.refAnchor), anchor.Parse(opts.targetAnchor)
	p := anchor.Place(*opts.ref, *opts.target, opts.viewport, ra, ta, opts.offset, opts.margin)
	flipped := p.RefAnchor != ra

	if opts.json {
		data, err := json.MarshalIndent(placeResult{
			X:            engine.SafeFloat(p.X),
			Y:            engine.SafeFloat(p.Y),
			Width:        engine.SafeFloat(opts.target.Width),
			Height:       engine.SafeFloat(opts.target.Height),
			RefAnchor:    p.RefAnchor.String(),
			TargetAnchor: p.TargetAnchor.String(),
			Arrow:        p.Arrow().String(),
			Flipped:      flipped,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "position      %g,%g\n", p.X, p.Y)
	fmt.Fprintf(out, "ref-anchor    %s\n", p.RefAnchor)
	fmt.Fprintf(out, "target-anchor %s\n", p.TargetAnchor)
	fmt.Fprintf(out, "arrow         %s\n", p.Arrow())
	if flipped {
		fmt.Fprintln(out, "flipped       yes")
	}
	return nil
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (graphics.Rect, error) {
	v, err := parseFloats(s, ",", 4)
	if err != nil {
		return graphics.Rect{}, err
	}
	if v[2] < 0 || v[3] < 0 {
		return graphics.Rect{}, fmt.Errorf("negative size in %q", s)
	}
	return graphics.RectFromLTWH(v[0], v[1], v[2], v[3]), nil
}

// parseSize parses "WxH".
func parseSize(s string) (graphics.Size, error) {
	v, err := parseFloats(strings.ToLower(s), "x", 2)
	if err != nil {
		return graphics.Size{}, err
	}
	if v[0] < 0 || v[1] < 0 {
		return graphics.Size{}, fmt.Errorf("negative size in %q", s)
	}
	return graphics.Size{Width: v[0], Height: v[1]}, nil
}

func parseFloats(s, sep string, n int) ([]float64, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d values separated by %q, got %q", n, sep, s)
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		vals[i] = v
	}
	return vals, nil
}
