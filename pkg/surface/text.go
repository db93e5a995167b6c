package surface

import (
	"math"
	"strings"

	"github.com/go-drift/floatdock/pkg/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasure returns the natural size of a text label.
type TextMeasure func(text string) graphics.Size

// FaceMeasure measures text with a font face. Each line contributes one
// line height; the width is the widest line's advance.
func FaceMeasure(face font.Face) TextMeasure {
	return func(text string) graphics.Size {
		if text == "" {
			return graphics.Size{}
		}
		metrics := face.Metrics()
		lineHeight := float64(metrics.Height) / 64
		lines := strings.Split(text, "\n")
		width := 0.0
		for _, line := range lines {
			adv := font.MeasureString(face, line)
			width = math.Max(width, math.Ceil(float64(adv)/64))
		}
		return graphics.Size{Width: width, Height: math.Ceil(lineHeight * float64(len(lines)))}
	}
}

// DefaultTextMeasure uses the 7x13 bitmap face.
var DefaultTextMeasure = FaceMeasure(basicfont.Face7x13)
