// Package canvas is the drawing surface that can be attached to the
// workspace. It survives workspace resizes without losing what was drawn.
package canvas

import (
	"image"
	"math"
	"sync"

	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/graphics"
	"golang.org/x/image/draw"
)

// Surface is an RGBA pixel buffer.
type Surface struct {
	mu  sync.Mutex
	img *image.RGBA
}

// New allocates a surface of w by h pixels.
func New(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))}
}

// Size returns the surface size in pixels.
func (s *Surface) Size() image.Point {
	if s == nil {
		return image.Point{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return image.Point{}
	}
	return s.img.Bounds().Size()
}

// Image returns the backing image. The pointer changes on Resize.
func (s *Surface) Image() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// Fill paints r with c.
func (s *Surface) Fill(r image.Rectangle, c graphics.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// At returns the color at (x, y).
func (s *Surface) At(x, y int) graphics.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return graphics.ColorTransparent
	}
	return graphics.ColorFrom(s.img.At(x, y))
}

// Resize changes the surface to w by h pixels, keeping existing pixels
// anchored at the top-left. Pixels outside the new bounds are dropped and
// new area is transparent.
func (s *Surface) Resize(w, h int) error {
	if s == nil {
		return errors.ErrNoSurface
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return errors.ErrNoSurface
	}
	w, h = max(w, 0), max(h, 0)
	old := s.img
	if old.Bounds().Dx() == w && old.Bounds().Dy() == h {
		return nil
	}

	// Copy out first so the new backing image never aliases the old one.
	buf := image.NewRGBA(old.Bounds())
	draw.Copy(buf, image.Point{}, old, old.Bounds(), draw.Src, nil)

	next := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Copy(next, image.Point{}, buf, buf.Bounds(), draw.Src, nil)
	s.img = next
	return nil
}

// ResizeTo is Resize for a layout rectangle, rounding up to whole pixels.
func (s *Surface) ResizeTo(r graphics.Rect) error {
	return s.Resize(int(math.Ceil(r.Width())), int(math.Ceil(r.Height())))
}

// ScaleTo resamples the content to w by h pixels. Used when a panel hosting
// the surface is scaled rather than resized.
func (s *Surface) ScaleTo(w, h int) error {
	if s == nil {
		return errors.ErrNoSurface
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.img == nil {
		return errors.ErrNoSurface
	}
	next := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	draw.ApproxBiLinear.Scale(next, next.Bounds(), s.img, s.img.Bounds(), draw.Src, nil)
	s.img = next
	return nil
}
