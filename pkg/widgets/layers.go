package widgets

import (
	"sync"

	"github.com/go-drift/floatdock/pkg/engine"
	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/surface"
)

// Well-known layer names.
const (
	LayerTooltip     = "tooltip"
	LayerContextMenu = "context-menu"
)

// LayerID returns the element id of the layer called name.
func LayerID(name string) string { return "layer-" + name }

// Layers owns the shared overlay elements floating widgets draw into.
type Layers struct {
	doc *surface.Document

	mu     sync.Mutex
	layers map[string]*surface.Node
}

// NewLayers returns a layer service creating its elements in doc.
func NewLayers(doc *surface.Document) *Layers {
	return &Layers{doc: doc, layers: make(map[string]*surface.Node)}
}

var (
	defaultLayersOnce sync.Once
	defaultLayers     *Layers
)

// DefaultLayers returns the process-wide layer service over the default
// engine's document.
func DefaultLayers() *Layers {
	defaultLayersOnce.Do(func() {
		defaultLayers = NewLayers(engine.DefaultDocument())
	})
	return defaultLayers
}

// Layer returns the element for name, creating and appending it hidden the
// first time. Later calls return the same element. When the document
// already holds an element with the layer's id the failure is reported and
// a detached element is returned.
func (l *Layers) Layer(name string) *surface.Node {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n, ok := l.layers[name]; ok {
		return n
	}
	n := l.doc.CreateElement(LayerID(name))
	n.SetStyle(surface.StylePosition, "fixed")
	n.SetStyle(surface.StyleDisplay, "none")
	if err := l.doc.Append(n); err != nil {
		// The host already has an element with this id. The detached node
		// measures zero; it is not kept so a later call can retry.
		errors.Report(&errors.LayoutError{
			Op:      "widgets.Layer",
			Kind:    errors.KindSurface,
			Element: n.ID(),
			Err:     err,
		})
		return n
	}
	l.layers[name] = n
	return n
}

// Has reports whether name has been created.
func (l *Layers) Has(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.layers[name]
	return ok
}

// Release removes the element for name from the document. The next Layer
// call for name creates a fresh element.
func (l *Layers) Release(name string) {
	l.mu.Lock()
	n, ok := l.layers[name]
	delete(l.layers, name)
	l.mu.Unlock()
	if ok {
		l.doc.Remove(n)
	}
}

func show(el surface.Element) { el.SetStyle(surface.StyleDisplay, "") }

func hide(el surface.Element) { el.SetStyle(surface.StyleDisplay, "none") }
