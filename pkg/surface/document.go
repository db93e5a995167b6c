package surface

import (
	"fmt"
	"slices"
	"sync"

	"github.com/go-drift/floatdock/pkg/graphics"
)

// Document is an in-memory presentation layer.
//
// Nodes are kept in document order. Geometry follows a small subset of CSS:
// a detached node or one with display:none has a zero rect; otherwise the
// rect starts at the left/top px styles (default 0) and is sized by the
// width/height px styles, falling back to the node's natural size.
type Document struct {
	mu       sync.RWMutex
	viewport graphics.Size
	nodes    []*Node
	byID     map[string]*Node
	measure  TextMeasure
}

// NewDocument creates an empty document with the given viewport.
func NewDocument(viewport graphics.Size) *Document {
	return &Document{
		viewport: viewport,
		byID:     make(map[string]*Node),
		measure:  DefaultTextMeasure,
	}
}

// SetTextMeasure replaces the function used for text natural sizes.
// Passing nil restores DefaultTextMeasure.
func (d *Document) SetTextMeasure(m TextMeasure) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if m == nil {
		m = DefaultTextMeasure
	}
	d.measure = m
}

// Viewport returns the current viewport size.
func (d *Document) Viewport() graphics.Size {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.viewport
}

// Resize changes the viewport size.
func (d *Document) Resize(viewport graphics.Size) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.viewport = viewport
}

// CreateElement returns a new detached node.
func (d *Document) CreateElement(id string) *Node {
	return &Node{id: id, styles: make(map[string]string)}
}

// Append attaches n at the end of the document.
func (d *Document) Append(n *Node) error {
	return d.insertAt(n, -1)
}

// InsertBefore attaches n immediately before ref. A nil ref appends.
func (d *Document) InsertBefore(n, ref *Node) error {
	if ref == nil {
		return d.Append(n)
	}
	d.mu.RLock()
	idx := slices.Index(d.nodes, ref)
	d.mu.RUnlock()
	if idx < 0 {
		return fmt.Errorf("insert %q: reference %q not in document", n.id, ref.id)
	}
	return d.insertAt(n, idx)
}

func (d *Document) insertAt(n *Node, idx int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n.owner() != nil {
		return fmt.Errorf("insert %q: already attached", n.id)
	}
	if n.id != "" {
		if _, exists := d.byID[n.id]; exists {
			return fmt.Errorf("insert %q: duplicate id", n.id)
		}
		d.byID[n.id] = n
	}
	n.setOwner(d)
	if idx < 0 || idx >= len(d.nodes) {
		d.nodes = append(d.nodes, n)
	} else {
		d.nodes = slices.Insert(d.nodes, idx, n)
	}
	return nil
}

// Remove detaches n. Removing a detached node is a no-op.
func (d *Document) Remove(n *Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n == nil || n.owner() != d {
		return
	}
	d.nodes = slices.DeleteFunc(d.nodes, func(other *Node) bool { return other == n })
	delete(d.byID, n.id)
	n.setOwner(nil)
}

// Lookup returns the attached node with the given id.
func (d *Document) Lookup(id string) (*Node, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n, ok := d.byID[id]
	return n, ok
}

// Elements returns the attached nodes in document order.
func (d *Document) Elements() []*Node {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.nodes)
}

// Index returns el's document position or -1.
func (d *Document) Index(el Element) int {
	n, ok := el.(*Node)
	if !ok {
		return -1
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if n.owner() != d {
		return -1
	}
	return slices.Index(d.nodes, n)
}

// Rect returns el's rectangle in viewport coordinates.
func (d *Document) Rect(el Element) graphics.Rect {
	n, ok := el.(*Node)
	if !ok || n == nil {
		return graphics.Rect{}
	}
	d.mu.RLock()
	measure := d.measure
	d.mu.RUnlock()

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.doc != d || n.styles[StyleDisplay] == "none" {
		return graphics.Rect{}
	}
	left, _ := ParsePx(n.styles[StyleLeft])
	top, _ := ParsePx(n.styles[StyleTop])
	natural := n.naturalSize(measure)
	width, ok := ParsePx(n.styles[StyleWidth])
	if !ok {
		width = natural.Width
	}
	height, ok := ParsePx(n.styles[StyleHeight])
	if !ok {
		height = natural.Height
	}
	return graphics.RectFromLTWH(left, top, width, height)
}

// Node is an element of a Document. Its methods are safe for concurrent
// use, so a reflow pass on a frame goroutine may write styles while other
// goroutines read geometry.
type Node struct {
	id string

	// mu guards everything below. A Document acquires its own lock before
	// a node's, never the reverse.
	mu         sync.RWMutex
	doc        *Document
	styles     map[string]string
	text       string
	natural    graphics.Size
	hasNatural bool
}

// ID returns the node id.
func (n *Node) ID() string { return n.id }

// Attached reports whether the node is in a document.
func (n *Node) Attached() bool { return n.owner() != nil }

func (n *Node) owner() *Document {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.doc
}

func (n *Node) setOwner(d *Document) {
	n.mu.Lock()
	n.doc = d
	n.mu.Unlock()
}

// Style returns the inline value of a style property.
func (n *Node) Style(name string) string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.styles[name]
}

// SetStyle sets or, with an empty value, removes a style property.
func (n *Node) SetStyle(name, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if value == "" {
		delete(n.styles, name)
		return
	}
	n.styles[name] = value
}

// Styles returns a copy of the inline style map.
func (n *Node) Styles() map[string]string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make(map[string]string, len(n.styles))
	for k, v := range n.styles {
		out[k] = v
	}
	return out
}

// Text returns the node's text content.
func (n *Node) Text() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.text
}

// SetText sets the node's text content, which sizes the node when no
// explicit natural size is set.
func (n *Node) SetText(text string) {
	n.mu.Lock()
	n.text = text
	n.mu.Unlock()
}

// SetNaturalSize fixes the node's intrinsic content size.
func (n *Node) SetNaturalSize(s graphics.Size) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.natural = s
	n.hasNatural = true
}

// naturalSize must be called with n.mu held.
func (n *Node) naturalSize(measure TextMeasure) graphics.Size {
	if n.hasNatural {
		return n.natural
	}
	if measure == nil || n.text == "" {
		return graphics.Size{}
	}
	return measure(n.text)
}
