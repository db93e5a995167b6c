package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/go-drift/floatdock/pkg/dock"
	"github.com/go-drift/floatdock/pkg/errors"
	"github.com/go-drift/floatdock/pkg/graphics"
)

type debugServer struct {
	server   *http.Server
	listener net.Listener
}

// SafeFloat is a float64 that encodes NaN and infinities as null.
type SafeFloat float64

// MarshalJSON implements json.Marshaler.
func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// SafeRect is a JSON-safe graphics.Rect in left/top/width/height form.
type SafeRect struct {
	Left   SafeFloat `json:"left"`
	Top    SafeFloat `json:"top"`
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

func safeRect(r graphics.Rect) SafeRect {
	return SafeRect{
		Left:   SafeFloat(r.Left),
		Top:    SafeFloat(r.Top),
		Width:  SafeFloat(r.Width()),
		Height: SafeFloat(r.Height()),
	}
}

// BoxNode is one docked element in the /layout response.
type BoxNode struct {
	ID      string   `json:"id"`
	Role    string   `json:"role"`
	Side    string   `json:"side,omitempty"`
	Visible bool     `json:"visible"`
	Rect    SafeRect `json:"rect"`
}

// LayoutSnapshot is the /layout response.
type LayoutSnapshot struct {
	Viewport struct {
		Width  SafeFloat `json:"width"`
		Height SafeFloat `json:"height"`
	} `json:"viewport"`
	Offsets   map[string]SafeFloat `json:"offsets"`
	Panels    map[string]SafeFloat `json:"panelWidths"`
	Boxes     []BoxNode            `json:"boxes"`
	Workspace *BoxNode             `json:"workspace,omitempty"`
}

// SnapshotLayout converts a layout into its JSON form.
func SnapshotLayout(l dock.Layout) LayoutSnapshot {
	var s LayoutSnapshot
	s.Viewport.Width = SafeFloat(l.Viewport.Width)
	s.Viewport.Height = SafeFloat(l.Viewport.Height)
	s.Offsets = make(map[string]SafeFloat, len(dock.Sides))
	s.Panels = make(map[string]SafeFloat, len(dock.Sides))
	for _, side := range dock.Sides {
		s.Offsets[side.String()] = SafeFloat(l.Offsets[side])
		s.Panels[side.String()] = SafeFloat(l.PanelWidths[side])
	}
	add := func(b dock.Box) {
		s.Boxes = append(s.Boxes, boxNode(b))
	}
	if l.MenuBar != nil {
		add(*l.MenuBar)
	}
	if l.StatusBar != nil {
		add(*l.StatusBar)
	}
	for _, b := range l.Toolbars {
		add(b)
	}
	for _, b := range l.Panels {
		add(b)
	}
	if l.Workspace.El != nil {
		n := boxNode(l.Workspace)
		n.Side = ""
		s.Workspace = &n
	}
	return s
}

func boxNode(b dock.Box) BoxNode {
	n := BoxNode{Role: b.Role.String(), Side: b.Side.String(), Visible: b.Visible, Rect: safeRect(b.Rect)}
	if b.El != nil {
		n.ID = b.El.ID()
	}
	return n
}

// StatsSnapshot is the /stats response.
type StatsSnapshot struct {
	Requests       int       `json:"requests"`
	Passes         int       `json:"passes"`
	Pending        bool      `json:"pending"`
	LastPass       time.Time `json:"lastPass,omitzero"`
	LastDurationUs int64     `json:"lastDurationUs"`
}

// DebugHandler serves the engine's diagnostic endpoints:
// /layout, /stats and /health.
func (e *Engine) DebugHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/layout", e.handleLayout)
	mux.HandleFunc("/stats", e.handleStats)
	mux.HandleFunc("/health", handleHealth)
	return mux
}

// StartDebugServer serves DebugHandler on port. Port 0 picks a free port.
// Returns the actual port. Calling it again while running returns the
// current port.
func (e *Engine) StartDebugServer(port int) (int, error) {
	e.debugMu.Lock()
	defer e.debugMu.Unlock()

	if e.debug != nil {
		return e.debug.listener.Addr().(*net.TCPAddr).Port, nil
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}
	srv := &debugServer{server: &http.Server{Handler: e.DebugHandler()}, listener: listener}
	e.debug = srv

	go func() {
		if err := srv.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			e.debugMu.Lock()
			if e.debug == srv {
				e.debug = nil
			}
			e.debugMu.Unlock()
			errors.Report(&errors.LayoutError{
				Op:        "engine.debugServer",
				Kind:      errors.KindUnknown,
				Err:       err,
				Timestamp: time.Now(),
			})
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// StopDebugServer shuts the debug server down.
func (e *Engine) StopDebugServer() {
	e.debugMu.Lock()
	srv := e.debug
	e.debug = nil
	e.debugMu.Unlock()

	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	srv.server.Shutdown(ctx)
}

func (e *Engine) handleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			http.Error(w, fmt.Sprintf("panic: %v", rec), http.StatusInternalServerError)
		}
	}()

	writeJSON(w, SnapshotLayout(e.Layout()))
}

func (e *Engine) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	st := e.scheduler.Stats()
	writeJSON(w, StatsSnapshot{
		Requests:       st.Requests,
		Passes:         st.Passes,
		Pending:        e.scheduler.Pending(),
		LastPass:       st.LastPass,
		LastDurationUs: st.LastDuration.Microseconds(),
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, v any) {
	// Encode to a buffer first so errors still produce a clean status.
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
