package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a LayoutError.
func (h *LogHandler) HandleError(err *LayoutError) {
	if err == nil {
		return
	}
	w := h.out()
	if !h.Verbose {
		fmt.Fprintf(w, "[floatdock error] %s: %v\n", err.Op, err.Err)
		return
	}
	fmt.Fprintf(w, "[floatdock error] %s [%s]", err.Op, err.Kind)
	if err.Element != "" {
		fmt.Fprintf(w, " element=%s", err.Element)
	}
	fmt.Fprintf(w, ": %v\n", err.Err)
	if err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[floatdock panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[floatdock panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// Recorder is an ErrorHandler that keeps everything it receives.
// Tests install it with SetHandler to assert on absorbed failures.
type Recorder struct {
	Errors []*LayoutError
	Panics []*PanicError
}

// HandleError records err.
func (r *Recorder) HandleError(err *LayoutError) { r.Errors = append(r.Errors, err) }

// HandlePanic records err.
func (r *Recorder) HandlePanic(err *PanicError) { r.Panics = append(r.Panics, err) }
