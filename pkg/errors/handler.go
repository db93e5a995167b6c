package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot wraps the installed handler so atomic.Value always stores the
// same concrete type.
type handlerSlot struct{ h ErrorHandler }

var current atomic.Value // handlerSlot

func init() { current.Store(handlerSlot{&LogHandler{}}) }

// SetHandler installs h as the global handler. Nil restores a terse
// LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(handlerSlot{h})
}

func getHandler() ErrorHandler {
	return current.Load().(handlerSlot).h
}

// Report hands err to the global handler, stamping it first when
// Timestamp is unset.
func Report(err *LayoutError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	getHandler().HandleError(err)
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	getHandler().HandlePanic(err)
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Recover reports a panic in progress as a PanicError for op and then
// calls each onPanic with the recovered value. It must be deferred
// directly:
//
//	defer errors.Recover("reflow.pass")
func Recover(op string, onPanic ...func(any)) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	for _, fn := range onPanic {
		if fn != nil {
			fn(r)
		}
	}
}

// CaptureStack formats the caller's stack, one "function (file:line)"
// entry per frame, outermost last.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	// Skip runtime.Callers, CaptureStack and its direct caller.
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var lines []string
	frames := runtime.CallersFrames(pcs)
	for {
		f, more := frames.Next()
		lines = append(lines, fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line))
		if !more {
			break
		}
	}
	return strings.Join(lines, "\n")
}
