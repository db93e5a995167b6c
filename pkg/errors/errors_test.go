package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestLayoutErrorString(t *testing.T) {
	err := &LayoutError{
		Op:   "dock.Register",
		Kind: KindConfig,
		Err:  ErrInvalidSide,
	}
	want := "dock.Register [config]: invalid dock side"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLayoutErrorWithElement(t *testing.T) {
	err := &LayoutError{
		Op:      "measure.NaturalSize",
		Kind:    KindMeasure,
		Element: "toolbar-1",
		Err:     ErrDetached,
	}
	if got := err.Error(); !strings.Contains(got, "element=toolbar-1") {
		t.Errorf("error string %q should contain element id", got)
	}
}

func TestLayoutErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Config("dock.Register", "x", ErrInvalidSide))
	if !Is(err, ErrInvalidSide) {
		t.Error("expected errors.Is to find ErrInvalidSide through LayoutError")
	}
	var le *LayoutError
	if !As(err, &le) {
		t.Fatal("expected errors.As to find *LayoutError")
	}
	if le.Kind != KindConfig {
		t.Errorf("Kind = %v, want config", le.Kind)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindMeasure, "measure"},
		{KindPlacement, "placement"},
		{KindReflow, "reflow"},
		{KindSurface, "surface"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Op: "reflow.run", Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic in reflow.run: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = ""
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport_SetsTimestamp(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(&LayoutError{Op: "test.op", Kind: KindSurface, Err: ErrNoSurface})

	if len(rec.Errors) != 1 {
		t.Fatalf("expected 1 recorded error, got %d", len(rec.Errors))
	}
	if rec.Errors[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	rec := &Recorder{}
	SetHandler(rec)
	defer SetHandler(nil)

	var called any
	func() {
		defer Recover("test.recover", func(r any) { called = r })
		panic("kaboom")
	}()

	if len(rec.Panics) != 1 {
		t.Fatalf("expected 1 panic, got %d", len(rec.Panics))
	}
	if rec.Panics[0].Op != "test.recover" {
		t.Errorf("Op = %q, want test.recover", rec.Panics[0].Op)
	}
	if rec.Panics[0].StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
	if called != "kaboom" {
		t.Errorf("callback got %v, want kaboom", called)
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&Recorder{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("expected LogHandler after SetHandler(nil), got %T", getHandler())
	}
}

func TestLogHandler_Verbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Out: &buf}
	h.HandleError(&LayoutError{Op: "canvas.Resize", Kind: KindSurface, Element: "ws", Err: ErrNoSurface, StackTrace: "frame"})

	out := buf.String()
	for _, want := range []string{"[floatdock error] canvas.Resize [surface]", "element=ws", "Stack trace:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogHandler_Terse(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandlePanic(&PanicError{Op: "x", Value: 1, StackTrace: "frame"})
	if got, want := buf.String(), "[floatdock panic] x: 1\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
