// Package errors provides structured error handling for the layout engine.
//
// Geometry problems (detached elements, impossible placements, a drawing
// surface that does not exist yet) are absorbed where they happen and
// reported through the global handler. Only configuration mistakes, such as
// an unknown dock side, are returned to callers.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Sentinel errors callers can test with errors.Is.
var (
	// ErrInvalidSide is returned when a dock side string is not one of
	// top, bottom, left or right.
	ErrInvalidSide = stderrors.New("invalid dock side")
	// ErrNoSurface is returned when a drawing surface has not been created.
	ErrNoSurface = stderrors.New("drawing surface not created")
	// ErrDetached marks an element that is not part of the document.
	ErrDetached = stderrors.New("element not attached")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates invalid caller configuration.
	KindConfig
	// KindMeasure indicates a failure while reading natural size.
	KindMeasure
	// KindPlacement indicates a floating placement that could not be honored.
	KindPlacement
	// KindReflow indicates a failure inside a reflow pass.
	KindReflow
	// KindSurface indicates a drawing surface failure.
	KindSurface
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMeasure:
		return "measure"
	case KindPlacement:
		return "placement"
	case KindReflow:
		return "reflow"
	case KindSurface:
		return "surface"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// LayoutError represents a structured error raised by the layout engine.
type LayoutError struct {
	// Op is the operation that failed (e.g., "dock.Register").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Element is the id of the element involved, if any.
	Element string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "reflow.run").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Config wraps err as a configuration error for op.
func Config(op, element string, err error) *LayoutError {
	return &LayoutError{Op: op, Kind: KindConfig, Element: element, Err: err, Timestamp: time.Now()}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// ErrorHandler receives errors reported by the layout engine.
type ErrorHandler interface {
	// HandleError is called when an error is absorbed.
	HandleError(err *LayoutError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
