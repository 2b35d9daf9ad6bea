// Package errors provides structured error handling for the press library
// and its embedders.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration load or validation error.
	KindConfig
	// KindScene indicates a failure building an element tree from config.
	KindScene
	// KindWatcher indicates a file-watcher error.
	KindWatcher
	// KindSnapshot indicates a diagnostic snapshot export error.
	KindSnapshot
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindScene:
		return "scene"
	case KindWatcher:
		return "watcher"
	case KindSnapshot:
		return "snapshot"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PressError represents a structured error in the press library.
type PressError struct {
	// Op is the operation that failed (e.g., "config.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PressError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PressError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "scene.Apply").
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

// ErrorHandler receives errors reported by the press library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *PressError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
