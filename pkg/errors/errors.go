// Package errors provides structured error reporting for the animation
// engine. Non-fatal conditions (implausible timing, clamped start times)
// are reported through a pluggable [Handler]; programmer errors such as
// mutating a started animator panic at the call site instead.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindTiming indicates a suspicious duration, delay, or start time.
	KindTiming
	// KindTarget indicates a problem with an animation target binding.
	KindTarget
	// KindConfig indicates invalid animator configuration.
	KindConfig
	// KindStoryboard indicates a storyboard parse or build failure.
	KindStoryboard
)

func (k Kind) String() string {
	switch k {
	case KindTiming:
		return "timing"
	case KindTarget:
		return "target"
	case KindConfig:
		return "config"
	case KindStoryboard:
		return "storyboard"
	default:
		return "unknown"
	}
}

// AnimError represents a structured error in the animation engine.
type AnimError struct {
	// Op is the operation that failed (e.g., "animator.transitionToRunning").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AnimError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AnimError) Unwrap() error {
	return e.Err
}

// Handler receives errors reported by the animation engine.
type Handler interface {
	// HandleError is called when a non-fatal error is reported.
	HandleError(err *AnimError)
}
