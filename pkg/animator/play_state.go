package animator

import "fmt"

// PlayState represents the lifecycle state of an animator.
//
// States are ordered and only ever move forward:
//
//	NotStarted ──► Running ──► Finished
//
// An animator never returns to an earlier state; a dormant animator with
// a pending start request holds Running in its staging state until the
// next staging push promotes it.
type PlayState int

const (
	// NotStarted means the animator is dormant and still configurable.
	NotStarted PlayState = iota
	// Running means the animator is advancing (or waiting out its start delay).
	Running
	// Finished means the animator has completed and notified its listener.
	Finished
)

// String returns a human-readable representation of the play state.
func (s PlayState) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("PlayState(%d)", int(s))
	}
}
