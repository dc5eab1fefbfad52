// Package testing provides deterministic helpers for exercising the
// animation engine: a controllable frame clock and recording
// implementations of the finish-listener interfaces.
//
// Import it under an alias to avoid shadowing the standard library:
//
//	rttest "github.com/go-render/rtanim/pkg/testing"
package testing
