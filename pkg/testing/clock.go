package testing

import (
	"sync"

	"github.com/go-render/rtanim/pkg/animator"
)

// FrameClock produces monotonic frame timestamps for deterministic
// animation tests and demos. All methods are safe for concurrent use.
type FrameClock struct {
	mu     sync.Mutex
	nowMs  int64
	stepMs int64
}

// NewFrameClock returns a clock whose first frame lands at startMs and
// advances stepMs per frame.
func NewFrameClock(startMs, stepMs int64) *FrameClock {
	return &FrameClock{nowMs: startMs - stepMs, stepMs: stepMs}
}

// NowMs returns the most recent frame timestamp.
func (c *FrameClock) NowMs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowMs
}

// NextFrame advances the clock one step and returns a fresh TreeInfo
// stamped with the new frame time.
func (c *FrameClock) NextFrame() *animator.TreeInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowMs += c.stepMs
	return &animator.TreeInfo{FrameTimeMs: c.nowMs}
}

// FrameAt returns a TreeInfo for an exact timestamp without moving the
// clock.
func (c *FrameClock) FrameAt(ms int64) *animator.TreeInfo {
	return &animator.TreeInfo{FrameTimeMs: ms}
}
