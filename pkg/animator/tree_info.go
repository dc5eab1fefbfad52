package animator

// TreeInfo is the per-frame context handed to the animator engine by the
// frame-driving render pass. One TreeInfo serves every animator advanced
// during a frame; the output flag accumulates across all of them.
type TreeInfo struct {
	// FrameTimeMs is the frame's timestamp on a monotonic millisecond
	// clock. It must be positive on any frame where an animator
	// transitions to Running.
	FrameTimeMs int64

	// AnimationHook, when non-nil, receives finish notifications instead
	// of the listener being invoked directly. It is the single point of
	// cross-thread handoff in the engine.
	AnimationHook FinishHook

	// Out carries results back to the driving pass.
	Out TreeOutput
}

// TreeOutput is the per-frame output of the animation pass.
type TreeOutput struct {
	// HasAnimations is set when any advanced animator is still in
	// flight, telling the driver to schedule another frame.
	HasAnimations bool
}

// FinishListener is notified exactly once when an animator completes.
// The animator holds the listener without keeping its owner alive; a nil
// listener is a no-op.
type FinishListener interface {
	OnAnimationFinished(a *Animator)
}

// FinishHook redirects finish notifications to another execution
// context. Delivery is fire-and-forget: the hook takes ownership of the
// callback and the engine does not wait for it to run.
type FinishHook interface {
	CallOnFinished(a *Animator, listener FinishListener)
}

// FinishFunc adapts a plain function to the FinishListener interface.
type FinishFunc func(a *Animator)

// OnAnimationFinished calls f(a).
func (f FinishFunc) OnAnimationFinished(a *Animator) {
	f(a)
}
