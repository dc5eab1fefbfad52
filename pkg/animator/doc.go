// Package animator drives interpolated float property mutation on
// render-tree nodes, paints, and detached primitives, synchronized once
// per frame by an external frame-driving pass.
//
// # Core Components
//
//   - [Animator]: the per-property state machine. It owns a final value,
//     an optional explicit start value, a duration, a start delay, and an
//     easing curve, and walks NotStarted -> Running -> Finished as the
//     frame clock advances.
//
//   - Target variants: [NewNodeAnimator] binds a geometry channel on a
//     render node, [NewFloatValueAnimator] binds a detached float, and
//     [NewPaintAnimator] binds a stroke-width or alpha field on a paint.
//
//   - [TreeInfo]: the per-frame context. It carries the frame timestamp
//     in and the "animations still in flight" flag out, plus an optional
//     [FinishHook] that redirects completion callbacks to another
//     context.
//
//   - [Manager]: the per-node animator set, advancing every attached
//     animator once per frame and dropping the ones that finish.
//
// # Two Timelines
//
// Configuration happens on the staging timeline: a client sets up an
// animator while it is dormant and calls [Animator.Start]. Once started,
// configuration is frozen. The frame-driving pass then owns the
// animator: [Animator.PushStaging] promotes the staged start request and
// anchors the start time on the first running frame, and
// [Animator.Animate] computes the eased fraction and writes the
// interpolated value into the target's committed snapshot. The finish
// listener fires exactly once, from the Animate call that reaches
// fraction 1.0.
//
// # Basic Usage
//
//	node := render.NewNode()
//	anim := animator.NewNodeAnimator(animator.TranslationX, 120)
//	anim.SetDuration(300)
//	anim.Start()
//	anim.OnAttach(node)
//
//	// Each frame, on the driving pass:
//	info := &animator.TreeInfo{FrameTimeMs: frameTime}
//	anim.PushStaging(node, info)
//	finished := anim.Animate(node, info)
package animator
