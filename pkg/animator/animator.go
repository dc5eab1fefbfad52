package animator

import (
	"fmt"

	"github.com/go-render/rtanim/pkg/errors"
	"github.com/go-render/rtanim/pkg/interpolate"
	"github.com/go-render/rtanim/pkg/render"
)

const (
	// defaultDurationMs is the duration used when none is configured.
	defaultDurationMs = 300

	// maxPlausibleMs is the threshold above which a duration or start
	// delay is reported as suspicious. The value is still honored.
	maxPlausibleMs = 50000
)

// property is the capability interface over the closed set of target
// kinds. The three implementations are nodePropertyAccess,
// floatValueAccess, and paintAccess.
type property interface {
	getValue(target *render.Node) float64
	setValue(target *render.Node, value float64)
	onAttach(a *Animator, target *render.Node)
	dirtyMask() render.Fields
}

// Animator interpolates a single float property from a start value to a
// final value over a duration, one frame at a time.
//
// An animator lives on two timelines. While dormant it is configured on
// the staging side: setters adjust duration, delay, curve, and start
// value, and [Animator.Start] requests playback. Once started,
// configuration panics. The frame-driving pass then calls
// [Animator.PushStaging] and [Animator.Animate] once per frame each;
// neither blocks, and no animator is advanced concurrently.
type Animator struct {
	finalValue float64
	deltaValue float64
	fromValue  float64

	hasStartValue bool
	curve         interpolate.Curve

	stagingPlayState PlayState
	playState        PlayState

	startTime  int64
	duration   int64
	startDelay int64

	listener FinishListener
	prop     property
}

// newAnimator builds the base state machine around one target binding.
func newAnimator(finalValue float64, prop property) *Animator {
	return &Animator{
		finalValue: finalValue,
		duration:   defaultDurationMs,
		prop:       prop,
	}
}

// checkMutable panics if the animator has already been started. All
// configuration setters fail fast through this guard.
func (a *Animator) checkMutable(op string) {
	if a.stagingPlayState != NotStarted {
		panic("rtanim: " + op + ": animator has already been started")
	}
}

// SetInterpolator replaces the easing curve. The animator owns the
// curve; if none is set by the time the animation starts, it receives
// [interpolate.AccelerateDecelerate].
func (a *Animator) SetInterpolator(curve interpolate.Curve) {
	a.checkMutable("SetInterpolator")
	a.curve = curve
}

// SetStartValue fixes the value the animation starts from. Without an
// explicit start value the animator adopts the target's current
// committed value on the first staging push.
func (a *Animator) SetStartValue(value float64) {
	a.checkMutable("SetStartValue")
	a.doSetStartValue(value)
}

func (a *Animator) doSetStartValue(value float64) {
	a.fromValue = value
	a.deltaValue = a.finalValue - a.fromValue
	a.hasStartValue = true
}

// SetDuration sets the animation duration in milliseconds.
func (a *Animator) SetDuration(durationMs int64) {
	a.checkMutable("SetDuration")
	a.duration = durationMs
}

// SetStartDelay sets the delay in milliseconds between the starting
// frame and the first advancement.
func (a *Animator) SetStartDelay(startDelayMs int64) {
	a.checkMutable("SetStartDelay")
	a.startDelay = startDelayMs
}

// SetListener installs the finish listener. The reference is shared:
// the animator does not keep the listener's owner alive, and a listener
// that has gone away must leave a nil here, which is a silent no-op.
func (a *Animator) SetListener(listener FinishListener) {
	a.listener = listener
}

// Start requests playback. The request is staged; the animator begins
// running on the next staging push observed by the frame driver.
func (a *Animator) Start() {
	if a.stagingPlayState < Running {
		a.stagingPlayState = Running
	}
}

// OnAttach binds the animator to its target, running the variant's
// attachment hook (seeding the start value from pending staged state and
// writing the final value into the staged snapshot for node targets).
func (a *Animator) OnAttach(target *render.Node) {
	a.prop.onAttach(a, target)
}

// PushStaging moves staged state into the committed state. The frame
// driver calls it once per frame before [Animator.Animate]. Repeated
// calls without an intervening start request have no further effect; in
// particular the transition-to-running setup runs exactly once.
func (a *Animator) PushStaging(target *render.Node, info *TreeInfo) {
	if !a.hasStartValue {
		// Animate-from-current: adopt the committed value as the
		// baseline now that the target's state is known.
		a.doSetStartValue(a.prop.getValue(target))
	}
	if a.stagingPlayState > a.playState {
		a.playState = a.stagingPlayState
		if a.playState == Running {
			a.transitionToRunning(info)
		}
	}
}

// transitionToRunning anchors the animation on the frame clock. It runs
// once, on the staging push that first observes the start request.
func (a *Animator) transitionToRunning(info *TreeInfo) {
	if info.FrameTimeMs <= 0 {
		panic(fmt.Sprintf("rtanim: %dms is not a real frame time", info.FrameTimeMs))
	}
	if a.startDelay < 0 || a.startDelay > maxPlausibleMs {
		errors.Warnf("animator.transitionToRunning", errors.KindTiming,
			"strange start delay of %dms", a.startDelay)
	}
	a.startTime = info.FrameTimeMs + a.startDelay
	if a.startTime < 0 {
		errors.Warnf("animator.transitionToRunning", errors.KindTiming,
			"negative start time %dms from frame time %dms and start delay %dms",
			a.startTime, info.FrameTimeMs, a.startDelay)
		// Clamp so that Animate finishes basically instantly.
		a.startTime = 0
	}
	if a.curve == nil {
		a.curve = interpolate.AccelerateDecelerate
	}
	if a.duration < 0 || a.duration > maxPlausibleMs {
		errors.Warnf("animator.transitionToRunning", errors.KindTiming,
			"strange duration of %dms", a.duration)
	}
}

// Animate advances the animation to the frame's timestamp, writing the
// interpolated value into the target's committed snapshot. It returns
// true only on the call where the animation completes; that same call
// delivers the finish notification.
func (a *Animator) Animate(target *render.Node, info *TreeInfo) bool {
	if a.playState < Running {
		return false
	}
	if a.playState == Finished {
		// Completed on an earlier call. The owner should have dropped
		// this animator; keep the finish notification one-shot anyway.
		return false
	}

	if a.startTime > info.FrameTimeMs {
		// Start delay has not elapsed yet.
		info.Out.HasAnimations = true
		return false
	}

	fraction := 1.0
	if a.playState == Running && a.duration > 0 {
		fraction = float64(info.FrameTimeMs-a.startTime) / float64(a.duration)
	}
	if fraction >= 1.0 {
		fraction = 1.0
		a.playState = Finished
	}

	fraction = a.curve(fraction)
	a.prop.setValue(target, a.fromValue+a.deltaValue*fraction)

	if a.playState == Finished {
		a.callOnFinishedListener(info)
		return true
	}

	info.Out.HasAnimations = true
	return false
}

// callOnFinishedListener delivers the one-shot finish notification,
// through the frame's hook when one is installed.
func (a *Animator) callOnFinishedListener(info *TreeInfo) {
	if a.listener == nil {
		return
	}
	if info.AnimationHook != nil {
		info.AnimationHook.CallOnFinished(a, a.listener)
		return
	}
	a.listener.OnAnimationFinished(a)
}

// FinalValue returns the value the animation ends at.
func (a *Animator) FinalValue() float64 {
	return a.finalValue
}

// PlayState returns the committed lifecycle state as observed by the
// frame-driving pass.
func (a *Animator) PlayState() PlayState {
	return a.playState
}

// IsFinished reports whether the animation has completed.
func (a *Animator) IsFinished() bool {
	return a.playState == Finished
}

// DirtyMask returns the dirty bits of the node fields this animator
// writes, or zero for paint and primitive targets.
func (a *Animator) DirtyMask() render.Fields {
	return a.prop.dirtyMask()
}
