// Package interpolate provides easing curves for the animation engine.
//
// A [Curve] maps normalized animation progress t in [0, 1] to an eased
// fraction. Animators apply a curve to their raw time fraction before
// writing the interpolated value, so a curve controls the feel of the
// motion without changing its endpoints.
//
// Standard curves: [Linear], [AccelerateDecelerate], [Ease], [EaseIn],
// [EaseOut], [EaseInOut]. Use [CubicBezier] to build custom curves
// matching CSS cubic-bezier().
package interpolate

import "math"

// Curve transforms linear progress into eased progress.
// A curve must return 0 for t=0 and 1 for t=1; between the endpoints it
// may overshoot [0, 1] (spring-like curves do).
type Curve func(t float64) float64

// Linear returns progress unchanged (no easing).
func Linear(t float64) float64 {
	return t
}

// AccelerateDecelerate starts slowly, speeds up through the middle, and
// slows down again at the end using a cosine ramp. It is the default
// curve assigned to animators that start without one.
func AccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// Ease is a general-purpose cubic bezier curve. Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates. Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
// Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// CubicBezier returns a cubic-bezier easing curve matching CSS
// cubic-bezier(). The parameters are the two control points (x1,y1) and
// (x2,y2); the curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most inputs.
		for i := 0; i < 8; i++ {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleBezier(y1, y2, clampUnit(u))
			}
			dx := sampleBezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback guarantees a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleBezier(y1, y2, u)
	}
}

func sampleBezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleBezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
