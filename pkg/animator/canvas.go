package animator

import (
	"fmt"
	"math"

	"github.com/go-render/rtanim/pkg/graphics"
	"github.com/go-render/rtanim/pkg/render"
)

// floatValueAccess drives a detached float primitive. The node argument
// is ignored: the binding carries its own target.
type floatValueAccess struct {
	value *graphics.FloatValue
}

func (f floatValueAccess) getValue(*render.Node) float64 {
	return f.value.Value
}

func (f floatValueAccess) setValue(_ *render.Node, v float64) {
	f.value.Value = v
}

func (f floatValueAccess) onAttach(*Animator, *render.Node) {}

func (f floatValueAccess) dirtyMask() render.Fields { return 0 }

// NewFloatValueAnimator returns an animator driving a detached float
// value toward finalValue.
func NewFloatValueAnimator(value *graphics.FloatValue, finalValue float64) *Animator {
	return newAnimator(finalValue, floatValueAccess{value: value})
}

// PaintField names an animatable field on a paint.
type PaintField int

const (
	// PaintStrokeWidth animates the paint's stroke width.
	PaintStrokeWidth PaintField = iota
	// PaintAlpha animates the alpha channel of the paint's color.
	PaintAlpha
)

// String returns a human-readable representation of the paint field.
func (f PaintField) String() string {
	switch f {
	case PaintStrokeWidth:
		return "stroke_width"
	case PaintAlpha:
		return "alpha"
	default:
		return fmt.Sprintf("PaintField(%d)", int(f))
	}
}

// paintAccess drives one field of a paint. Like floatValueAccess it
// ignores the node argument.
type paintAccess struct {
	paint *graphics.Paint
	field PaintField
}

func (p paintAccess) getValue(*render.Node) float64 {
	switch p.field {
	case PaintStrokeWidth:
		return p.paint.StrokeWidth
	case PaintAlpha:
		return float64(p.paint.Color.Alpha8())
	}
	panic(fmt.Sprintf("rtanim: unknown paint field %d", int(p.field)))
}

func (p paintAccess) setValue(_ *render.Node, v float64) {
	switch p.field {
	case PaintStrokeWidth:
		p.paint.StrokeWidth = v
		return
	case PaintAlpha:
		p.paint.Color = p.paint.Color.WithAlpha8(toUint8(v))
		return
	}
	panic(fmt.Sprintf("rtanim: unknown paint field %d", int(p.field)))
}

func (p paintAccess) onAttach(*Animator, *render.Node) {}

func (p paintAccess) dirtyMask() render.Fields { return 0 }

// toUint8 converts an interpolated alpha to its 8-bit channel value,
// rounding then clamping to [0, 255].
func toUint8(v float64) uint8 {
	c := int(math.Round(v))
	if c < 0 {
		return 0
	}
	if c > 255 {
		return 255
	}
	return uint8(c)
}

// NewPaintAnimator returns an animator driving the given paint field
// toward finalValue.
func NewPaintAnimator(paint *graphics.Paint, field PaintField, finalValue float64) *Animator {
	return newAnimator(finalValue, paintAccess{paint: paint, field: field})
}
