package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke

	// PaintStyleFillAndStroke fills and then strokes the outline.
	PaintStyleFillAndStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	case PaintStyleFillAndStroke:
		return "fill_and_stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint carries the drawing parameters an animator can drive: the color
// (whose alpha channel is animatable) and the stroke width.
//
// A Paint handed to a paint-field animator is read and written on the
// advancing pass; client code must not mutate it concurrently.
type Paint struct {
	Color       Color
	StrokeWidth float64
	Style       PaintStyle
	AntiAlias   bool
}

// NewPaint returns an opaque black fill paint with anti-aliasing on.
func NewPaint() *Paint {
	return &Paint{
		Color:     ColorBlack,
		Style:     PaintStyleFill,
		AntiAlias: true,
	}
}
