// Package storyboard compiles declarative YAML animation descriptions
// into configured animators, the way a renderer loads animation
// resources instead of constructing them in code.
//
// A storyboard names a set of animations over one node, optionally a
// paint and a primitive value:
//
//	paint:
//	  color: dodgerblue
//	  stroke_width: 2
//	value: 0
//	animations:
//	  - property: translation_x
//	    to: 120
//	    duration_ms: 300
//	    curve: ease_in_out
//	  - property: paint_alpha
//	    from: 255
//	    to: 0
//	    delay_ms: 100
package storyboard

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-render/rtanim/pkg/animator"
	"github.com/go-render/rtanim/pkg/graphics"
	"github.com/go-render/rtanim/pkg/interpolate"
)

// Storyboard is the parsed form of a storyboard document.
type Storyboard struct {
	// Paint configures the paint target for stroke_width/paint_alpha
	// animations. Optional.
	Paint *PaintSpec `yaml:"paint,omitempty"`
	// Value is the initial value of the primitive target for "value"
	// animations. Optional.
	Value *float64 `yaml:"value,omitempty"`
	// Animations lists the animators to build, in order.
	Animations []AnimationSpec `yaml:"animations"`
}

// PaintSpec describes the initial paint state.
type PaintSpec struct {
	// Color is a colornames entry ("dodgerblue") or hex literal
	// ("#RRGGBB" or "#AARRGGBB"). Defaults to opaque black.
	Color string `yaml:"color,omitempty"`
	// StrokeWidth is the initial stroke width.
	StrokeWidth float64 `yaml:"stroke_width,omitempty"`
}

// AnimationSpec describes one animator.
type AnimationSpec struct {
	// Property is a geometry channel name (translation_x, scale_y,
	// rotation, x, alpha, ...), "stroke_width", "paint_alpha", or
	// "value".
	Property string `yaml:"property"`
	// From is the explicit start value. Omitted means animate from the
	// target's current value.
	From *float64 `yaml:"from,omitempty"`
	// To is the final value.
	To float64 `yaml:"to"`
	// DurationMs is the duration in milliseconds (default 300).
	DurationMs int64 `yaml:"duration_ms,omitempty"`
	// DelayMs is the start delay in milliseconds.
	DelayMs int64 `yaml:"delay_ms,omitempty"`
	// Curve names the easing curve (default accelerate_decelerate).
	Curve string `yaml:"curve,omitempty"`
}

// Built is a storyboard bound to its targets.
type Built struct {
	// Animators holds the configured animators, in document order. None
	// of them has been started.
	Animators []*animator.Animator
	// Paint is the paint target, nil when the storyboard has none.
	Paint *graphics.Paint
	// Value is the primitive target, nil when the storyboard has none.
	Value *graphics.FloatValue
}

// Load reads and parses a storyboard file.
func Load(path string) (*Storyboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read storyboard: %w", err)
	}
	return Parse(data)
}

// Parse parses a storyboard document.
func Parse(data []byte) (*Storyboard, error) {
	var sb Storyboard
	if err := yaml.Unmarshal(data, &sb); err != nil {
		return nil, fmt.Errorf("failed to parse storyboard: %w", err)
	}
	if len(sb.Animations) == 0 {
		return nil, fmt.Errorf("storyboard has no animations")
	}
	return &sb, nil
}

// nodeProperties maps storyboard property names to geometry channels.
var nodeProperties = map[string]animator.NodeProperty{
	"translation_x": animator.TranslationX,
	"translation_y": animator.TranslationY,
	"translation_z": animator.TranslationZ,
	"scale_x":       animator.ScaleX,
	"scale_y":       animator.ScaleY,
	"rotation":      animator.Rotation,
	"rotation_x":    animator.RotationX,
	"rotation_y":    animator.RotationY,
	"x":             animator.PositionX,
	"y":             animator.PositionY,
	"z":             animator.PositionZ,
	"alpha":         animator.Alpha,
}

// curves maps storyboard curve names to easing curves.
var curves = map[string]interpolate.Curve{
	"linear":                interpolate.Linear,
	"accelerate_decelerate": interpolate.AccelerateDecelerate,
	"ease":                  interpolate.Ease,
	"ease_in":               interpolate.EaseIn,
	"ease_out":              interpolate.EaseOut,
	"ease_in_out":           interpolate.EaseInOut,
}

// Build compiles the storyboard into configured, unstarted animators.
// Node-property animators bind to their node later, at attach time;
// paint and value animators bind to the storyboard's own targets here.
// Unknown property, curve, or color names are errors: storyboards are
// input data, not code.
func (s *Storyboard) Build() (*Built, error) {
	built := &Built{}

	if s.Paint != nil {
		paint := graphics.NewPaint()
		if s.Paint.Color != "" {
			c, err := parseColor(s.Paint.Color)
			if err != nil {
				return nil, err
			}
			paint.Color = c
		}
		paint.StrokeWidth = s.Paint.StrokeWidth
		built.Paint = paint
	}
	if s.Value != nil {
		built.Value = graphics.NewFloatValue(*s.Value)
	}

	for i, spec := range s.Animations {
		a, err := s.buildAnimator(built, spec)
		if err != nil {
			return nil, fmt.Errorf("animation %d (%s): %w", i, spec.Property, err)
		}
		if spec.From != nil {
			a.SetStartValue(*spec.From)
		}
		if spec.DurationMs != 0 {
			a.SetDuration(spec.DurationMs)
		}
		if spec.DelayMs != 0 {
			a.SetStartDelay(spec.DelayMs)
		}
		if spec.Curve != "" {
			curve, ok := curves[spec.Curve]
			if !ok {
				return nil, fmt.Errorf("animation %d (%s): unknown curve %q", i, spec.Property, spec.Curve)
			}
			a.SetInterpolator(curve)
		}
		built.Animators = append(built.Animators, a)
	}

	return built, nil
}

// buildAnimator resolves one property name to a target binding.
func (s *Storyboard) buildAnimator(built *Built, spec AnimationSpec) (*animator.Animator, error) {
	if prop, ok := nodeProperties[spec.Property]; ok {
		return animator.NewNodeAnimator(prop, spec.To), nil
	}
	switch spec.Property {
	case "stroke_width":
		if built.Paint == nil {
			return nil, fmt.Errorf("storyboard has no paint")
		}
		return animator.NewPaintAnimator(built.Paint, animator.PaintStrokeWidth, spec.To), nil
	case "paint_alpha":
		if built.Paint == nil {
			return nil, fmt.Errorf("storyboard has no paint")
		}
		return animator.NewPaintAnimator(built.Paint, animator.PaintAlpha, spec.To), nil
	case "value":
		if built.Value == nil {
			return nil, fmt.Errorf("storyboard has no value")
		}
		return animator.NewFloatValueAnimator(built.Value, spec.To), nil
	}
	return nil, fmt.Errorf("unknown property %q", spec.Property)
}

// parseColor resolves a color name or hex literal.
func parseColor(s string) (graphics.Color, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("bad color literal %q", s)
		}
		switch len(hex) {
		case 6:
			return graphics.Color(v) | 0xFF000000, nil
		case 8:
			return graphics.Color(v), nil
		}
		return 0, fmt.Errorf("bad color literal %q: want #RRGGBB or #AARRGGBB", s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return graphics.RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}
