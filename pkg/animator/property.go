package animator

import (
	"fmt"

	"github.com/go-render/rtanim/pkg/render"
)

// NodeProperty names one animatable geometry channel on a render node.
type NodeProperty int

const (
	TranslationX NodeProperty = iota
	TranslationY
	TranslationZ
	ScaleX
	ScaleY
	Rotation
	RotationX
	RotationY
	PositionX
	PositionY
	PositionZ
	Alpha

	numNodeProperties
)

// String returns a human-readable representation of the node property.
func (p NodeProperty) String() string {
	switch p {
	case TranslationX:
		return "translation_x"
	case TranslationY:
		return "translation_y"
	case TranslationZ:
		return "translation_z"
	case ScaleX:
		return "scale_x"
	case ScaleY:
		return "scale_y"
	case Rotation:
		return "rotation"
	case RotationX:
		return "rotation_x"
	case RotationY:
		return "rotation_y"
	case PositionX:
		return "x"
	case PositionY:
		return "y"
	case PositionZ:
		return "z"
	case Alpha:
		return "alpha"
	default:
		return fmt.Sprintf("NodeProperty(%d)", int(p))
	}
}

// propertyAccessors pairs a channel's dirty bit with its getter and
// setter over a property snapshot.
type propertyAccessors struct {
	dirty render.Fields
	get   func(p *render.Props) float64
	set   func(p *render.Props, v float64)
}

// propertyLUT maps each NodeProperty to its own accessor pair.
var propertyLUT = [numNodeProperties]propertyAccessors{
	TranslationX: {render.FieldTranslationX,
		func(p *render.Props) float64 { return p.TranslationX },
		func(p *render.Props, v float64) { p.TranslationX = v }},
	TranslationY: {render.FieldTranslationY,
		func(p *render.Props) float64 { return p.TranslationY },
		func(p *render.Props, v float64) { p.TranslationY = v }},
	TranslationZ: {render.FieldTranslationZ,
		func(p *render.Props) float64 { return p.TranslationZ },
		func(p *render.Props, v float64) { p.TranslationZ = v }},
	ScaleX: {render.FieldScaleX,
		func(p *render.Props) float64 { return p.ScaleX },
		func(p *render.Props, v float64) { p.ScaleX = v }},
	ScaleY: {render.FieldScaleY,
		func(p *render.Props) float64 { return p.ScaleY },
		func(p *render.Props, v float64) { p.ScaleY = v }},
	Rotation: {render.FieldRotation,
		func(p *render.Props) float64 { return p.Rotation },
		func(p *render.Props, v float64) { p.Rotation = v }},
	RotationX: {render.FieldRotationX,
		func(p *render.Props) float64 { return p.RotationX },
		func(p *render.Props, v float64) { p.RotationX = v }},
	RotationY: {render.FieldRotationY,
		func(p *render.Props) float64 { return p.RotationY },
		func(p *render.Props, v float64) { p.RotationY = v }},
	PositionX: {render.FieldX,
		func(p *render.Props) float64 { return p.X },
		func(p *render.Props, v float64) { p.X = v }},
	PositionY: {render.FieldY,
		func(p *render.Props) float64 { return p.Y },
		func(p *render.Props, v float64) { p.Y = v }},
	PositionZ: {render.FieldZ,
		func(p *render.Props) float64 { return p.Z },
		func(p *render.Props, v float64) { p.Z = v }},
	Alpha: {render.FieldAlpha,
		func(p *render.Props) float64 { return p.Alpha },
		func(p *render.Props, v float64) { p.Alpha = v }},
}

// nodePropertyAccess drives one geometry channel on a render node.
type nodePropertyAccess struct {
	acc *propertyAccessors
}

func (n nodePropertyAccess) getValue(target *render.Node) float64 {
	return n.acc.get(target.Props())
}

func (n nodePropertyAccess) setValue(target *render.Node, value float64) {
	n.acc.set(target.AnimatorProps(), value)
}

// onAttach seeds the start value from the staged snapshot when the
// channel already carries a pending customization (so that value is not
// discarded), then writes the final value into the staged snapshot so it
// reflects the animation's end state even before playback begins.
func (n nodePropertyAccess) onAttach(a *Animator, target *render.Node) {
	if !a.hasStartValue && target.IsFieldDirty(n.acc.dirty) {
		a.doSetStartValue(n.acc.get(target.StagingProps()))
	}
	n.acc.set(target.StagingProps(), a.finalValue)
	target.MarkFieldDirty(n.acc.dirty)
}

func (n nodePropertyAccess) dirtyMask() render.Fields {
	return n.acc.dirty
}

// NewNodeAnimator returns an animator driving the given geometry channel
// toward finalValue. It panics on an out-of-range property.
func NewNodeAnimator(property NodeProperty, finalValue float64) *Animator {
	if property < 0 || property >= numNodeProperties {
		panic(fmt.Sprintf("rtanim: unknown node property %d", int(property)))
	}
	return newAnimator(finalValue, nodePropertyAccess{acc: &propertyLUT[property]})
}
