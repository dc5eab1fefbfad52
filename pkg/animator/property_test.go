package animator_test

import (
	"testing"

	"github.com/go-render/rtanim/pkg/animator"
	"github.com/go-render/rtanim/pkg/render"
)

// geometryChannels pairs every node property with its dirty bit and an
// extractor, so the accessor table can be checked channel by channel.
var geometryChannels = []struct {
	prop  animator.NodeProperty
	field render.Fields
	read  func(p *render.Props) float64
}{
	{animator.TranslationX, render.FieldTranslationX, func(p *render.Props) float64 { return p.TranslationX }},
	{animator.TranslationY, render.FieldTranslationY, func(p *render.Props) float64 { return p.TranslationY }},
	{animator.TranslationZ, render.FieldTranslationZ, func(p *render.Props) float64 { return p.TranslationZ }},
	{animator.ScaleX, render.FieldScaleX, func(p *render.Props) float64 { return p.ScaleX }},
	{animator.ScaleY, render.FieldScaleY, func(p *render.Props) float64 { return p.ScaleY }},
	{animator.Rotation, render.FieldRotation, func(p *render.Props) float64 { return p.Rotation }},
	{animator.RotationX, render.FieldRotationX, func(p *render.Props) float64 { return p.RotationX }},
	{animator.RotationY, render.FieldRotationY, func(p *render.Props) float64 { return p.RotationY }},
	{animator.PositionX, render.FieldX, func(p *render.Props) float64 { return p.X }},
	{animator.PositionY, render.FieldY, func(p *render.Props) float64 { return p.Y }},
	{animator.PositionZ, render.FieldZ, func(p *render.Props) float64 { return p.Z }},
	{animator.Alpha, render.FieldAlpha, func(p *render.Props) float64 { return p.Alpha }},
}

// Every channel must drive its own field and nothing else. This guards
// against accessor table entries pointing at the wrong property.
func TestEachChannelDrivesItsOwnField(t *testing.T) {
	for _, ch := range geometryChannels {
		t.Run(ch.prop.String(), func(t *testing.T) {
			node := render.NewNode()
			before := *node.Props()

			a := animator.NewNodeAnimator(ch.prop, 42)
			a.SetDuration(0)
			a.Start()
			a.OnAttach(node)

			if got := a.DirtyMask(); got != ch.field {
				t.Fatalf("dirty mask = %v, want %v", got, ch.field)
			}

			info := frame(16)
			a.PushStaging(node, info)
			if !a.Animate(node, info) {
				t.Fatal("duration-0 animator should finish")
			}

			after := node.Props()
			if got := ch.read(after); got != 42 {
				t.Fatalf("%v = %v, want 42", ch.prop, got)
			}

			// Restore the driven field and compare: nothing else moved.
			restored := *after
			writeChannel(&restored, ch.prop, ch.read(&before))
			if restored != before {
				t.Fatalf("animating %v touched other fields: %+v", ch.prop, after)
			}
		})
	}
}

func writeChannel(p *render.Props, prop animator.NodeProperty, v float64) {
	switch prop {
	case animator.TranslationX:
		p.TranslationX = v
	case animator.TranslationY:
		p.TranslationY = v
	case animator.TranslationZ:
		p.TranslationZ = v
	case animator.ScaleX:
		p.ScaleX = v
	case animator.ScaleY:
		p.ScaleY = v
	case animator.Rotation:
		p.Rotation = v
	case animator.RotationX:
		p.RotationX = v
	case animator.RotationY:
		p.RotationY = v
	case animator.PositionX:
		p.X = v
	case animator.PositionY:
		p.Y = v
	case animator.PositionZ:
		p.Z = v
	case animator.Alpha:
		p.Alpha = v
	}
}

func TestAttachWritesStagedFinalValue(t *testing.T) {
	node := render.NewNode()
	a := animator.NewNodeAnimator(animator.TranslationY, 77)
	a.OnAttach(node)

	if got := node.StagingProps().TranslationY; got != 77 {
		t.Fatalf("staged translation-y = %v after attach, want 77", got)
	}
	if !node.IsFieldDirty(render.FieldTranslationY) {
		t.Fatal("attach must mark the staged field dirty")
	}
	if got := node.Props().TranslationY; got != 0 {
		t.Fatalf("attach leaked into the committed snapshot: %v", got)
	}
}

func TestAttachSeedsStartFromPendingStagedValue(t *testing.T) {
	node := render.NewNode()
	// A staged customization that has not been committed yet.
	node.StagingProps().TranslationX = 7
	node.MarkFieldDirty(render.FieldTranslationX)

	a := animator.NewNodeAnimator(animator.TranslationX, 10)
	a.SetDuration(100)
	a.Start()
	a.OnAttach(node)

	info := frame(20)
	a.PushStaging(node, info)
	a.Animate(node, info)

	// Start value came from the staged 7, not the committed 0.
	if got := node.Props().TranslationX; got != 7 {
		t.Fatalf("value at fraction 0 = %v, want staged seed 7", got)
	}
}

func TestAttachPrefersExplicitStartValue(t *testing.T) {
	node := render.NewNode()
	node.StagingProps().TranslationX = 7
	node.MarkFieldDirty(render.FieldTranslationX)

	a := animator.NewNodeAnimator(animator.TranslationX, 10)
	a.SetStartValue(4)
	a.SetDuration(100)
	a.Start()
	a.OnAttach(node)

	info := frame(20)
	a.PushStaging(node, info)
	a.Animate(node, info)

	if got := node.Props().TranslationX; got != 4 {
		t.Fatalf("value at fraction 0 = %v, want explicit start 4", got)
	}
}

func TestUnknownNodePropertyPanics(t *testing.T) {
	mustPanic(t, func() { animator.NewNodeAnimator(animator.NodeProperty(-1), 1) })
	mustPanic(t, func() { animator.NewNodeAnimator(animator.NodeProperty(12), 1) })
}

func TestNodePropertyString(t *testing.T) {
	cases := map[animator.NodeProperty]string{
		animator.TranslationZ:      "translation_z",
		animator.PositionY:         "y",
		animator.Alpha:             "alpha",
		animator.NodeProperty(100): "NodeProperty(100)",
	}
	for prop, want := range cases {
		if got := prop.String(); got != want {
			t.Errorf("NodeProperty(%d).String() = %q, want %q", int(prop), got, want)
		}
	}
}
