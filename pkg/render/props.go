// Package render models the animatable surface of a render-tree node:
// two [Props] snapshots per [Node] (a mutable staging copy written by the
// controlling side and a committed copy consumed during per-frame
// animation advancement) plus per-field dirty bits over the staged copy.
//
// The package deliberately stops at properties. Layout, painting, and
// the tree structure itself belong to the surrounding renderer.
package render

// Fields is a bitmask over the animatable properties of a node. Each bit
// marks one staged field as customized since the last commit.
type Fields uint32

const (
	FieldTranslationX Fields = 1 << iota
	FieldTranslationY
	FieldTranslationZ
	FieldScaleX
	FieldScaleY
	FieldRotation
	FieldRotationX
	FieldRotationY
	FieldX
	FieldY
	FieldZ
	FieldAlpha
)

// Props is one snapshot of a node's animatable properties.
type Props struct {
	TranslationX float64
	TranslationY float64
	TranslationZ float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	RotationX    float64
	RotationY    float64
	X            float64
	Y            float64
	Z            float64
	Alpha        float64
}

// defaultProps returns the identity transform: unit scale, full opacity,
// everything else zero.
func defaultProps() Props {
	return Props{ScaleX: 1, ScaleY: 1, Alpha: 1}
}
