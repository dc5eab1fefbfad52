package graphics

// FloatValue is a free-floating animatable float, detached from any
// render-node geometry. Drawing code reads Value each frame; a primitive
// animator mutates it during advancement.
type FloatValue struct {
	Value float64
}

// NewFloatValue returns a FloatValue holding the given initial value.
func NewFloatValue(v float64) *FloatValue {
	return &FloatValue{Value: v}
}
