package render

// Node is the animatable view of a render-tree node.
//
// A Node keeps two property snapshots. The staging snapshot is written
// by the controlling (UI-side) context between frames; the committed
// snapshot is what animators read and write while a frame advances. The
// two sides never share mutable fields: [Node.SyncProperties] is the
// single point where staged state moves across.
type Node struct {
	staging Props
	active  Props
	dirty   Fields
}

// NewNode returns a node with identity properties on both snapshots.
func NewNode() *Node {
	return &Node{
		staging: defaultProps(),
		active:  defaultProps(),
	}
}

// StagingProps returns the staged snapshot for mutation by the
// controlling side. Callers that customize a field should also mark it
// with [Node.MarkFieldDirty] so pending values survive animator attach.
func (n *Node) StagingProps() *Props {
	return &n.staging
}

// Props returns the committed snapshot for reading.
func (n *Node) Props() *Props {
	return &n.active
}

// AnimatorProps returns the committed snapshot for mutation during
// animation advancement. Only the frame-driving pass may use it.
func (n *Node) AnimatorProps() *Props {
	return &n.active
}

// MarkFieldDirty records that the staged value of the given fields has
// been customized since the last commit.
func (n *Node) MarkFieldDirty(fields Fields) {
	n.dirty |= fields
}

// IsFieldDirty reports whether any of the given staged fields carry a
// pending customization.
func (n *Node) IsFieldDirty(fields Fields) bool {
	return n.dirty&fields != 0
}

// DirtyFields returns the set of staged fields customized since the
// last commit.
func (n *Node) DirtyFields() Fields {
	return n.dirty
}

// SyncProperties commits the staged snapshot, copying it over the
// committed one and clearing the dirty bits. The frame driver calls this
// before animators advance on frames where staged state changed;
// animator writes land on the committed snapshot afterwards.
func (n *Node) SyncProperties() {
	n.active = n.staging
	n.dirty = 0
}
