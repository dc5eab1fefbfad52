package animator

import "github.com/go-render/rtanim/pkg/render"

// Manager owns the animators attached to a single render node.
//
// Animators attach on the staging timeline and are committed into the
// advancing set by [Manager.PushStaging], mirroring the two-snapshot
// model of the node itself. [Manager.Animate] advances the whole set and
// drops animators as they finish; a finished animator is never advanced
// again.
type Manager struct {
	target    *render.Node
	staged    []*Animator
	animators []*Animator
}

// NewManager returns a manager for the given node.
func NewManager(target *render.Node) *Manager {
	return &Manager{target: target}
}

// Attach stages an animator onto the node, running its attachment hook
// immediately so the staged snapshot reflects the animation's end state.
// The animator joins the advancing set on the next staging push.
func (m *Manager) Attach(a *Animator) {
	a.OnAttach(m.target)
	m.staged = append(m.staged, a)
}

// PushStaging commits newly attached animators and pushes staged state
// on every animator. The frame driver calls it once per frame, before
// [Manager.Animate].
func (m *Manager) PushStaging(info *TreeInfo) {
	if len(m.staged) > 0 {
		m.animators = append(m.animators, m.staged...)
		m.staged = nil
	}
	for _, a := range m.animators {
		a.PushStaging(m.target, info)
	}
}

// Animate advances every committed animator to the frame's timestamp,
// removing the ones that finish. It returns the union of the node dirty
// bits touched this frame so the driver knows which channels changed.
func (m *Manager) Animate(info *TreeInfo) render.Fields {
	var dirty render.Fields
	kept := m.animators[:0]
	for _, a := range m.animators {
		dirty |= a.DirtyMask()
		if !a.Animate(m.target, info) {
			kept = append(kept, a)
		}
	}
	// Clear trailing slots so dropped animators do not linger.
	for i := len(kept); i < len(m.animators); i++ {
		m.animators[i] = nil
	}
	m.animators = kept
	return dirty
}

// HasAnimators reports whether any animators are attached or advancing.
func (m *Manager) HasAnimators() bool {
	return len(m.staged) > 0 || len(m.animators) > 0
}
