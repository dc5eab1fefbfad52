package testing

import "github.com/go-render/rtanim/pkg/animator"

// FinishRecorder is a FinishListener that counts notifications.
type FinishRecorder struct {
	// Finished holds every animator that reported completion, in order.
	Finished []*animator.Animator
}

// OnAnimationFinished records the completed animator.
func (r *FinishRecorder) OnAnimationFinished(a *animator.Animator) {
	r.Finished = append(r.Finished, a)
}

// Count returns how many finish notifications were delivered.
func (r *FinishRecorder) Count() int {
	return len(r.Finished)
}

// QueueHook is a FinishHook that defers notifications until Flush,
// modeling delivery on another execution context.
type QueueHook struct {
	queue []func()
}

// CallOnFinished enqueues the notification instead of delivering it.
func (h *QueueHook) CallOnFinished(a *animator.Animator, listener animator.FinishListener) {
	h.queue = append(h.queue, func() {
		listener.OnAnimationFinished(a)
	})
}

// Pending returns the number of undelivered notifications.
func (h *QueueHook) Pending() int {
	return len(h.queue)
}

// Flush delivers every queued notification in order.
func (h *QueueHook) Flush() {
	queued := h.queue
	h.queue = nil
	for _, deliver := range queued {
		deliver()
	}
}
