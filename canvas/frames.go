package canvas

import "time"

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameFunc is invoked once on the next display refresh.
type FrameFunc func(now time.Time)

// Scheduler is the host's "next frame" primitive. A callback runs once;
// callers that want a continuous loop re-request from inside the callback.
type Scheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue is a single-threaded Scheduler flushed by the host loop once
// per display refresh. Callbacks requested during a flush are deferred to
// the next flush, so a self-re-arming loop ticks exactly once per frame.
type FrameQueue struct {
	nextID  FrameID
	pending []pendingFrame
	running []pendingFrame
	frames  uint64
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		pending: make([]pendingFrame, 0, 4),
		running: make([]pendingFrame, 0, 4),
	}
}

// RequestFrame schedules fn for the next Flush and returns its id.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	if fn == nil {
		return 0
	}
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a pending callback. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// Cancelling a callback that is queued behind the one currently running
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Flush runs every callback that was pending when Flush started, in
// request order, and returns how many ran.
func (q *FrameQueue) Flush(now time.Time) int {
	if len(q.pending) == 0 {
		q.frames++
		return 0
	}

	q.running, q.pending = q.pending, q.running[:0]
	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		fn(now)
		ran++
	}
	q.running = q.running[:0]
	q.frames++
	return ran
}

// Pending returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns how many times Flush has been called.
func (q *FrameQueue) Frames() uint64 {
	return q.frames
}
