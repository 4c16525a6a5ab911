package editor

import (
	"sync"
	"time"
)

// ToastTTL is how long every toast lives. All toasts expire after the
// same fixed interval; dismissal can only shorten it.
const ToastTTL = 5 * time.Second

type ToastVariant string

const (
	ToastSuccess ToastVariant = "success"
	ToastDanger  ToastVariant = "danger"
)

type Toast struct {
	ID      int64
	Variant ToastVariant
	Message string
}

// ToastQueue is the process-wide ephemeral message channel. Every
// pushed toast auto-expires after ttl and can be dismissed earlier by
// id.
type ToastQueue struct {
	mu     sync.Mutex
	ttl    time.Duration
	nextID int64
	toasts []Toast
	timers map[int64]*time.Timer
	closed bool
}

func NewToastQueue() *ToastQueue {
	return newToastQueue(ToastTTL)
}

func newToastQueue(ttl time.Duration) *ToastQueue {
	return &ToastQueue{
		ttl:    ttl,
		timers: make(map[int64]*time.Timer),
	}
}

// Push enqueues a toast and schedules its expiry.
func (q *ToastQueue) Push(variant ToastVariant, message string) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return 0
	}

	q.nextID++
	id := q.nextID
	q.toasts = append(q.toasts, Toast{ID: id, Variant: variant, Message: message})
	q.timers[id] = time.AfterFunc(q.ttl, func() { q.Dismiss(id) })

	return id
}

// Dismiss removes one toast, whether by user action or expiry.
// Dismissing an already-gone toast is a no-op.
func (q *ToastQueue) Dismiss(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if timer, ok := q.timers[id]; ok {
		timer.Stop()
		delete(q.timers, id)
	}

	for i, t := range q.toasts {
		if t.ID == id {
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}

// Active returns the live toasts in push order.
func (q *ToastQueue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}

// Close stops every pending expiry timer.
func (q *ToastQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = nil
}
