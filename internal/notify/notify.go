// Package notify implements transient notifications that dismiss themselves
// after a fixed duration and expose a countdown while visible.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// DefaultDuration is how long a notification stays up unless dismissed.
const DefaultDuration = 5000 * time.Millisecond

// Notifier shows at most one notification at a time; a new one replaces the current one.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	active   *Notification
	now      func() time.Time
}

func NewNotifier(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{duration: duration, now: time.Now}
}

// Show dismisses the active notification, if any, and displays a new one.
func (n *Notifier) Show(kind Kind, message string) *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.active != nil {
		n.active.Dismiss()
	}
	x := &Notification{
		Kind:     kind,
		Message:  message,
		Duration: n.duration,
		shownAt:  n.now(),
		now:      n.now,
		done:     make(chan struct{}),
	}
	x.mu.Lock()
	x.timer = time.AfterFunc(n.duration, x.Dismiss)
	x.mu.Unlock()
	n.active = x
	return x
}

// Active returns the visible notification or nil.
func (n *Notifier) Active() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.active == nil || n.active.Dismissed() {
		return nil
	}
	return n.active
}

// Notification is a single message with an auto-dismiss deadline.
type Notification struct {
	Kind     Kind
	Message  string
	Duration time.Duration

	shownAt time.Time
	now     func() time.Time
	mu      sync.Mutex
	timer   *time.Timer
	once    sync.Once
	done    chan struct{}
}

// Remaining is the time left before auto-dismiss; zero once dismissed.
func (x *Notification) Remaining() time.Duration {
	if x.Dismissed() {
		return 0
	}
	left := x.Duration - x.now().Sub(x.shownAt)
	if left < 0 {
		return 0
	}
	return left
}

// Progress is the countdown bar in percent, from 100 down to 0.
func (x *Notification) Progress() float64 {
	if x.Duration <= 0 {
		return 0
	}
	return float64(x.Remaining()) / float64(x.Duration) * 100
}

// Dismiss hides the notification early. Safe to call more than once.
func (x *Notification) Dismiss() {
	x.once.Do(func() {
		x.mu.Lock()
		if x.timer != nil {
			x.timer.Stop()
		}
		x.mu.Unlock()
		close(x.done)
	})
}

// Done is closed when the notification goes away.
func (x *Notification) Done() <-chan struct{} {
	return x.done
}

func (x *Notification) Dismissed() bool {
	select {
	case <-x.done:
		return true
	default:
		return false
	}
}
