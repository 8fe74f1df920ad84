// Package notify renders transient toast notifications. A toast appears,
// holds for a moment, fades, and is removed; the whole lifecycle is
// fire-and-forget and never blocks the caller.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a toast for styling purposes.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Lifecycle timing defaults.
const (
	DefaultHold = 2200 * time.Millisecond
	DefaultFade = 250 * time.Millisecond
)

// Toast is a single notification instance. The ID distinguishes concurrent
// toasts with identical text.
type Toast struct {
	ID       uuid.UUID
	Message  string
	Severity Severity
}

// Sink receives toast lifecycle events. Implementations must return
// quickly; they are called from timer callbacks.
type Sink interface {
	Show(t Toast)
	Fade(t Toast)
	Remove(t Toast)
}

// startTimer is a test seam for time.AfterFunc. Tests replace it to run
// callbacks immediately.
var startTimer = time.AfterFunc

// Toaster drives toast lifecycles against a Sink.
type Toaster struct {
	sink Sink
	hold time.Duration
	fade time.Duration
}

// NewToaster builds a Toaster with the default hold/fade timing.
func NewToaster(sink Sink) *Toaster {
	return &Toaster{sink: sink, hold: DefaultHold, fade: DefaultFade}
}

// Notify shows a toast and schedules its fade and removal. It returns
// immediately; the lifecycle continues on timers.
func (t *Toaster) Notify(message string, severity Severity) {
	toast := Toast{ID: uuid.New(), Message: message, Severity: severity}
	t.sink.Show(toast)
	startTimer(t.hold, func() {
		t.sink.Fade(toast)
		startTimer(t.fade, func() {
			t.sink.Remove(toast)
		})
	})
}
