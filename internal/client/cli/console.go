package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/Sharnika-sree/autoscribe/internal/client/notify"
)

// consoleSink renders toast lifecycle events as text lines. Fade events are
// dropped; a terminal has nothing to animate.
type consoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *consoleSink) Show(t notify.Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "[%s] %s\n", t.Severity, t.Message)
}

func (s *consoleSink) Fade(t notify.Toast) {}

func (s *consoleSink) Remove(t notify.Toast) {}

// consoleNavigator records the current page and echoes each redirect.
// Navigate is called from timer callbacks, hence the mutex.
type consoleNavigator struct {
	mu   sync.Mutex
	w    io.Writer
	page string
}

func (n *consoleNavigator) Navigate(page string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.page = page
	fmt.Fprintf(n.w, "[navigate] %s\n", page)
}

// Current returns the last page navigated to, empty before any redirect.
func (n *consoleNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.page
}
