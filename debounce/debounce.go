// Package debounce turns the edges of a mechanical push button into logical
// presses.
//
// A contact bounces for tens of milliseconds after it closes, so one physical
// press produces a burst of edges. Button accepts the first edge and rejects
// every edge until more than Window has elapsed since the last accepted one.
package debounce

import (
	"errors"
	"time"
)

// DefaultWindow is long enough to cover the bounce of common tactile switches
// and short enough for deliberate repeated presses.
const DefaultWindow = 500 * time.Millisecond

// Button holds the time of the last accepted press.
//
// It is not safe for concurrent use.
type Button struct {
	window time.Duration
	last   time.Time
}

// New returns a Button rejecting edges closer than window to the last
// accepted press. A zero window selects DefaultWindow.
func New(window time.Duration) (*Button, error) {
	if window == 0 {
		window = DefaultWindow
	}
	if window < 0 {
		return nil, errors.New("debounce: window must be positive")
	}
	return &Button{window: window}, nil
}

// Press reports whether an edge seen at now is a new press.
func (b *Button) Press(now time.Time) bool {
	if now.Sub(b.last) <= b.window {
		return false
	}
	b.last = now
	return true
}

// Window returns the debounce window.
func (b *Button) Window() time.Duration {
	return b.window
}
