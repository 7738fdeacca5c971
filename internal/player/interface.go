// Package player outputs a single audio clip at a time through the system
// speaker.
package player

import "time"

// Interface defines the audio output contract for dependency injection and
// testing. Play stops any current clip before starting the new one, so two
// clips never sound at once.
type Interface interface {
	Play(path string, offset time.Duration) error
	Stop()
	State() State
	// Done returns a channel closed when the current clip ends, naturally
	// or by Stop. Each Play replaces it.
	Done() <-chan struct{}
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
