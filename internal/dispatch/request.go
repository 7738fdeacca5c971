// Package dispatch resolves user actions into catalog lookups and playback
// commands.
package dispatch

// Request is one user action. Exactly one of the concrete types below is
// dispatched at a time; a single switch consumes them.
type Request interface {
	isRequest()
}

// ByKey plays the song bound to a shortcut key.
type ByKey struct {
	Key rune
}

// ByID plays a song by its load-time identity (a button press).
type ByID struct {
	ID int
}

// Random plays an anti-repeat random song from one category.
type Random struct {
	Category string
}

// RandomAll plays an anti-repeat random song from the whole catalog.
type RandomAll struct{}

// Stop halts playback.
type Stop struct{}

func (ByKey) isRequest()     {}
func (ByID) isRequest()      {}
func (Random) isRequest()    {}
func (RandomAll) isRequest() {}
func (Stop) isRequest()      {}
