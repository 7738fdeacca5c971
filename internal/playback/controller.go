// Package playback owns the single current-clip slot and executes play and
// stop commands against the audio output.
package playback

import (
	"fmt"
	"sync"

	"github.com/llehouerou/cuepad/internal/catalog"
	"github.com/llehouerou/cuepad/internal/player"
)

// PlaybackError reports a clip that could not be started. The controller is
// back in the idle state when it is returned.
type PlaybackError struct {
	Title string
	Err   error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("play %q: %v", e.Title, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }

// Handle identifies one started playback. Done closes when that clip ends,
// naturally or by being superseded; Gen lets OnPlaybackFinished discard
// notifications from superseded clips.
type Handle struct {
	Gen  int
	Done <-chan struct{}
}

// Controller enforces the at-most-one-playing-clip invariant. Dispatch runs
// on a single actor, but state is mutex-guarded so the invariant survives
// concurrent callers too.
type Controller struct {
	mu      sync.Mutex
	player  player.Interface
	current *catalog.Song
	gen     int
}

// New creates an idle controller driving the given audio output.
func New(p player.Interface) *Controller {
	return &Controller{player: p}
}

// Play starts song from its timecode, stopping any current clip first. On
// failure the slot is cleared, never left dangling on a failed start.
func (c *Controller) Play(song catalog.Song) (Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if err := c.player.Play(song.Path, song.Timecode); err != nil {
		c.current = nil
		return Handle{}, &PlaybackError{Title: song.Title, Err: err}
	}
	c.current = &song
	return Handle{Gen: c.gen, Done: c.player.Done()}, nil
}

// Stop halts the current clip and clears the slot. Idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return
	}
	c.gen++
	c.player.Stop()
	c.current = nil
}

// OnPlaybackFinished handles a natural end-of-clip notification for the
// playback identified by gen. Notifications for superseded clips are stale
// and ignored.
func (c *Controller) OnPlaybackFinished(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	c.current = nil
}

// Now returns a copy of the currently sounding song, or nil when idle. Reads
// are for UI highlighting; Play does not consult this to decide whether to
// stop first.
func (c *Controller) Now() *catalog.Song {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}
	song := *c.current
	return &song
}

// IsPlaying reports whether a clip currently occupies the slot.
func (c *Controller) IsPlaying() bool {
	return c.Now() != nil
}
