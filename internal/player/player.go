package player

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Player plays one clip at a time through the speaker. All methods must be
// called from a single goroutine; the speaker callback is the only
// concurrent toucher and only closes the done channel.
type Player struct {
	state    State
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	done     chan struct{}
}

// The speaker is initialized once at the first clip's sample rate; later
// clips with a different rate are resampled to it.
var speakerRate beep.SampleRate

// New creates a stopped player.
func New() *Player {
	done := make(chan struct{})
	close(done)
	return &Player{
		state: Stopped,
		done:  done,
	}
}

// IsMusicFile reports whether the path has a playable extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac", ".wav", ".ogg":
		return true
	}
	return false
}

// Play stops the current clip, then decodes path, seeks to offset and starts
// output. On error the player is left stopped with no clip loaded.
func (p *Player) Play(path string, offset time.Duration) error {
	p.Stop()

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		f.Close()
		return err
	}

	if speakerRate == 0 {
		if err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerRate = format.SampleRate
	}

	if offset > 0 {
		pos := format.SampleRate.N(offset)
		if pos >= streamer.Len() {
			pos = streamer.Len() - 1
		}
		if err = streamer.Seek(pos); err != nil {
			streamer.Close()
			f.Close()
			return fmt.Errorf("seek to %s: %w", offset, err)
		}
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = &beep.Ctrl{Streamer: streamer}

	var out beep.Streamer = p.ctrl
	if format.SampleRate != speakerRate {
		out = beep.Resample(4, format.SampleRate, speakerRate, p.ctrl)
	}

	p.state = Playing
	done := make(chan struct{})
	p.done = done

	speaker.Play(beep.Seq(out, beep.Callback(func() {
		close(done)
	})))

	return nil
}

// Stop halts output and releases the current clip. Calling Stop with nothing
// playing is a no-op.
func (p *Player) Stop() {
	if p.state == Stopped {
		return
	}

	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.state = Stopped

	select {
	case <-p.done:
		// finished callback already closed it
	default:
		close(p.done)
	}
}

// State returns the current output state.
func (p *Player) State() State { return p.state }

// Done returns the current clip's completion channel.
func (p *Player) Done() <-chan struct{} { return p.done }
