// Package catalog turns raw configured song records into a validated,
// key-addressable, category-addressable collection.
package catalog

import (
	"fmt"
	"time"
)

// Category names that exist without being declared in configuration.
const (
	// CategoryAll contains every loaded song regardless of declared category.
	CategoryAll = "all"
	// CategoryDefault is assigned to songs that declare no category.
	CategoryDefault = "uncategorized"
)

// RawSong is one record as produced by the config loader: field names mapped
// to string values, plus the section identity used in error reports. Values
// arrive pre-unquoted; typing is applied here, not at the source.
type RawSong struct {
	Name   string
	Fields map[string]string
}

// Song is a validated song record. ID is the stable identity assigned at
// load time (position in the accepted set) and is what buttons dispatch by.
type Song struct {
	ID       int
	Path     string // absolute path under the music directory
	Filename string
	Title    string
	Artist   string
	Timecode time.Duration // offset playback starts from
	Key      rune          // 0 if unbound
	Category string
}

func (s Song) String() string {
	return fmt.Sprintf("<Song %s - %s>", s.Title, s.Artist)
}

// HasKey reports whether the song has a shortcut key bound.
func (s Song) HasKey() bool {
	return s.Key != 0
}

// ButtonText returns the label shown on the song's trigger button.
func (s Song) ButtonText() string {
	text := s.Title + "\n" + s.Artist
	if s.HasKey() {
		text += fmt.Sprintf("\n(%c)", s.Key)
	}
	return text
}
