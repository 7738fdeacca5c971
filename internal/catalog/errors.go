package catalog

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog is returned by Load when no record survives validation.
// A player with nothing to play is not viable.
var ErrEmptyCatalog = errors.New("no playable songs in catalog")

// LoadError describes one problem found while loading a record. Skipped
// reports whether the whole record was rejected; when false only the key
// binding was dropped and the song still loaded.
type LoadError struct {
	Record  string // section identity of the offending record
	Field   string
	Reason  string
	Skipped bool
}

func (e LoadError) Error() string {
	what := "key binding dropped"
	if e.Skipped {
		what = "record skipped"
	}
	return fmt.Sprintf("song %q: %s (%s): %s", e.Record, e.Field, what, e.Reason)
}
