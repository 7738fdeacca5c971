package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Options controls catalog loading. FileExists defaults to an os.Stat check
// and is replaceable for tests.
type Options struct {
	MusicDir   string
	FileExists func(path string) bool
}

func (o Options) fileExists(path string) bool {
	if o.FileExists != nil {
		return o.FileExists(path)
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Catalog is the immutable-after-load set of songs, indexed by shortcut key
// and by category. Category order and song order within a category follow
// first appearance in the record list.
type Catalog struct {
	songs      []Song
	byKey      map[rune]int     // key -> song ID
	byCategory map[string][]int // category -> song IDs in insertion order
	catOrder   []string         // declared categories, first-seen order
}

// Load validates records and builds the catalog. A record failing validation
// is skipped and reported; a key conflict or reserved key only drops that
// song's binding. Load fails with ErrEmptyCatalog when nothing survives.
func Load(records []RawSong, opts Options) (*Catalog, []LoadError, error) {
	c := &Catalog{
		byKey:      make(map[rune]int),
		byCategory: make(map[string][]int),
	}
	var issues []LoadError

	for i, rec := range records {
		name := rec.Name
		if name == "" {
			name = fmt.Sprintf("song %d", i+1)
		}
		song, issue := validate(name, rec.Fields, opts)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}

		if key, kerr := bindKey(c, name, rec.Fields["key"]); kerr != nil {
			issues = append(issues, *kerr)
		} else {
			song.Key = key
		}

		song.ID = len(c.songs)
		if song.HasKey() {
			c.byKey[song.Key] = song.ID
		}
		if _, seen := c.byCategory[song.Category]; !seen {
			c.catOrder = append(c.catOrder, song.Category)
		}
		c.byCategory[song.Category] = append(c.byCategory[song.Category], song.ID)
		c.songs = append(c.songs, song)
	}

	if len(c.songs) == 0 {
		return nil, issues, ErrEmptyCatalog
	}
	return c, issues, nil
}

// validate applies the field schema to one record. The first failure rejects
// the record; key binding is handled separately because its failures are
// non-fatal.
func validate(name string, fields map[string]string, opts Options) (Song, *LoadError) {
	reject := func(field, reason string) (Song, *LoadError) {
		return Song{}, &LoadError{Record: name, Field: field, Reason: reason, Skipped: true}
	}

	filename := fields["filename"]
	if filename == "" {
		return reject("filename", "required field is missing or empty")
	}
	title := fields["title"]
	if title == "" {
		return reject("title", "required field is missing or empty")
	}

	timecode := time.Duration(0)
	if raw := fields["timecode"]; raw != "" {
		secs, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return reject("timecode", fmt.Sprintf("not a number: %q", raw))
		}
		if secs < 0 {
			return reject("timecode", fmt.Sprintf("must not be negative: %s", raw))
		}
		timecode = time.Duration(secs * float64(time.Second))
	}

	path := filepath.Join(opts.MusicDir, filename)
	if !opts.fileExists(path) {
		return reject("filename", fmt.Sprintf("no such file: %s", path))
	}

	category := fields["category"]
	if category == "" {
		category = CategoryDefault
	}

	return Song{
		Path:     path,
		Filename: filename,
		Title:    title,
		Artist:   fields["artist"],
		Timecode: timecode,
		Category: category,
	}, nil
}

// bindKey validates a shortcut key against the reserved-key and uniqueness
// rules. Conflicts drop the binding, never the song.
func bindKey(c *Catalog, name, raw string) (rune, *LoadError) {
	if raw == "" {
		return 0, nil
	}
	dropped := func(reason string) (rune, *LoadError) {
		return 0, &LoadError{Record: name, Field: "key", Reason: reason}
	}

	if utf8.RuneCountInString(raw) != 1 {
		return dropped(fmt.Sprintf("must be a single character, got %q", raw))
	}
	key, _ := utf8.DecodeRuneInString(raw)
	if key == ' ' {
		return dropped("space is reserved for stop")
	}
	if key >= '0' && key <= '9' {
		return dropped("digits are reserved for category tabs")
	}
	if id, taken := c.byKey[key]; taken {
		return dropped(fmt.Sprintf("already bound to %q", c.songs[id].Title))
	}
	return key, nil
}

// ByKey returns the song bound to the given key.
func (c *Catalog) ByKey(key rune) (Song, bool) {
	id, ok := c.byKey[key]
	if !ok {
		return Song{}, false
	}
	return c.songs[id], true
}

// ByID returns the song with the given load-time identity.
func (c *Catalog) ByID(id int) (Song, bool) {
	if id < 0 || id >= len(c.songs) {
		return Song{}, false
	}
	return c.songs[id], true
}

// Category returns the songs in a category in insertion order. The "all"
// category yields every song. Unknown categories yield an empty slice.
func (c *Catalog) Category(name string) []Song {
	if name == CategoryAll {
		return c.Songs()
	}
	return lo.Map(c.byCategory[name], func(id int, _ int) Song {
		return c.songs[id]
	})
}

// Categories returns "all" followed by the declared category names in
// first-seen order.
func (c *Catalog) Categories() []string {
	return append([]string{CategoryAll}, c.catOrder...)
}

// Songs returns every song in load order.
func (c *Catalog) Songs() []Song {
	out := make([]Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// Len returns the number of loaded songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}
