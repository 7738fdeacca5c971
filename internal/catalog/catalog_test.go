package catalog

import (
	"errors"
	"testing"
	"time"
)

func testOptions() Options {
	return Options{
		MusicDir:   "/music",
		FileExists: func(string) bool { return true },
	}
}

func record(name string, fields map[string]string) RawSong {
	return RawSong{Name: name, Fields: fields}
}

func TestLoad_Valid(t *testing.T) {
	c, issues, err := Load([]RawSong{
		record("intro", map[string]string{
			"filename": "a.mp3",
			"title":    "A",
			"artist":   "Band",
			"timecode": "12.5",
			"key":      "s",
			"category": "rock",
		}),
	}, testOptions())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}

	song, ok := c.ByKey('s')
	if !ok {
		t.Fatal("ByKey('s') not found")
	}
	if song.Title != "A" || song.Artist != "Band" {
		t.Errorf("song = %v, want title A by Band", song)
	}
	if song.Path != "/music/a.mp3" {
		t.Errorf("Path = %q, want /music/a.mp3", song.Path)
	}
	if want := 12500 * time.Millisecond; song.Timecode != want {
		t.Errorf("Timecode = %v, want %v", song.Timecode, want)
	}
}

func TestLoad_SkipsMalformedRecord(t *testing.T) {
	c, issues, err := Load([]RawSong{
		record("good1", map[string]string{"filename": "a.mp3", "title": "A"}),
		record("bad", map[string]string{"filename": "b.mp3"}), // no title
		record("good2", map[string]string{"filename": "c.mp3", "title": "C"}),
	}, testOptions())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if len(issues) != 1 {
		t.Fatalf("issues = %v, want exactly one", issues)
	}
	if !issues[0].Skipped || issues[0].Record != "bad" || issues[0].Field != "title" {
		t.Errorf("issue = %+v, want skipped bad/title", issues[0])
	}
}

func TestLoad_RejectsBadTimecode(t *testing.T) {
	tests := []struct {
		name     string
		timecode string
	}{
		{"negative", "-3"},
		{"non-numeric", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, issues, err := Load([]RawSong{
				record("s", map[string]string{
					"filename": "a.mp3",
					"title":    "A",
					"timecode": tt.timecode,
				}),
			}, testOptions())
			if !errors.Is(err, ErrEmptyCatalog) {
				t.Fatalf("Load() error = %v, want ErrEmptyCatalog", err)
			}
			if len(issues) != 1 || issues[0].Field != "timecode" {
				t.Errorf("issues = %v, want one timecode issue", issues)
			}
		})
	}
}

func TestLoad_RejectsMissingFile(t *testing.T) {
	opts := Options{
		MusicDir:   "/music",
		FileExists: func(path string) bool { return path == "/music/exists.mp3" },
	}
	c, issues, err := Load([]RawSong{
		record("here", map[string]string{"filename": "exists.mp3", "title": "A"}),
		record("gone", map[string]string{"filename": "missing.mp3", "title": "B"}),
	}, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if len(issues) != 1 || !issues[0].Skipped {
		t.Errorf("issues = %v, want one skipped record", issues)
	}
}

func TestLoad_EmptyCatalogFatal(t *testing.T) {
	_, _, err := Load(nil, testOptions())
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("Load() error = %v, want ErrEmptyCatalog", err)
	}
}

func TestLoad_ReservedKeys(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"space", " "},
		{"digit", "7"},
		{"multi-char", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, issues, err := Load([]RawSong{
				record("s", map[string]string{
					"filename": "a.mp3",
					"title":    "A",
					"key":      tt.key,
				}),
			}, testOptions())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			// Song loads, binding is dropped.
			if c.Len() != 1 {
				t.Errorf("Len() = %d, want 1", c.Len())
			}
			song, _ := c.ByID(0)
			if song.HasKey() {
				t.Errorf("key %q should not bind", tt.key)
			}
			if len(issues) != 1 || issues[0].Skipped {
				t.Errorf("issues = %v, want one non-skipping key issue", issues)
			}
		})
	}
}

func TestLoad_KeyConflictDropsSecondBinding(t *testing.T) {
	c, issues, err := Load([]RawSong{
		record("song1", map[string]string{
			"filename": "a.mp3", "title": "A", "key": "s", "category": "rock",
		}),
		record("song2", map[string]string{
			"filename": "b.mp3", "title": "B", "key": "s", "category": "pop",
		}),
	}, testOptions())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	song, ok := c.ByKey('s')
	if !ok || song.Title != "A" {
		t.Errorf("ByKey('s') = %v, want song A", song)
	}
	second, _ := c.ByID(1)
	if second.HasKey() {
		t.Error("song2 key binding should have been dropped")
	}
	if len(issues) != 1 || issues[0].Record != "song2" {
		t.Errorf("issues = %v, want one conflict on song2", issues)
	}

	// Both songs still appear, categories intact.
	got := c.Categories()
	want := []string{"all", "rock", "pop"}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad_KeysAreCaseSensitive(t *testing.T) {
	c, issues, err := Load([]RawSong{
		record("lower", map[string]string{"filename": "a.mp3", "title": "A", "key": "s"}),
		record("upper", map[string]string{"filename": "b.mp3", "title": "B", "key": "S"}),
	}, testOptions())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("issues = %v, want none", issues)
	}
	lower, _ := c.ByKey('s')
	upper, _ := c.ByKey('S')
	if lower.Title != "A" || upper.Title != "B" {
		t.Errorf("ByKey = %v / %v, want A / B", lower, upper)
	}
}

func TestCatalog_EverySongInDeclaredAndAll(t *testing.T) {
	c, _, err := Load([]RawSong{
		record("r", map[string]string{"filename": "a.mp3", "title": "A", "category": "rock"}),
		record("p", map[string]string{"filename": "b.mp3", "title": "B", "category": "pop"}),
		record("u", map[string]string{"filename": "c.mp3", "title": "C"}),
	}, testOptions())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := len(c.Category(CategoryAll)); got != 3 {
		t.Errorf("all category has %d songs, want 3", got)
	}
	for _, song := range c.Songs() {
		members := c.Category(song.Category)
		found := false
		for _, m := range members {
			if m.ID == song.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("song %v missing from its category %q", song, song.Category)
		}
		// A song appears in exactly one declared category.
		for _, other := range c.Categories() {
			if other == CategoryAll || other == song.Category {
				continue
			}
			for _, m := range c.Category(other) {
				if m.ID == song.ID {
					t.Errorf("song %v leaked into category %q", song, other)
				}
			}
		}
	}

	uncategorized, _ := c.ByID(2)
	if uncategorized.Category != CategoryDefault {
		t.Errorf("Category = %q, want %q", uncategorized.Category, CategoryDefault)
	}
}

func TestCatalog_UnknownCategoryIsEmptyNotError(t *testing.T) {
	c, _, err := Load([]RawSong{
		record("s", map[string]string{"filename": "a.mp3", "title": "A"}),
	}, testOptions())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := c.Category("jazz"); len(got) != 0 {
		t.Errorf("Category(jazz) = %v, want empty", got)
	}
}

func TestCatalog_ByID_Invalid(t *testing.T) {
	c, _, _ := Load([]RawSong{
		record("s", map[string]string{"filename": "a.mp3", "title": "A"}),
	}, testOptions())
	if _, ok := c.ByID(-1); ok {
		t.Error("ByID(-1) should not resolve")
	}
	if _, ok := c.ByID(5); ok {
		t.Error("ByID(5) should not resolve")
	}
}

func TestLoad_DuplicateTitlesAllowed(t *testing.T) {
	c, issues, err := Load([]RawSong{
		record("one", map[string]string{"filename": "a.mp3", "title": "Same"}),
		record("two", map[string]string{"filename": "a.mp3", "title": "Same"}),
	}, testOptions())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Len() != 2 || len(issues) != 0 {
		t.Errorf("Len() = %d, issues = %v; duplicates should load cleanly", c.Len(), issues)
	}
}
