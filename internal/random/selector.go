// Package random picks songs uniformly at random while avoiding immediate
// repeats within a category.
package random

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/llehouerou/cuepad/internal/catalog"
)

// ErrNoCandidates is returned when a pick is requested from an empty set.
var ErrNoCandidates = errors.New("no songs to pick from")

// Selector remembers the last pick per category so that two or more
// candidates never produce the same song twice in a row. Entries are created
// lazily on first pick and live for the process lifetime.
type Selector struct {
	mu   sync.Mutex
	last map[string]int // category -> last picked song ID
	intn func(n int) int
}

// New creates a selector backed by the default random source.
func New() *Selector {
	return &Selector{
		last: make(map[string]int),
		intn: rand.IntN,
	}
}

// Pick selects a song from candidates for the given category. With a single
// candidate repetition is unavoidable and allowed; otherwise the previous
// pick for this category is excluded and the rest are weighted uniformly.
func (s *Selector) Pick(category string, candidates []catalog.Song) (catalog.Song, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(candidates) == 0 {
		return catalog.Song{}, ErrNoCandidates
	}
	if len(candidates) == 1 {
		s.last[category] = candidates[0].ID
		return candidates[0], nil
	}

	pool := candidates
	if lastID, ok := s.last[category]; ok {
		pool = make([]catalog.Song, 0, len(candidates)-1)
		for _, song := range candidates {
			if song.ID != lastID {
				pool = append(pool, song)
			}
		}
	}

	song := pool[s.intn(len(pool))]
	s.last[category] = song.ID
	return song, nil
}

// PickAll selects from the whole catalog, tracked under the "all" category.
func (s *Selector) PickAll(c *catalog.Catalog) (catalog.Song, error) {
	return s.Pick(catalog.CategoryAll, c.Category(catalog.CategoryAll))
}
