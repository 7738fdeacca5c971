package dispatch

import (
	"fmt"

	"github.com/llehouerou/cuepad/internal/catalog"
	"github.com/llehouerou/cuepad/internal/playback"
	"github.com/llehouerou/cuepad/internal/random"
)

// Result reports what a dispatch started. Song is nil when nothing was
// started (stop, unbound key). Handle is valid only when Song is set.
type Result struct {
	Song   *catalog.Song
	Handle playback.Handle
}

// Dispatcher is the only component touching both the catalog and the
// controller. Errors returned here are user-visible conditions; nothing
// escalates past this boundary.
type Dispatcher struct {
	catalog    *catalog.Catalog
	selector   *random.Selector
	controller *playback.Controller
}

// New wires a dispatcher over its collaborators.
func New(c *catalog.Catalog, s *random.Selector, ctrl *playback.Controller) *Dispatcher {
	return &Dispatcher{
		catalog:    c,
		selector:   s,
		controller: ctrl,
	}
}

// Dispatch resolves and executes one request. An unbound key is a silent
// no-op; an empty random category and a failed start are reported without
// altering catalog or controller consistency.
func (d *Dispatcher) Dispatch(req Request) (Result, error) {
	switch r := req.(type) {
	case ByKey:
		song, ok := d.catalog.ByKey(r.Key)
		if !ok {
			return Result{}, nil
		}
		return d.play(song)

	case ByID:
		song, ok := d.catalog.ByID(r.ID)
		if !ok {
			return Result{}, fmt.Errorf("no song with id %d", r.ID)
		}
		return d.play(song)

	case Random:
		song, err := d.selector.Pick(r.Category, d.catalog.Category(r.Category))
		if err != nil {
			return Result{}, fmt.Errorf("nothing to play in %q: %w", r.Category, err)
		}
		return d.play(song)

	case RandomAll:
		song, err := d.selector.PickAll(d.catalog)
		if err != nil {
			return Result{}, fmt.Errorf("nothing to play: %w", err)
		}
		return d.play(song)

	case Stop:
		d.controller.Stop()
		return Result{}, nil

	default:
		return Result{}, fmt.Errorf("unknown request %T", req)
	}
}

func (d *Dispatcher) play(song catalog.Song) (Result, error) {
	handle, err := d.controller.Play(song)
	if err != nil {
		return Result{}, err
	}
	return Result{Song: &song, Handle: handle}, nil
}
