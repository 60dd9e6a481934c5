package input

import (
	"fmt"
	"math/rand"

	"chosenoffset.com/thickline/internal/core/geometry"
	"chosenoffset.com/thickline/internal/core/polyline"
)

// Surface is the part of the scene the dispatcher needs: its current size
// and a way to request a redraw.
type Surface interface {
	SurfaceSize() (width, height int)
	Invalidate()
}

// Dispatcher applies input events to the store and schedules a redraw.
type Dispatcher struct {
	store   *polyline.Store
	surface Surface
	rng     *rand.Rand
}

// NewDispatcher creates a dispatcher. rng drives RandomClick placement.
func NewDispatcher(store *polyline.Store, surface Surface, rng *rand.Rand) *Dispatcher {
	return &Dispatcher{
		store:   store,
		surface: surface,
		rng:     rng,
	}
}

// Dispatch appends a segment for ev with the given width.
func (d *Dispatcher) Dispatch(ev Event, width float64) (polyline.Segment, error) {
	var end geometry.Point
	switch e := ev.(type) {
	case RandomClick:
		w, h := d.surface.SurfaceSize()
		end = geometry.Point{
			X: d.rng.Float64() * float64(w),
			Y: d.rng.Float64() * float64(h),
		}
	case CustomCoordinates:
		end = geometry.Point{X: e.X, Y: e.Y}
	case CanvasClick:
		end = geometry.Point{X: e.X, Y: e.Y}
	default:
		return polyline.Segment{}, fmt.Errorf("unknown input event %T", ev)
	}

	seg, err := d.store.Append(end, width)
	if err != nil {
		return polyline.Segment{}, fmt.Errorf("failed to append %s: %w", ev, err)
	}
	d.surface.Invalidate()
	return seg, nil
}
