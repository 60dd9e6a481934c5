// Package polyline holds the append-only list of connected segments.
package polyline

import (
	"errors"
	"fmt"
	"math"

	"chosenoffset.com/thickline/internal/core/geometry"
)

var (
	// ErrEmptyStore is returned by Append when there is no segment to chain from.
	ErrEmptyStore = errors.New("polyline store is empty")
	// ErrInvalidWidth is returned for widths that are not finite and positive.
	ErrInvalidWidth = errors.New("segment width must be positive")
	// ErrDisconnected is returned when seed segments do not chain end to start.
	ErrDisconnected = errors.New("segment does not start at previous end point")
)

// Segment is a single straight polyline edge with its own render width.
type Segment struct {
	Start geometry.Point
	End   geometry.Point
	Width float64
}

// Store is an append-only, connected sequence of segments.
type Store struct {
	segments []Segment
}

// DefaultSeed returns the two segments the scene starts with.
func DefaultSeed() []Segment {
	return []Segment{
		{Start: geometry.Point{X: 100, Y: 100}, End: geometry.Point{X: 200, Y: 150}, Width: 2},
		{Start: geometry.Point{X: 200, Y: 150}, End: geometry.Point{X: 250, Y: 300}, Width: 2},
	}
}

// NewStore creates a store seeded with the given segments. The seed must
// already satisfy the connectivity invariant.
func NewStore(seed ...Segment) (*Store, error) {
	s := &Store{segments: make([]Segment, 0, len(seed))}
	for i, seg := range seed {
		if !validWidth(seg.Width) {
			return nil, fmt.Errorf("seed segment %d: %w", i, ErrInvalidWidth)
		}
		if i > 0 && seg.Start != seed[i-1].End {
			return nil, fmt.Errorf("seed segment %d: %w", i, ErrDisconnected)
		}
		s.segments = append(s.segments, seg)
	}
	return s, nil
}

// Append chains a new segment from the current last end point to end.
func (s *Store) Append(end geometry.Point, width float64) (Segment, error) {
	if len(s.segments) == 0 {
		return Segment{}, ErrEmptyStore
	}
	if !validWidth(width) {
		return Segment{}, fmt.Errorf("append width %v: %w", width, ErrInvalidWidth)
	}

	seg := Segment{
		Start: s.segments[len(s.segments)-1].End,
		End:   end,
		Width: width,
	}
	s.segments = append(s.segments, seg)
	return seg, nil
}

// Segments returns a copy of the segments in store order.
func (s *Store) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Len returns the number of segments.
func (s *Store) Len() int {
	return len(s.segments)
}

// Last returns the most recently appended segment.
func (s *Store) Last() (Segment, bool) {
	if len(s.segments) == 0 {
		return Segment{}, false
	}
	return s.segments[len(s.segments)-1], true
}

func validWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
