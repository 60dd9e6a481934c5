package polyline

import (
	"errors"
	"math"
	"testing"

	"chosenoffset.com/thickline/internal/core/geometry"
)

func TestAppendChainsFromLastEnd(t *testing.T) {
	store, err := NewStore(Segment{
		Start: geometry.Point{X: 100, Y: 100},
		End:   geometry.Point{X: 200, Y: 150},
		Width: 2,
	})
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if _, err := store.Append(geometry.Point{X: 250, Y: 300}, 2); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	want := []Segment{
		{Start: geometry.Point{X: 100, Y: 100}, End: geometry.Point{X: 200, Y: 150}, Width: 2},
		{Start: geometry.Point{X: 200, Y: 150}, End: geometry.Point{X: 250, Y: 300}, Width: 2},
	}
	got := store.Segments()
	if len(got) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestAppendPreservesConnectivity(t *testing.T) {
	store, err := NewStore(DefaultSeed()...)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	ends := []geometry.Point{{X: 10, Y: 10}, {X: 10, Y: 10}, {X: 640, Y: 2}, {X: -5, Y: 77.25}}
	for _, end := range ends {
		prev, _ := store.Last()
		seg, err := store.Append(end, 3)
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if seg.Start != prev.End {
			t.Errorf("Expected start %v to equal previous end %v", seg.Start, prev.End)
		}
	}

	segs := store.Segments()
	for i := 1; i < len(segs); i++ {
		if segs[i].Start != segs[i-1].End {
			t.Errorf("Segment %d is disconnected: %v != %v", i, segs[i].Start, segs[i-1].End)
		}
	}
}

func TestStoreIsAppendOnly(t *testing.T) {
	store, err := NewStore(DefaultSeed()...)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	before := store.Segments()
	// Mutating the returned view must not leak into the store
	before[0].Width = 99

	if _, err := store.Append(geometry.Point{X: 1, Y: 1}, 1); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	after := store.Segments()
	if len(after) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(after))
	}
	seed := DefaultSeed()
	for i := range seed {
		if after[i] != seed[i] {
			t.Errorf("Segment %d changed: expected %+v, got %+v", i, seed[i], after[i])
		}
	}
}

func TestAppendErrors(t *testing.T) {
	empty, err := NewStore()
	if err != nil {
		t.Fatalf("Failed to create empty store: %v", err)
	}
	if _, err := empty.Append(geometry.Point{X: 1, Y: 1}, 1); !errors.Is(err, ErrEmptyStore) {
		t.Errorf("Expected ErrEmptyStore, got %v", err)
	}

	store, _ := NewStore(DefaultSeed()...)
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := store.Append(geometry.Point{X: 1, Y: 1}, w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("Width %v: expected ErrInvalidWidth, got %v", w, err)
		}
	}
	if store.Len() != 2 {
		t.Errorf("Failed appends must not mutate the store, got %d segments", store.Len())
	}
}

func TestNewStoreValidatesSeed(t *testing.T) {
	_, err := NewStore(
		Segment{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 1, Y: 1}, Width: 1},
		Segment{Start: geometry.Point{X: 5, Y: 5}, End: geometry.Point{X: 6, Y: 6}, Width: 1},
	)
	if !errors.Is(err, ErrDisconnected) {
		t.Errorf("Expected ErrDisconnected, got %v", err)
	}

	_, err = NewStore(Segment{Start: geometry.Point{X: 0, Y: 0}, End: geometry.Point{X: 1, Y: 1}, Width: 0})
	if !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("Expected ErrInvalidWidth, got %v", err)
	}
}
