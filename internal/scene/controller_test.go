package scene

import (
	"image/color"
	"math"
	"reflect"
	"testing"

	"chosenoffset.com/thickline/internal/core/geometry"
	"chosenoffset.com/thickline/internal/core/polyline"
	"chosenoffset.com/thickline/internal/render/rendertest"
	"chosenoffset.com/thickline/internal/render/thickline"
)

func newController(t *testing.T, store *polyline.Store) (*Controller, *rendertest.Renderer) {
	t.Helper()
	r := &rendertest.Renderer{}
	program, err := thickline.Initialize(r, thickline.DefaultShaderSource)
	if err != nil {
		t.Fatalf("Failed to initialize program: %v", err)
	}
	return NewController(store, thickline.NewContext(program), r, DefaultOptions()), r
}

func seededStore(t *testing.T) *polyline.Store {
	t.Helper()
	store, err := polyline.NewStore(polyline.DefaultSeed()...)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestRedrawDrawsEverySegment(t *testing.T) {
	store := seededStore(t)
	c, r := newController(t, store)

	if err := c.Redraw(640, 480); err != nil {
		t.Fatalf("Redraw failed: %v", err)
	}

	if len(r.Images) != 1 {
		t.Fatalf("Expected 1 backing texture, got %d", len(r.Images))
	}
	tex := r.Images[0]
	if tex.W != 640 || tex.H != 480 {
		t.Errorf("Expected 640x480 texture, got %dx%d", tex.W, tex.H)
	}
	if tex.FillColor != color.White {
		t.Errorf("Expected white background, got %v", tex.FillColor)
	}
	if len(tex.Calls) != store.Len() {
		t.Fatalf("Expected %d draw calls, got %d", store.Len(), len(tex.Calls))
	}

	for i, seg := range store.Segments() {
		want, _ := geometry.ThickLineQuad(seg.Start, seg.End, seg.Width)
		for j, v := range tex.Calls[i].Vertices {
			if v.DstX != float32(want[j].X) || v.DstY != float32(want[j].Y) {
				t.Errorf("Segment %d vertex %d: expected %v, got (%f, %f)", i, j, want[j], v.DstX, v.DstY)
			}
		}
		col := tex.Calls[i].Uniforms[thickline.UniformColor].([]float32)
		if !reflect.DeepEqual(col, []float32{0, 0, 0, 1}) {
			t.Errorf("Segment %d: expected opaque black, got %v", i, col)
		}
	}

	if w, h := c.SurfaceSize(); w != 640 || h != 480 {
		t.Errorf("Expected surface size 640x480, got %dx%d", w, h)
	}
}

func TestRedrawIsIdempotent(t *testing.T) {
	store := seededStore(t)
	if _, err := store.Append(geometry.Point{X: 400, Y: 20}, 5.5); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	c, r := newController(t, store)

	if err := c.Redraw(320, 240); err != nil {
		t.Fatalf("Redraw failed: %v", err)
	}
	first := r.Images[0].Calls

	if err := c.Redraw(320, 240); err != nil {
		t.Fatalf("Redraw failed: %v", err)
	}
	second := r.Images[0].Calls

	if len(r.Images) != 1 {
		t.Errorf("Expected texture to be reused, got %d allocations", len(r.Images))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical draw calls for unchanged store and size")
	}
}

func TestRedrawSkipsDegenerateSegments(t *testing.T) {
	store := seededStore(t)
	last, _ := store.Last()
	// Zero-length segment back onto the current end point
	if _, err := store.Append(last.End, 3); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := store.Append(geometry.Point{X: 10, Y: 10}, 3); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	c, r := newController(t, store)

	if err := c.Redraw(300, 300); err != nil {
		t.Fatalf("Redraw failed: %v", err)
	}
	if got := len(r.Images[0].Calls); got != store.Len()-1 {
		t.Errorf("Expected %d draw calls, got %d", store.Len()-1, got)
	}
	for _, call := range r.Images[0].Calls {
		for _, v := range call.Vertices {
			if math.IsNaN(float64(v.DstX)) || math.IsNaN(float64(v.DstY)) {
				t.Fatal("NaN vertex submitted")
			}
		}
	}
}

func TestPresentRedrawsOnlyWhenNeeded(t *testing.T) {
	store := seededStore(t)
	c, r := newController(t, store)
	screen := rendertest.NewImage(200, 100)

	if err := c.Present(screen); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if c.Dirty() {
		t.Error("Expected scene to be clean after present")
	}
	fills := r.Images[0].Fills

	// Clean and same size: just blit
	_ = c.Present(screen)
	if r.Images[0].Fills != fills {
		t.Error("Expected no redraw for a clean scene")
	}
	if len(screen.Blits) != 2 {
		t.Errorf("Expected 2 blits, got %d", len(screen.Blits))
	}

	// Store change
	_, _ = store.Append(geometry.Point{X: 50, Y: 50}, 1)
	c.Invalidate()
	_ = c.Present(screen)
	if r.Images[0].Fills != fills+1 {
		t.Error("Expected redraw after invalidate")
	}
	if len(r.Images[0].Calls) != 3 {
		t.Errorf("Expected 3 draw calls, got %d", len(r.Images[0].Calls))
	}

	// Resize
	bigger := rendertest.NewImage(400, 300)
	_ = c.Present(bigger)
	if len(r.Images) != 2 {
		t.Fatalf("Expected a new texture after resize, got %d", len(r.Images))
	}
	if !r.Images[0].Disposed {
		t.Error("Expected old texture to be disposed")
	}
	if w, h := c.SurfaceSize(); w != 400 || h != 300 {
		t.Errorf("Expected surface size 400x300, got %dx%d", w, h)
	}
}

func TestRedrawZeroSize(t *testing.T) {
	c, r := newController(t, seededStore(t))
	if err := c.Redraw(0, 0); err != nil {
		t.Fatalf("Redraw failed: %v", err)
	}
	if len(r.Images) != 0 {
		t.Errorf("Expected no texture for empty surface, got %d", len(r.Images))
	}
	if err := c.Present(rendertest.NewImage(0, 0)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
}

func TestRedrawZeroSizeDropsOldTexture(t *testing.T) {
	c, r := newController(t, seededStore(t))
	if err := c.Present(rendertest.NewImage(320, 240)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	empty := rendertest.NewImage(0, 0)
	if err := c.Present(empty); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if !r.Images[0].Disposed {
		t.Error("Expected texture to be disposed for an empty surface")
	}
	if len(empty.Blits) != 0 {
		t.Errorf("Expected no blit onto an empty surface, got %d", len(empty.Blits))
	}

	// Growing again allocates a fresh texture
	screen := rendertest.NewImage(320, 240)
	if err := c.Present(screen); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if len(r.Images) != 2 {
		t.Fatalf("Expected a new texture, got %d allocations", len(r.Images))
	}
	if len(screen.Blits) != 1 || screen.Blits[0] != r.Images[1] {
		t.Error("Expected the new texture to be blitted")
	}
}
