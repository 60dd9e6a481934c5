package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/thickline/internal/render"
)

func quadVertices() []render.Vertex {
	return []render.Vertex{
		{DstX: 0, DstY: 2, ColorA: 1},
		{DstX: 10, DstY: 2, ColorA: 1},
		{DstX: 10, DstY: -2, ColorA: 1},
		{DstX: 0, DstY: -2, ColorA: 1},
	}
}

func TestAppendVerticesConverts(t *testing.T) {
	src := quadVertices()
	src[1].ColorR = 0.5

	got := appendVertices(nil, src)
	if len(got) != len(src) {
		t.Fatalf("Expected %d vertices, got %d", len(src), len(got))
	}
	for i, v := range src {
		want := ebiten.Vertex{DstX: v.DstX, DstY: v.DstY, ColorR: v.ColorR, ColorG: v.ColorG, ColorB: v.ColorB, ColorA: v.ColorA}
		if got[i] != want {
			t.Errorf("Vertex %d: expected %+v, got %+v", i, want, got[i])
		}
	}
}

func TestAppendVerticesReusesBuffer(t *testing.T) {
	src := quadVertices()
	buf := appendVertices(nil, src)
	first := &buf[0]

	allocs := testing.AllocsPerRun(100, func() {
		buf = appendVertices(buf[:0], src)
	})
	if allocs != 0 {
		t.Errorf("Expected no allocations when reusing the buffer, got %.1f", allocs)
	}
	if &buf[0] != first {
		t.Error("Expected the same backing array across calls")
	}
}
