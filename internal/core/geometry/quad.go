// Package geometry turns polyline segments into renderable quads.
package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateSegment is returned when a segment has no direction, so its
// normal is undefined. Callers skip such segments.
var ErrDegenerateSegment = errors.New("degenerate segment")

// ThickLineQuad computes the rectangle covering the segment p1->p2 with the
// given width. The rectangle's long axis follows the segment and its short
// axis equals width. No joint or cap geometry is produced.
func ThickLineQuad(p1, p2 Point, width float64) (Quad, error) {
	d := p2.Sub(p1)
	length := math.Hypot(d.X, d.Y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Quad{}, ErrDegenerateSegment
	}

	// Unit perpendicular to d, then half the width
	n := Point{X: -d.Y / length, Y: d.X / length}.Scale(width / 2)

	q := Quad{
		p1.Add(n),
		p2.Add(n),
		p2.Sub(n),
		p1.Sub(n),
	}
	for _, v := range q {
		if !finite(v.X) || !finite(v.Y) {
			return Quad{}, ErrDegenerateSegment
		}
	}
	return q, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ToNDC maps a pixel-space point onto normalized device coordinates for a
// viewport of the given size. The y axis is flipped so that pixel rows
// grow downward while NDC grows upward. Ebitengine applies this transform
// itself when vertices are submitted in pixels; ToNDC states it explicitly.
func ToNDC(p Point, width, height float64) Point {
	return Point{
		X: p.X/width*2 - 1,
		Y: -(p.Y/height*2 - 1),
	}
}
