package geometry

// Point represents a 2D point in pixel space (origin top-left, y down).
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Quad is the outline of a thick segment, ordered for a triangle fan:
// vertices 0,1,2 and 0,2,3 form the two triangles.
type Quad [4]Point

// Center returns the average of the four vertices.
func (q Quad) Center() Point {
	var c Point
	for _, v := range q {
		c = c.Add(v)
	}
	return c.Scale(0.25)
}
