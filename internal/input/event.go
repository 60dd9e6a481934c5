// Package input turns user actions into polyline appends.
package input

import "fmt"

// Event is a user request to append a segment.
type Event interface {
	isEvent()
	String() string
}

// RandomClick appends a segment ending at a random point on the surface.
type RandomClick struct{}

// CustomCoordinates appends a segment ending at typed coordinates.
type CustomCoordinates struct {
	X, Y float64
}

// CanvasClick appends a segment ending where the surface was clicked, in
// surface-local coordinates.
type CanvasClick struct {
	X, Y float64
}

func (RandomClick) isEvent()       {}
func (CustomCoordinates) isEvent() {}
func (CanvasClick) isEvent()       {}

func (RandomClick) String() string { return "random" }

func (e CustomCoordinates) String() string {
	return fmt.Sprintf("coordinates (%.1f, %.1f)", e.X, e.Y)
}

func (e CanvasClick) String() string {
	return fmt.Sprintf("click (%.1f, %.1f)", e.X, e.Y)
}
