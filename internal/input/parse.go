package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"chosenoffset.com/thickline/internal/core/geometry"
)

// DefaultWidth is used when the width field does not hold a usable number.
const DefaultWidth = 1.0

// ParseError reports text input that is not a usable number.
type ParseError struct {
	Field string
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Msg)
}

// ParseWidth parses the width field, falling back to DefaultWidth for empty,
// malformed, non-finite or non-positive values.
func ParseWidth(s string) float64 {
	w, err := parseFinite(strings.TrimSpace(s))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// ParseCoordinates parses "x,y" into a point. Whitespace around each
// component is ignored.
func ParseCoordinates(s string) (geometry.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Point{}, &ParseError{Field: "coordinates", Input: s, Msg: "expected x,y"}
	}

	x, err := parseFinite(strings.TrimSpace(parts[0]))
	if err != nil {
		return geometry.Point{}, &ParseError{Field: "coordinates", Input: s, Msg: "x is not a number"}
	}
	y, err := parseFinite(strings.TrimSpace(parts[1]))
	if err != nil {
		return geometry.Point{}, &ParseError{Field: "coordinates", Input: s, Msg: "y is not a number"}
	}

	return geometry.Point{X: x, Y: y}, nil
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
