// Package geometry builds the outlines the sketch draws: skewed rectangles
// and regular polygons, in local coordinates around the origin.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRadius = errors.New("polygon radius must be positive")
	ErrInvalidSides  = errors.New("polygon needs at least 3 sides")
)

// Point is a 2D position in canvas units.
type Point struct {
	X, Y float64
}

// Path is an ordered list of vertices.
type Path []Point

// Translate returns a copy of the path moved by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = Point{pt.X + dx, pt.Y + dy}
	}
	return out
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// SkewedRect returns the parallelogram whose top edge runs w units at deg
// degrees from the x axis and whose sides are h units tall. The result has
// five points, the last one closing back to the origin.
func SkewedRect(w, h, deg float64) Path {
	angle := DegToRad(deg)
	rx := math.Cos(angle) * w
	ry := math.Sin(angle) * w

	return Path{
		{0, 0},
		{rx, ry},
		{rx, ry + h},
		{0, h},
		{0, 0},
	}
}

// Polygon returns the vertices of a regular polygon inscribed in a circle of
// the given radius, starting at the top (0, -radius) and stepping clockwise
// on screen. The path is open: the caller closes it.
func Polygon(radius float64, sides int) (Path, error) {
	if radius <= 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("radius %g: %w", radius, ErrInvalidRadius)
	}
	if sides < 3 {
		return nil, fmt.Errorf("%d sides: %w", sides, ErrInvalidSides)
	}

	slice := 2 * math.Pi / float64(sides)
	path := make(Path, 0, sides)
	path = append(path, Point{0, -radius})
	for i := 1; i < sides; i++ {
		angle := slice*float64(i) - math.Pi/2
		path = append(path, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return path, nil
}
