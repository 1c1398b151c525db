// Package geom provides the rectilinear primitives the mosaic is built on:
// integer points, half-open rectangles and axis-aligned line segments.
package geom

import (
	"errors"
	"fmt"
	"image"
)

// Point is a location on the integer grid.
type Point = image.Point

// Rect is a half-open rectangle [Min.X, Max.X) x [Min.Y, Max.Y).
type Rect = image.Rectangle

var ErrDegenerateLine = errors.New("geom: degenerate line")

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return image.Pt(x, y)
}

// R returns the rectangle with lower-left corner (xl, yl) and upper-right corner (xh, yh).
// The corners are not swapped, so callers can detect inverted input with Empty.
func R(xl, yl, xh, yh int) Rect {
	return Rect{Min: Pt(xl, yl), Max: Pt(xh, yh)}
}

// FormatRect renders r as "R[(xl, yl), w, h, (xh, yh)]".
func FormatRect(r Rect) string {
	return fmt.Sprintf("R[(%d, %d), %d, %d, (%d, %d)]",
		r.Min.X, r.Min.Y, r.Dx(), r.Dy(), r.Max.X, r.Max.Y)
}

// Within reports whether inner is non-empty and lies entirely inside outer.
func Within(inner, outer Rect) bool {
	return !inner.Empty() && inner.In(outer)
}
