// Package tile provides the tile record shared by the mosaic, its dump writers
// and its diagnostics.
package tile

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
)

// ID is the index of a tile inside the arena owned by its mosaic.
// IDs are only meaningful for the mosaic that issued them and may be reused
// after the tile is merged away or removed.
type ID int32

// None marks an absent link: the edge lies on the canvas border.
const None ID = -1

func (id ID) Valid() bool {
	return id >= 0
}

// Type tags what a tile represents.
type Type uint8

const (
	Empty Type = iota
	Occupied
	Overlap
)

func (t Type) Valid() bool {
	return t <= Overlap
}

func (t Type) String() string {
	switch t {
	case Empty:
		return "EMPTY"
	case Occupied:
		return "OCCUPIED"
	case Overlap:
		return "OVERLAP"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType is the inverse of Type.String. It also accepts the legacy dump
// names BLANK and BLOCK.
func ParseType(s string) (Type, error) {
	switch s {
	case "EMPTY", "BLANK":
		return Empty, nil
	case "OCCUPIED", "BLOCK":
		return Occupied, nil
	case "OVERLAP":
		return Overlap, nil
	}
	return 0, fmt.Errorf("tile: unknown type %q", s)
}

// Tile is a rectangle of the mosaic together with its four corner stitches.
//
// Top is the rightmost tile along the top edge, Right the topmost tile along
// the right edge, Left the bottommost tile along the left edge and Bottom the
// leftmost tile along the bottom edge.
type Tile struct {
	Rect geom.Rect
	Type Type

	Top    ID
	Right  ID
	Left   ID
	Bottom ID
}

func (t Tile) XLow() int  { return t.Rect.Min.X }
func (t Tile) XHigh() int { return t.Rect.Max.X }
func (t Tile) YLow() int  { return t.Rect.Min.Y }
func (t Tile) YHigh() int { return t.Rect.Max.Y }

func (t Tile) Width() int  { return t.Rect.Dx() }
func (t Tile) Height() int { return t.Rect.Dy() }
func (t Tile) Area() int   { return t.Rect.Dx() * t.Rect.Dy() }

// AspectRatio returns height over width.
func (t Tile) AspectRatio() float64 {
	return float64(t.Height()) / float64(t.Width())
}

func (t Tile) LowerLeft() geom.Point  { return t.Rect.Min }
func (t Tile) UpperRight() geom.Point { return t.Rect.Max }
func (t Tile) UpperLeft() geom.Point  { return geom.Pt(t.Rect.Min.X, t.Rect.Max.Y) }
func (t Tile) LowerRight() geom.Point { return geom.Pt(t.Rect.Max.X, t.Rect.Min.Y) }

// Contains reports whether p lies in the half-open rectangle of the tile.
func (t Tile) Contains(p geom.Point) bool {
	return p.In(t.Rect)
}

// String renders the tile as "T[TYPE, R[(xl, yl), w, h, (xh, yh)]]".
func (t Tile) String() string {
	return fmt.Sprintf("T[%v, %v]", t.Type, geom.FormatRect(t.Rect))
}

// Writer defines an interface for writing a snapshot of a mosaic.
type Writer interface {
	// WriteTile writes a single tile. Links refer to IDs passed to other
	// WriteTile calls of the same snapshot.
	WriteTile(id ID, t Tile) error

	// Finalize completes the writing process: resolves links, orders and flushes records.
	// It must be called before closing the Writer.
	Finalize() error
}

type Visitor interface {
	// VisitTiles visits all live tiles, calling the visitor for each.
	// Iteration stops at the first error returned by the visitor.
	VisitTiles(visitor func(ID, Tile) error) error
}
