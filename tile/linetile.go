package tile

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
)

var ErrMisalignedLine = errors.New("tile: line does not lie on tile")

// Direction tells on which side of a line a matched tile lies.
type Direction uint8

const (
	// Center means the line crosses the interior of the tile.
	Center Direction = iota
	// Down means the line runs along the top edge, the tile is below it.
	Down
	// Up means the line runs along the bottom edge, the tile is above it.
	Up
	// Left means the line runs along the right edge, the tile is left of it.
	Left
	// Right means the line runs along the left edge, the tile is right of it.
	Right
)

func (d Direction) String() string {
	switch d {
	case Center:
		return "CENTRE"
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// LineTile is the part of a query line matched against a single tile.
type LineTile struct {
	Line      geom.Line
	ID        ID
	Tile      Tile
	Direction Direction
}

// NewLineTile matches line against t. The line must lie within the closed
// extent of the tile along its axis and on or inside the tile across it.
func NewLineTile(line geom.Line, id ID, t Tile) (LineTile, error) {
	lt := LineTile{Line: line, ID: id, Tile: t}
	lo, hi := line.Span()
	at := line.Offset()

	var spanLo, spanHi, crossLo, crossHi int
	var onHigh, onLow Direction
	if line.Orientation == geom.Horizontal {
		spanLo, spanHi, crossLo, crossHi = t.XLow(), t.XHigh(), t.YLow(), t.YHigh()
		onHigh, onLow = Down, Up
	} else {
		spanLo, spanHi, crossLo, crossHi = t.YLow(), t.YHigh(), t.XLow(), t.XHigh()
		onHigh, onLow = Left, Right
	}

	if lo < spanLo || hi > spanHi || at < crossLo || at > crossHi {
		return LineTile{}, fmt.Errorf("%w: %v vs %v", ErrMisalignedLine, line, t)
	}

	switch at {
	case crossHi:
		lt.Direction = onHigh
	case crossLo:
		lt.Direction = onLow
	default:
		lt.Direction = Center
	}
	return lt, nil
}

func (lt LineTile) String() string {
	return fmt.Sprintf("LT[%v, %v, %v]", lt.Line, lt.Direction, lt.Tile)
}
