package mosaic

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// TilesAlongLine splits line by the tiles on each of its sides.
//
// For a horizontal line, positive holds the tiles above or crossed by it and
// negative the tiles below or crossed by it, both ordered by increasing x.
// For a vertical line, positive holds the tiles right of it and negative the
// tiles left of it, ordered by increasing y. A side lying outside the canvas
// is reported empty.
func (m *Mosaic) TilesAlongLine(line geom.Line) (positive, negative []tile.LineTile, err error) {
	if line.Length() <= 0 {
		return nil, nil, fmt.Errorf("%w: %v", ErrDegenerateLine, line)
	}
	if line.Low.X < 0 || line.Low.Y < 0 || line.High.X > m.width || line.High.Y > m.height {
		return nil, nil, fmt.Errorf("%w: line %v", ErrOutOfCanvas, line)
	}

	at := line.Offset()
	var posCell, negCell func(pos int) geom.Point
	var limit int
	if line.Orientation == geom.Horizontal {
		posCell = func(x int) geom.Point { return geom.Pt(x, at) }
		negCell = func(x int) geom.Point { return geom.Pt(x, at-1) }
		limit = m.height
	} else {
		posCell = func(y int) geom.Point { return geom.Pt(at, y) }
		negCell = func(y int) geom.Point { return geom.Pt(at-1, y) }
		limit = m.width
	}

	if at < limit {
		if positive, err = m.lineSide(line, posCell); err != nil {
			return nil, nil, err
		}
	}
	if at > 0 {
		if negative, err = m.lineSide(line, negCell); err != nil {
			return nil, nil, err
		}
	}
	return positive, negative, nil
}

// lineSide steps along line through the tiles containing cell(pos).
func (m *Mosaic) lineSide(line geom.Line, cell func(pos int) geom.Point) ([]tile.LineTile, error) {
	var matches []tile.LineTile
	lo, hi := line.Span()
	id := m.start()
	for pos := lo; pos < hi; {
		id = m.locate(id, cell(pos))
		t := m.tiles[id].Tile

		end := t.XHigh()
		if line.Orientation == geom.Vertical {
			end = t.YHigh()
		}

		lt, err := tile.NewLineTile(line.Clip(pos, end), id, t)
		if err != nil {
			return nil, err
		}
		matches = append(matches, lt)
		pos = end
	}
	return matches, nil
}
