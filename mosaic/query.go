package mosaic

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// FindTile returns the tile containing p.
func (m *Mosaic) FindTile(p geom.Point) (tile.ID, error) {
	if !m.PointInCanvas(p) {
		return tile.None, fmt.Errorf("%w: point %v", ErrOutOfCanvas, p)
	}
	id := m.locate(m.start(), p)
	m.hint = id
	return id, nil
}

// locate walks from id to the tile containing p, which must be inside the canvas.
func (m *Mosaic) locate(id tile.ID, p geom.Point) tile.ID {
	for {
		t := &m.tiles[id]
		switch {
		case p.Y >= t.YHigh():
			id = t.Top
		case p.Y < t.YLow():
			id = t.Bottom
		case p.X >= t.XHigh():
			id = t.Right
		case p.X < t.XLow():
			id = t.Left
		default:
			return id
		}
		if id == tile.None {
			panic(fmt.Sprintf("mosaic: broken stitch while locating %v", p))
		}
	}
}

// walk collects tiles starting at first and following next while more holds
// for the tile just collected.
func (m *Mosaic) walk(first tile.ID, next func(*tile.Tile) tile.ID, more func(*tile.Tile) bool) []tile.ID {
	var ids []tile.ID
	for id := first; id != tile.None; {
		ids = append(ids, id)
		n := &m.tiles[id].Tile
		if !more(n) {
			break
		}
		id = next(n)
	}
	return ids
}

func stepTop(t *tile.Tile) tile.ID    { return t.Top }
func stepRight(t *tile.Tile) tile.ID  { return t.Right }
func stepLeft(t *tile.Tile) tile.ID   { return t.Left }
func stepBottom(t *tile.Tile) tile.ID { return t.Bottom }

// above lists the tiles touching the top edge of id from right to left.
func (m *Mosaic) above(id tile.ID) []tile.ID {
	xl := m.tiles[id].XLow()
	startsRightOfEdge := func(n *tile.Tile) bool { return n.XLow() > xl }
	return m.walk(m.tiles[id].Top, stepLeft, startsRightOfEdge)
}

// below lists the tiles touching the bottom edge of id from left to right.
func (m *Mosaic) below(id tile.ID) []tile.ID {
	xh := m.tiles[id].XHigh()
	endsLeftOfEdge := func(n *tile.Tile) bool { return n.XHigh() < xh }
	return m.walk(m.tiles[id].Bottom, stepRight, endsLeftOfEdge)
}

// leftOf lists the tiles touching the left edge of id from bottom to top.
func (m *Mosaic) leftOf(id tile.ID) []tile.ID {
	yh := m.tiles[id].YHigh()
	endsBelowEdge := func(n *tile.Tile) bool { return n.YHigh() < yh }
	return m.walk(m.tiles[id].Left, stepTop, endsBelowEdge)
}

// rightOf lists the tiles touching the right edge of id from top to bottom.
func (m *Mosaic) rightOf(id tile.ID) []tile.ID {
	yl := m.tiles[id].YLow()
	startsAboveEdge := func(n *tile.Tile) bool { return n.YLow() > yl }
	return m.walk(m.tiles[id].Right, stepBottom, startsAboveEdge)
}

// NeighborsAbove returns the tiles touching the top edge, ordered right to left.
func (m *Mosaic) NeighborsAbove(id tile.ID) ([]tile.ID, error) {
	if err := m.checkID(id); err != nil {
		return nil, err
	}
	return m.above(id), nil
}

// NeighborsBelow returns the tiles touching the bottom edge, ordered left to right.
func (m *Mosaic) NeighborsBelow(id tile.ID) ([]tile.ID, error) {
	if err := m.checkID(id); err != nil {
		return nil, err
	}
	return m.below(id), nil
}

// NeighborsLeft returns the tiles touching the left edge, ordered bottom to top.
func (m *Mosaic) NeighborsLeft(id tile.ID) ([]tile.ID, error) {
	if err := m.checkID(id); err != nil {
		return nil, err
	}
	return m.leftOf(id), nil
}

// NeighborsRight returns the tiles touching the right edge, ordered top to bottom.
func (m *Mosaic) NeighborsRight(id tile.ID) ([]tile.ID, error) {
	if err := m.checkID(id); err != nil {
		return nil, err
	}
	return m.rightOf(id), nil
}

// Neighbors returns the tiles sharing an edge segment with id: above, left,
// below and then right, each group in the order of its directional query.
func (m *Mosaic) Neighbors(id tile.ID) ([]tile.ID, error) {
	if err := m.checkID(id); err != nil {
		return nil, err
	}
	var ids []tile.ID
	ids = append(ids, m.above(id)...)
	ids = append(ids, m.leftOf(id)...)
	ids = append(ids, m.below(id)...)
	ids = append(ids, m.rightOf(id)...)
	return ids, nil
}

// HasOccupant reports whether any non-empty tile intersects r.
func (m *Mosaic) HasOccupant(r geom.Rect) (bool, error) {
	_, found, err := m.FindOccupant(r)
	return found, err
}

// FindOccupant returns some non-empty tile intersecting r, if any.
func (m *Mosaic) FindOccupant(r geom.Rect) (tile.ID, bool, error) {
	if !m.RectInCanvas(r) {
		return tile.None, false, fmt.Errorf("%w: rect %v", ErrOutOfCanvas, r)
	}
	id, found := m.searchArea(r)
	return id, found, nil
}

// searchArea walks down the left edge of r. Since empty tiles are maximal
// strips, an empty tile ending before the right edge of r is followed by an
// occupant inside r.
func (m *Mosaic) searchArea(r geom.Rect) (tile.ID, bool) {
	id := m.locate(m.start(), geom.Pt(r.Min.X, r.Max.Y-1))
	for {
		t := &m.tiles[id]
		if t.Type != tile.Empty {
			return id, true
		}
		if t.XHigh() < r.Max.X {
			return m.locate(id, geom.Pt(t.XHigh(), max(t.YLow(), r.Min.Y))), true
		}
		if t.YLow() <= r.Min.Y {
			return tile.None, false
		}
		id = m.locate(id, geom.Pt(r.Min.X, t.YLow()-1))
	}
}

// EnumerateOccupants returns every non-empty tile intersecting r exactly once,
// starting from the top-left of the area.
func (m *Mosaic) EnumerateOccupants(r geom.Rect) ([]tile.ID, error) {
	if !m.RectInCanvas(r) {
		return nil, fmt.Errorf("%w: rect %v", ErrOutOfCanvas, r)
	}

	var found []tile.ID
	var stack []tile.ID

	// ownsLowerLeft reports whether n is enumerated through t: either the
	// lower-left corner of n touches t, or the bottom of r cuts both tiles.
	ownsLowerLeft := func(t, n *tile.Tile) bool {
		if n.YLow() >= t.YLow() {
			return true
		}
		return t.YLow() <= r.Min.Y && r.Min.Y < t.YHigh() &&
			n.YLow() <= r.Min.Y && r.Min.Y < n.YHigh()
	}
	intersects := func(n *tile.Tile) bool {
		return n.YLow() < r.Max.Y && n.YHigh() > r.Min.Y
	}

	edge := m.locate(m.start(), geom.Pt(r.Min.X, r.Max.Y-1))
	for {
		stack = append(stack, edge)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			t := &m.tiles[id].Tile
			if t.Type != tile.Empty {
				found = append(found, id)
			}
			if t.XHigh() >= r.Max.X {
				continue
			}
			// Right neighbors come top to bottom, push them reversed so the
			// topmost one is visited first.
			right := m.rightOf(id)
			for i := len(right) - 1; i >= 0; i-- {
				n := &m.tiles[right[i]].Tile
				if intersects(n) && ownsLowerLeft(t, n) {
					stack = append(stack, right[i])
				}
			}
		}

		yl := m.tiles[edge].YLow()
		if yl <= r.Min.Y {
			break
		}
		edge = m.locate(edge, geom.Pt(r.Min.X, yl-1))
	}
	return found, nil
}
