package mosaic

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// Insert places a new occupant of the given type covering r, which must lie
// inside the canvas and contain no other occupant. It returns the ID of the
// new tile.
func (m *Mosaic) Insert(r geom.Rect, typ tile.Type) (tile.ID, error) {
	if typ == tile.Empty || !typ.Valid() {
		return tile.None, fmt.Errorf("%w: cannot insert %v", ErrInvalidType, typ)
	}
	if !m.RectInCanvas(r) {
		return tile.None, fmt.Errorf("%w: rect %v", ErrOutOfCanvas, r)
	}
	if id, found := m.searchArea(r); found {
		return tile.None, fmt.Errorf("%w: %v intersects %v", ErrRegionOccupied, r, m.tiles[id].Tile)
	}

	var id tile.ID
	if len(m.occupants) == 0 {
		id = m.insertFirst(r, typ)
	} else {
		id = m.insert(r, typ)
	}
	m.register(id)
	m.hint = id

	m.logger.Debug("mosaic: insert", "rect", r, "type", typ, "tiles", m.Len())
	return id, nil
}

// insertFirst rebuilds the mosaic as r surrounded by up to four empty tiles:
// full-width strips above and below, and the left and right remainders.
func (m *Mosaic) insertFirst(r geom.Rect, typ tile.Type) tile.ID {
	m.Reset()
	center := m.hint
	m.tiles[center].Rect = r
	m.tiles[center].Type = typ

	blank := func(rect geom.Rect) tile.ID {
		return m.alloc(tile.Tile{
			Rect:   rect,
			Type:   tile.Empty,
			Top:    tile.None,
			Right:  tile.None,
			Left:   tile.None,
			Bottom: tile.None,
		})
	}

	top, bottom, left, right := tile.None, tile.None, tile.None, tile.None
	if r.Max.Y < m.height {
		top = blank(geom.R(0, r.Max.Y, m.width, m.height))
	}
	if r.Min.Y > 0 {
		bottom = blank(geom.R(0, 0, m.width, r.Min.Y))
	}
	if r.Min.X > 0 {
		left = blank(geom.R(0, r.Min.Y, r.Min.X, r.Max.Y))
	}
	if r.Max.X < m.width {
		right = blank(geom.R(r.Max.X, r.Min.Y, m.width, r.Max.Y))
	}

	c := &m.tiles[center]
	c.Top, c.Right, c.Left, c.Bottom = top, right, left, bottom

	if top != tile.None {
		m.tiles[top].Bottom = center
		if left != tile.None {
			m.tiles[top].Bottom = left
		}
	}
	if bottom != tile.None {
		m.tiles[bottom].Top = center
		if right != tile.None {
			m.tiles[bottom].Top = right
		}
	}
	if left != tile.None {
		l := &m.tiles[left]
		l.Top, l.Right, l.Bottom = top, center, bottom
	}
	if right != tile.None {
		rt := &m.tiles[right]
		rt.Top, rt.Left, rt.Bottom = top, center, bottom
	}
	return center
}

// insert carves r out of the empty strips it covers. The strips are split at
// the top and bottom edges of r, then each strip is cut into a left
// remainder, a centre piece and a right remainder. Centre pieces are merged
// into the new tile, remainders are merged with aligned empty tiles above and
// below them.
func (m *Mosaic) insert(r geom.Rect, typ tile.Type) tile.ID {
	if r.Max.Y < m.height {
		t := m.locate(m.start(), geom.Pt(r.Min.X, r.Max.Y))
		if yl := m.tiles[t].YLow(); yl != r.Max.Y {
			m.cutHorizontally(t, r.Max.Y-yl)
		}
	}
	if r.Min.Y > 0 {
		t := m.locate(m.start(), geom.Pt(r.Min.X, r.Min.Y-1))
		if yl, yh := m.tiles[t].YLow(), m.tiles[t].YHigh(); yh != r.Min.Y {
			m.cutHorizontally(t, r.Min.Y-yl)
		}
	}

	result := tile.None
	lastLeft, lastRight := tile.None, tile.None
	strip := m.locate(m.start(), geom.Pt(r.Min.X, r.Max.Y-1))
	for {
		lastLeft, lastRight = tile.None, tile.None

		if xl := m.tiles[strip].XLow(); xl < r.Min.X {
			lastLeft = m.cutVertically(strip, r.Min.X-xl)
		}
		if xl, xh := m.tiles[strip].XLow(), m.tiles[strip].XHigh(); xh > r.Max.X {
			lastRight = strip
			strip = m.cutVertically(strip, r.Max.X-xl)
		}

		yl := m.tiles[strip].YLow()
		if result == tile.None {
			result = strip
		} else {
			m.mergeVertically(result, strip)
		}

		lastLeft = m.mergeWithAbove(lastLeft)
		lastRight = m.mergeWithAbove(lastRight)

		if yl <= r.Min.Y {
			break
		}
		strip = m.locate(result, geom.Pt(r.Min.X, yl-1))
	}

	m.mergeWithBelow(lastLeft)
	m.mergeWithBelow(lastRight)

	m.tiles[result].Type = typ
	return result
}

// mergeWithAbove merges an empty tile into the tile on top of it when both
// span the same columns. It returns the surviving ID.
func (m *Mosaic) mergeWithAbove(id tile.ID) tile.ID {
	if id == tile.None {
		return id
	}
	up := m.tiles[id].Top
	if up == tile.None || m.tiles[up].Type != tile.Empty || !m.verticallyMergeable(up, id) {
		return id
	}
	m.mergeVertically(up, id)
	return up
}

// mergeWithBelow merges the empty tile below id into id when both span the
// same columns. It returns the surviving ID.
func (m *Mosaic) mergeWithBelow(id tile.ID) tile.ID {
	if id == tile.None {
		return id
	}
	low := m.tiles[id].Bottom
	if low == tile.None || m.tiles[low].Type != tile.Empty || !m.verticallyMergeable(id, low) {
		return id
	}
	m.mergeVertically(id, low)
	return id
}
