package mosaic

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// cutHorizontally splits id at height yl+h. The new tile takes the lower part,
// id keeps the upper part. Both keep the type of id.
func (m *Mosaic) cutHorizontally(id tile.ID, h int) tile.ID {
	right := m.rightOf(id)
	left := m.leftOf(id)
	below := m.below(id)

	old := m.tiles[id].Tile
	split := old.YLow() + h

	lowRight := old.Right
	for lowRight != tile.None && m.tiles[lowRight].YLow() >= split {
		lowRight = m.tiles[lowRight].Bottom
	}
	upLeft := old.Left
	for upLeft != tile.None && m.tiles[upLeft].YHigh() <= split {
		upLeft = m.tiles[upLeft].Top
	}

	low := m.alloc(tile.Tile{
		Rect:   geom.R(old.XLow(), old.YLow(), old.XHigh(), split),
		Type:   old.Type,
		Top:    id,
		Right:  lowRight,
		Left:   old.Left,
		Bottom: old.Bottom,
	})

	t := &m.tiles[id]
	t.Rect.Min.Y = split
	t.Left = upLeft
	t.Bottom = low

	for _, n := range below {
		if m.tiles[n].Top == id {
			m.tiles[n].Top = low
		}
	}
	for _, n := range right {
		if m.tiles[n].Left == id && m.tiles[n].YLow() < split {
			m.tiles[n].Left = low
		}
	}
	for _, n := range left {
		if m.tiles[n].Right == id && m.tiles[n].YHigh() <= split {
			m.tiles[n].Right = low
		}
	}
	return low
}

// cutVertically splits id at abscissa xl+w. The new tile takes the left part,
// id keeps the right part. Both keep the type of id.
func (m *Mosaic) cutVertically(id tile.ID, w int) tile.ID {
	left := m.leftOf(id)
	above := m.above(id)
	below := m.below(id)

	old := m.tiles[id].Tile
	split := old.XLow() + w

	leftTop := old.Top
	for leftTop != tile.None && m.tiles[leftTop].XLow() >= split {
		leftTop = m.tiles[leftTop].Left
	}
	rightBottom := old.Bottom
	for rightBottom != tile.None && m.tiles[rightBottom].XHigh() <= split {
		rightBottom = m.tiles[rightBottom].Right
	}

	lt := m.alloc(tile.Tile{
		Rect:   geom.R(old.XLow(), old.YLow(), split, old.YHigh()),
		Type:   old.Type,
		Top:    leftTop,
		Right:  id,
		Left:   old.Left,
		Bottom: old.Bottom,
	})

	t := &m.tiles[id]
	t.Rect.Min.X = split
	t.Left = lt
	t.Bottom = rightBottom

	for _, n := range left {
		if m.tiles[n].Right == id {
			m.tiles[n].Right = lt
		}
	}
	for _, n := range above {
		if m.tiles[n].Bottom == id && m.tiles[n].XLow() < split {
			m.tiles[n].Bottom = lt
		}
	}
	for _, n := range below {
		if m.tiles[n].Top == id && m.tiles[n].XHigh() <= split {
			m.tiles[n].Top = lt
		}
	}
	return lt
}

// mergeVertically absorbs low into up, which must sit directly on top of it
// with the same horizontal extent. low is released.
func (m *Mosaic) mergeVertically(up, low tile.ID) {
	for _, n := range m.below(low) {
		if m.tiles[n].Top == low {
			m.tiles[n].Top = up
		}
	}
	for _, n := range m.leftOf(low) {
		if m.tiles[n].Right == low {
			m.tiles[n].Right = up
		}
	}
	for _, n := range m.rightOf(low) {
		if m.tiles[n].Left == low {
			m.tiles[n].Left = up
		}
	}

	l := m.tiles[low].Tile
	u := &m.tiles[up]
	u.Rect.Min.Y = l.YLow()
	u.Left = l.Left
	u.Bottom = l.Bottom

	m.release(low)
	if m.hint == low {
		m.hint = up
	}
}

// mergeHorizontally absorbs right into left, which must sit directly left of
// it with the same vertical extent. right is released.
func (m *Mosaic) mergeHorizontally(left, right tile.ID) {
	for _, n := range m.above(right) {
		if m.tiles[n].Bottom == right {
			m.tiles[n].Bottom = left
		}
	}
	for _, n := range m.rightOf(right) {
		if m.tiles[n].Left == right {
			m.tiles[n].Left = left
		}
	}
	for _, n := range m.below(right) {
		if m.tiles[n].Top == right {
			m.tiles[n].Top = left
		}
	}

	r := m.tiles[right].Tile
	l := &m.tiles[left]
	l.Rect.Max.X = r.XHigh()
	l.Top = r.Top
	l.Right = r.Right

	m.release(right)
	if m.hint == right {
		m.hint = left
	}
}

func (m *Mosaic) verticallyMergeable(up, low tile.ID) bool {
	u, l := &m.tiles[up], &m.tiles[low]
	return u.Type == l.Type &&
		u.XLow() == l.XLow() && u.XHigh() == l.XHigh() && u.YLow() == l.YHigh()
}

func (m *Mosaic) horizontallyMergeable(left, right tile.ID) bool {
	l, r := &m.tiles[left], &m.tiles[right]
	return l.Type == r.Type &&
		l.YLow() == r.YLow() && l.YHigh() == r.YHigh() && l.XHigh() == r.XLow()
}

// CutHorizontally splits a tile into a lower part of height lowerHeight,
// returned as a new tile, and an upper part that keeps the ID.
//
// Cutting an empty tile leaves the mosaic non-minimal; merge the parts back
// before calling Insert or Remove.
func (m *Mosaic) CutHorizontally(id tile.ID, lowerHeight int) (tile.ID, error) {
	if err := m.checkID(id); err != nil {
		return tile.None, err
	}
	if h := m.tiles[id].Height(); lowerHeight <= 0 || lowerHeight >= h {
		return tile.None, fmt.Errorf("%w: height %d of tile with height %d", ErrInvalidCut, lowerHeight, h)
	}

	occupied := m.tiles[id].Type != tile.Empty
	if occupied {
		m.unregister(id)
	}
	low := m.cutHorizontally(id, lowerHeight)
	if occupied {
		m.register(id)
		m.register(low)
	}
	m.logger.Debug("mosaic: cut horizontally", "upper", m.tiles[id].Rect, "lower", m.tiles[low].Rect)
	return low, nil
}

// CutVertically splits a tile into a left part of width leftWidth, returned as
// a new tile, and a right part that keeps the ID.
//
// Cutting an empty tile leaves the mosaic non-minimal; merge the parts back
// before calling Insert or Remove.
func (m *Mosaic) CutVertically(id tile.ID, leftWidth int) (tile.ID, error) {
	if err := m.checkID(id); err != nil {
		return tile.None, err
	}
	if w := m.tiles[id].Width(); leftWidth <= 0 || leftWidth >= w {
		return tile.None, fmt.Errorf("%w: width %d of tile with width %d", ErrInvalidCut, leftWidth, w)
	}

	occupied := m.tiles[id].Type != tile.Empty
	if occupied {
		m.unregister(id)
	}
	left := m.cutVertically(id, leftWidth)
	if occupied {
		m.register(id)
		m.register(left)
	}
	m.logger.Debug("mosaic: cut vertically", "left", m.tiles[left].Rect, "right", m.tiles[id].Rect)
	return left, nil
}

// MergeVertically joins two tiles of the same type and horizontal extent,
// where up lies directly on top of low. The result keeps the ID of up.
func (m *Mosaic) MergeVertically(up, low tile.ID) (tile.ID, error) {
	if err := m.checkID(up); err != nil {
		return tile.None, err
	}
	if err := m.checkID(low); err != nil {
		return tile.None, err
	}
	if up == low || !m.verticallyMergeable(up, low) {
		return tile.None, fmt.Errorf("%w: %v over %v", ErrNotMergeable, m.tiles[up].Tile, m.tiles[low].Tile)
	}

	occupied := m.tiles[up].Type != tile.Empty
	if occupied {
		m.unregister(up)
		m.unregister(low)
	}
	m.mergeVertically(up, low)
	if occupied {
		m.register(up)
	}
	return up, nil
}

// MergeHorizontally joins two tiles of the same type and vertical extent,
// where left lies directly left of right. The result keeps the ID of left.
func (m *Mosaic) MergeHorizontally(left, right tile.ID) (tile.ID, error) {
	if err := m.checkID(left); err != nil {
		return tile.None, err
	}
	if err := m.checkID(right); err != nil {
		return tile.None, err
	}
	if left == right || !m.horizontallyMergeable(left, right) {
		return tile.None, fmt.Errorf("%w: %v beside %v", ErrNotMergeable, m.tiles[left].Tile, m.tiles[right].Tile)
	}

	if m.tiles[right].Type != tile.Empty {
		m.unregister(right)
	}
	m.mergeHorizontally(left, right)
	return left, nil
}
