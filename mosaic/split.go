package mosaic

import (
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// SplitRegion carves r out of tile id without merging anything. The parts of
// the tile above, below, right and left of r become separate tiles of the same
// type, returned in that order. The returned center tile covers exactly r and
// need not keep the original ID.
func (m *Mosaic) SplitRegion(id tile.ID, r geom.Rect) (center tile.ID, remainders []tile.ID, err error) {
	if err := m.checkID(id); err != nil {
		return tile.None, nil, err
	}
	t := m.tiles[id].Tile
	if !geom.Within(r, t.Rect) {
		return tile.None, nil, fmt.Errorf("%w: %v is not inside %v", ErrInvalidCut, r, t)
	}

	occupied := t.Type != tile.Empty
	if occupied {
		m.unregister(id)
	}

	center = id
	if r.Max.Y < t.YHigh() {
		remainders = append(remainders, center)
		center = m.cutHorizontally(center, r.Max.Y-t.YLow())
	}
	if r.Min.Y > t.YLow() {
		remainders = append(remainders, m.cutHorizontally(center, r.Min.Y-t.YLow()))
	}
	if r.Max.X < t.XHigh() {
		remainders = append(remainders, center)
		center = m.cutVertically(center, r.Max.X-t.XLow())
	}
	if r.Min.X > t.XLow() {
		remainders = append(remainders, m.cutVertically(center, r.Min.X-t.XLow()))
	}

	if occupied {
		m.register(center)
		for _, n := range remainders {
			m.register(n)
		}
	}
	m.hint = center

	m.logger.Debug("mosaic: split region", "tile", t.Rect, "rect", r, "remainders", len(remainders))
	return center, remainders, nil
}
