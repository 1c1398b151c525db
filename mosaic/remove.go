package mosaic

import (
	"fmt"
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// Remove deletes a registered occupant and restores the empty strips around it.
func (m *Mosaic) Remove(id tile.ID) error {
	if err := m.checkID(id); err != nil {
		return err
	}
	t := m.tiles[id].Tile
	if t.Type == tile.Empty {
		return fmt.Errorf("%w: %v is empty", ErrTileNotRegistered, t)
	}
	if got, ok := m.occupants[t.LowerLeft()]; !ok || got != id {
		return fmt.Errorf("%w: %v", ErrTileNotRegistered, t)
	}

	if len(m.occupants) == 1 {
		m.Reset()
	} else {
		m.remove(id)
	}

	m.logger.Debug("mosaic: remove", "rect", t.Rect, "type", t.Type, "tiles", m.Len())
	return nil
}

// band is a horizontal slice [y0, y1) of a removed tile whose maximal empty
// row extent is [x0, x1).
type band struct {
	y0, y1 int
	x0, x1 int
}

// profile computes the bands of dead, top to bottom. Empty left neighbors
// extend a band to their left edge, empty right neighbors to their right edge.
// Consecutive bands with equal extent are coalesced.
func (m *Mosaic) profile(dead tile.ID) []band {
	d := m.tiles[dead].Tile

	cuts := []int{d.YLow(), d.YHigh()}
	for _, n := range m.leftOf(dead) {
		cuts = append(cuts, m.tiles[n].YLow(), m.tiles[n].YHigh())
	}
	for _, n := range m.rightOf(dead) {
		cuts = append(cuts, m.tiles[n].YLow(), m.tiles[n].YHigh())
	}
	cuts = slices.DeleteFunc(cuts, func(y int) bool { return y < d.YLow() || y > d.YHigh() })
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	var bands []band
	for i := len(cuts) - 1; i > 0; i-- {
		y0, y1 := cuts[i-1], cuts[i]
		b := band{y0: y0, y1: y1, x0: d.XLow(), x1: d.XHigh()}
		if d.XLow() > 0 {
			if l := m.locate(dead, geom.Pt(d.XLow()-1, y0)); m.tiles[l].Type == tile.Empty {
				b.x0 = m.tiles[l].XLow()
			}
		}
		if d.XHigh() < m.width {
			if r := m.locate(dead, geom.Pt(d.XHigh(), y0)); m.tiles[r].Type == tile.Empty {
				b.x1 = m.tiles[r].XHigh()
			}
		}

		if k := len(bands) - 1; k >= 0 && bands[k].x0 == b.x0 && bands[k].x1 == b.x1 {
			bands[k].y0 = y0
			continue
		}
		bands = append(bands, b)
	}
	return bands
}

// remove turns id into empty space. The dead tile is cut into bands, each band
// absorbs the empty tiles beside it, and the outermost bands merge with
// aligned empty tiles above and below.
func (m *Mosaic) remove(id tile.ID) {
	m.unregister(id)
	m.tiles[id].Type = tile.Empty

	d := m.tiles[id].Tile
	bands := m.profile(id)

	piece := id
	top, bottom := tile.None, tile.None
	for i, b := range bands {
		rest := tile.None
		if yl := m.tiles[piece].YLow(); yl < b.y0 {
			rest = m.cutHorizontally(piece, b.y0-yl)
		}
		piece = m.joinBand(piece, b, d)
		if i == 0 {
			top = piece
		}
		bottom = piece
		piece = rest
	}

	survivor := m.mergeWithAbove(top)
	if bottom == top {
		bottom = survivor
	}
	m.mergeWithBelow(bottom)
	m.hint = survivor
}

// joinBand merges the band piece of dead with the empty tiles on its left and
// right. It returns the surviving ID.
func (m *Mosaic) joinBand(piece tile.ID, b band, dead tile.Tile) tile.ID {
	if b.x0 < dead.XLow() {
		l := m.fitBand(m.locate(piece, geom.Pt(dead.XLow()-1, b.y0)), b)
		m.mergeHorizontally(l, piece)
		piece = l
	}
	if b.x1 > dead.XHigh() {
		r := m.fitBand(m.locate(piece, geom.Pt(dead.XHigh(), b.y0)), b)
		m.mergeHorizontally(piece, r)
	}
	return piece
}

// fitBand trims the rows of an empty tile to those of b and returns the part
// inside the band.
func (m *Mosaic) fitBand(id tile.ID, b band) tile.ID {
	if t := m.tiles[id].Tile; t.YHigh() > b.y1 {
		id = m.cutHorizontally(id, b.y1-t.YLow())
	}
	if yl := m.tiles[id].YLow(); yl < b.y0 {
		m.cutHorizontally(id, b.y0-yl)
	}
	return id
}
