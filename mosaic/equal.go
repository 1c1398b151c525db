package mosaic

import (
	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// Equal reports whether both mosaics describe the same tiling: the same
// canvas, the same tiles of each type and the same stitches between them.
// Tile IDs are not compared.
func (m *Mosaic) Equal(other *Mosaic) bool {
	if m.width != other.width || m.height != other.height || m.Len() != other.Len() {
		return false
	}

	byCorner := make(map[geom.Point]tile.ID, other.Len())
	for i := range other.tiles {
		if t := &other.tiles[i]; t.live {
			byCorner[t.LowerLeft()] = tile.ID(i)
		}
	}

	// counterpart maps an ID of m to the ID of the tile with the same
	// lower-left corner in other.
	counterpart := func(id tile.ID) (tile.ID, bool) {
		if id == tile.None {
			return tile.None, true
		}
		o, ok := byCorner[m.tiles[id].LowerLeft()]
		return o, ok
	}

	for i := range m.tiles {
		t := &m.tiles[i]
		if !t.live {
			continue
		}
		o, ok := counterpart(tile.ID(i))
		if !ok {
			return false
		}
		u := &other.tiles[o]
		if t.Rect != u.Rect || t.Type != u.Type {
			return false
		}
		for _, link := range [][2]tile.ID{
			{t.Top, u.Top},
			{t.Right, u.Right},
			{t.Left, u.Left},
			{t.Bottom, u.Bottom},
		} {
			if want, ok := counterpart(link[0]); !ok || want != link[1] {
				return false
			}
		}
	}
	return true
}
