package mosaic

import (
	"errors"
	"fmt"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// SelfTest runs every structural check and joins their failures.
// It is quadratic in the number of tiles.
func (m *Mosaic) SelfTest() error {
	return errors.Join(
		m.CheckCoverage(),
		m.CheckLinkConsistency(),
		m.CheckMinimality(),
		m.CheckOccupantIndex(),
	)
}

func violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

// CheckCoverage verifies that the tiles lie inside the canvas and that their
// areas add up to the canvas area.
func (m *Mosaic) CheckCoverage() error {
	var errs []error
	area := 0
	for id, t := range tile.IterTiles(m) {
		if !m.RectInCanvas(t.Rect) {
			errs = append(errs, violation("tile %d %v is outside the canvas", id, t))
		}
		area += t.Area()
	}
	if want := m.width * m.height; area != want {
		errs = append(errs, violation("tiles cover %d of %d units", area, want))
	}
	return errors.Join(errs...)
}

// CheckLinkConsistency verifies that every stitch points at the live tile
// containing its anchor point, and that missing stitches lie on the canvas border.
func (m *Mosaic) CheckLinkConsistency() error {
	var errs []error
	for id, t := range tile.IterTiles(m) {
		for _, link := range []struct {
			name   string
			target tile.ID
			anchor geom.Point
		}{
			{"top", t.Top, geom.Pt(t.XHigh()-1, t.YHigh())},
			{"right", t.Right, geom.Pt(t.XHigh(), t.YHigh()-1)},
			{"left", t.Left, geom.Pt(t.XLow()-1, t.YLow())},
			{"bottom", t.Bottom, geom.Pt(t.XLow(), t.YLow()-1)},
		} {
			inCanvas := m.PointInCanvas(link.anchor)
			switch {
			case link.target == tile.None && inCanvas:
				errs = append(errs, violation("tile %d %v has no %s stitch", id, t, link.name))
			case link.target == tile.None:
			case !inCanvas:
				errs = append(errs, violation("tile %d %v has a %s stitch across the border", id, t, link.name))
			case m.checkID(link.target) != nil:
				errs = append(errs, violation("tile %d %v has a dangling %s stitch %d", id, t, link.name, link.target))
			case !m.tiles[link.target].Contains(link.anchor):
				errs = append(errs, violation("tile %d %v: %s stitch %v misses %v",
					id, t, link.name, m.tiles[link.target].Tile, link.anchor))
			}
		}
	}
	return errors.Join(errs...)
}

// CheckMinimality verifies that no two empty tiles share a whole edge.
func (m *Mosaic) CheckMinimality() error {
	var empty []tile.Tile
	for _, t := range tile.IterTiles(m) {
		if t.Type == tile.Empty {
			empty = append(empty, t)
		}
	}

	var errs []error
	for i, a := range empty {
		for _, b := range empty[i+1:] {
			if sharesEdge(a.Rect, b.Rect) {
				errs = append(errs, violation("empty tiles %v and %v share an edge", a, b))
			}
		}
	}
	return errors.Join(errs...)
}

func sharesEdge(a, b geom.Rect) bool {
	sameColumns := a.Min.X == b.Min.X && a.Max.X == b.Max.X
	sameRows := a.Min.Y == b.Min.Y && a.Max.Y == b.Max.Y
	return sameColumns && (a.Max.Y == b.Min.Y || b.Max.Y == a.Min.Y) ||
		sameRows && (a.Max.X == b.Min.X || b.Max.X == a.Min.X)
}

// CheckOccupantIndex verifies that exactly the non-empty tiles are indexed by
// their lower-left corner.
func (m *Mosaic) CheckOccupantIndex() error {
	var errs []error
	occupied := 0
	for id, t := range tile.IterTiles(m) {
		if t.Type == tile.Empty {
			continue
		}
		occupied++
		if got, ok := m.occupants[t.LowerLeft()]; !ok || got != id {
			errs = append(errs, violation("occupant %d %v is not indexed", id, t))
		}
	}
	if occupied != len(m.occupants) {
		errs = append(errs, violation("%d occupants indexed, %d present", len(m.occupants), occupied))
	}
	return errors.Join(errs...)
}
