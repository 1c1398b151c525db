package script

import (
	"math/rand/v2"
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// Generator produces random edits that are valid for the mosaic they are
// generated against.
type Generator struct {
	rng *rand.Rand

	// MaxSide bounds the side of inserted rectangles.
	MaxSide int
	// RemoveRatio is the probability of removing an occupant instead of
	// inserting one.
	RemoveRatio float64
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		MaxSide:     16,
		RemoveRatio: 0.3,
	}
}

// Next returns an insert of a free rectangle or a remove of an existing
// occupant of m. It falls back to check when neither is possible.
func (g *Generator) Next(m *mosaic.Mosaic) Op {
	if m.Occupants() > 0 && g.rng.Float64() < g.RemoveRatio {
		return g.remove(m)
	}
	for range 16 {
		r := g.rect(m.Width(), m.Height())
		if busy, err := m.HasOccupant(r); err == nil && !busy {
			typ := tile.Occupied
			if g.rng.IntN(4) == 0 {
				typ = tile.Overlap
			}
			return Op{Kind: Insert, Rect: r, Type: typ}
		}
	}
	if m.Occupants() > 0 {
		return g.remove(m)
	}
	return Op{Kind: Check}
}

func (g *Generator) rect(width, height int) geom.Rect {
	w := 1 + g.rng.IntN(min(g.MaxSide, width))
	h := 1 + g.rng.IntN(min(g.MaxSide, height))
	x := g.rng.IntN(width - w + 1)
	y := g.rng.IntN(height - h + 1)
	return geom.R(x, y, x+w, y+h)
}

func (g *Generator) remove(m *mosaic.Mosaic) Op {
	var corners []geom.Point
	for _, t := range tile.IterTiles(m) {
		if t.Type != tile.Empty {
			corners = append(corners, t.LowerLeft())
		}
	}
	// Deterministic for a given seed.
	slices.SortFunc(corners, func(a, b geom.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return Op{Kind: Remove, Point: corners[g.rng.IntN(len(corners))]}
}
