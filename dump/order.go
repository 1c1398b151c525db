package dump

import (
	"fmt"
	"math/bits"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/google/hilbert"
)

// curve maps canvas cells to their position along a Hilbert curve covering
// the smallest power-of-two square around the canvas.
type curve struct {
	h *hilbert.Hilbert
}

func newCurve(width, height int) (*curve, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dump: invalid canvas %dx%d", width, height)
	}
	side := 1 << bits.Len(uint(max(width, height)-1))
	h, err := hilbert.NewHilbert(side)
	if err != nil {
		return nil, err
	}
	return &curve{h}, nil
}

func (c *curve) code(p geom.Point) (uint64, error) {
	t, err := c.h.MapInverse(p.X, p.Y)
	if err != nil {
		return 0, fmt.Errorf("dump: %v: %w", p, err)
	}
	return uint64(t), nil
}
