// Package mosaic implements a corner-stitched planar index.
//
// A Mosaic partitions a fixed rectangular canvas into non-overlapping tiles.
// Each tile is either empty space or an occupant inserted by the caller, and
// knows only four neighbors (its corner stitches). Empty space is kept in
// maximal horizontal strips, which makes the decomposition unique for a given
// set of occupants.
//
// A Mosaic is not safe for concurrent use.
package mosaic

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// slot is an arena cell. Freed cells are zeroed and kept on the free list.
type slot struct {
	tile.Tile
	live bool
}

type Mosaic struct {
	width  int
	height int

	tiles []slot
	free  []tile.ID
	hint  tile.ID

	// occupants maps the lower-left corner of every non-empty tile to its ID.
	occupants map[geom.Point]tile.ID

	logger *slog.Logger
}

type config struct {
	Logger *slog.Logger
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

// New creates an empty mosaic covering [0, width) x [0, height).
func New(width, height int, opts ...Option) (*Mosaic, error) {
	config := config{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidCanvas, width, height)
	}

	m := &Mosaic{
		width:     width,
		height:    height,
		occupants: make(map[geom.Point]tile.ID),
		logger:    config.Logger,
	}
	m.Reset()
	return m, nil
}

func (m *Mosaic) Width() int  { return m.width }
func (m *Mosaic) Height() int { return m.height }

// Bounds returns the canvas rectangle.
func (m *Mosaic) Bounds() geom.Rect {
	return geom.R(0, 0, m.width, m.height)
}

// Len returns the number of live tiles.
func (m *Mosaic) Len() int {
	return len(m.tiles) - len(m.free)
}

// Occupants returns the number of non-empty tiles.
func (m *Mosaic) Occupants() int {
	return len(m.occupants)
}

// Tile returns a copy of the tile with the given ID.
func (m *Mosaic) Tile(id tile.ID) (tile.Tile, error) {
	if err := m.checkID(id); err != nil {
		return tile.Tile{}, err
	}
	return m.tiles[id].Tile, nil
}

// PointInCanvas reports whether p addresses a cell of the canvas.
func (m *Mosaic) PointInCanvas(p geom.Point) bool {
	return p.In(m.Bounds())
}

// RectInCanvas reports whether r is non-empty and lies inside the canvas.
func (m *Mosaic) RectInCanvas(r geom.Rect) bool {
	return geom.Within(r, m.Bounds())
}

// Reset discards every tile and returns the mosaic to a single empty tile
// covering the whole canvas.
func (m *Mosaic) Reset() {
	clear(m.tiles)
	m.tiles = m.tiles[:0]
	m.free = m.free[:0]
	clear(m.occupants)
	m.hint = m.alloc(tile.Tile{
		Rect:   m.Bounds(),
		Type:   tile.Empty,
		Top:    tile.None,
		Right:  tile.None,
		Left:   tile.None,
		Bottom: tile.None,
	})
}

// Clone returns a deep copy of the mosaic. Tile IDs are preserved.
func (m *Mosaic) Clone() *Mosaic {
	return &Mosaic{
		width:     m.width,
		height:    m.height,
		tiles:     slices.Clone(m.tiles),
		free:      slices.Clone(m.free),
		hint:      m.hint,
		occupants: maps.Clone(m.occupants),
		logger:    m.logger,
	}
}

// VisitTiles calls visitor for every live tile in arena order.
func (m *Mosaic) VisitTiles(visitor func(tile.ID, tile.Tile) error) error {
	for i := range m.tiles {
		if !m.tiles[i].live {
			continue
		}
		if err := visitor(tile.ID(i), m.tiles[i].Tile); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarizes tile counts and covered area per tile type.
type Stats struct {
	Tiles map[tile.Type]int
	Area  map[tile.Type]int
}

func (m *Mosaic) Stats() Stats {
	s := Stats{
		Tiles: make(map[tile.Type]int),
		Area:  make(map[tile.Type]int),
	}
	for i := range m.tiles {
		if t := &m.tiles[i]; t.live {
			s.Tiles[t.Type]++
			s.Area[t.Type] += t.Area()
		}
	}
	return s
}

func (m *Mosaic) checkID(id tile.ID) error {
	if id < 0 || int(id) >= len(m.tiles) || !m.tiles[id].live {
		return fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	return nil
}

// alloc stores t in the arena. Pointers into the arena are invalidated.
func (m *Mosaic) alloc(t tile.Tile) tile.ID {
	if n := len(m.free); n > 0 {
		id := m.free[n-1]
		m.free = m.free[:n-1]
		m.tiles[id] = slot{Tile: t, live: true}
		return id
	}
	m.tiles = append(m.tiles, slot{Tile: t, live: true})
	return tile.ID(len(m.tiles) - 1)
}

func (m *Mosaic) release(id tile.ID) {
	m.tiles[id] = slot{}
	m.free = append(m.free, id)
}

func (m *Mosaic) register(id tile.ID) {
	m.occupants[m.tiles[id].LowerLeft()] = id
}

func (m *Mosaic) unregister(id tile.ID) {
	delete(m.occupants, m.tiles[id].LowerLeft())
}

// start returns a live tile to begin point location from.
func (m *Mosaic) start() tile.ID {
	if m.hint >= 0 && int(m.hint) < len(m.tiles) && m.tiles[m.hint].live {
		return m.hint
	}
	for i := range m.tiles {
		if m.tiles[i].live {
			return tile.ID(i)
		}
	}
	panic("mosaic: no live tiles")
}
