// Package dump writes snapshots of a mosaic for external tools such as the
// layout visualizer. Snapshots are write-only: there is no reader.
//
// Tiles are written in Hilbert order of their lower-left corners, so two
// snapshots of equal mosaics are identical regardless of tile IDs. The SQLite
// writer requires the sqlite3 driver:
//
//	import _ "github.com/mattn/go-sqlite3"
package dump

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/eak1mov/go-cornerstitch/tile"
)

var (
	ErrDuplicateTile = errors.New("dump: duplicate tile")
	ErrDanglingLink  = errors.New("dump: link to unknown tile")
)

// WriteAll writes every tile of src to w and finalizes it.
func WriteAll(src tile.Visitor, w tile.Writer) error {
	if err := src.VisitTiles(w.WriteTile); err != nil {
		return err
	}
	return w.Finalize()
}

type config struct {
	Logger *slog.Logger
}

type Option func(*config)

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.Logger = logger }
}

func newConfig(opts []Option) config {
	c := config{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// snapshot collects the tiles of one mosaic until they can be ordered and
// their links resolved.
type snapshot struct {
	curve *curve
	tiles map[tile.ID]tile.Tile
	codes map[tile.ID]uint64
	done  bool
}

func newSnapshot(width, height int) (*snapshot, error) {
	c, err := newCurve(width, height)
	if err != nil {
		return nil, err
	}
	return &snapshot{
		curve: c,
		tiles: make(map[tile.ID]tile.Tile),
		codes: make(map[tile.ID]uint64),
	}, nil
}

func (s *snapshot) add(id tile.ID, t tile.Tile) error {
	if _, ok := s.tiles[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateTile, id)
	}
	code, err := s.curve.code(t.LowerLeft())
	if err != nil {
		return err
	}
	s.tiles[id] = t
	s.codes[id] = code
	return nil
}

// finish checks links and returns the tile IDs in Hilbert order.
func (s *snapshot) finish() ([]tile.ID, error) {
	if s.done {
		panic("dump: finalize called twice")
	}
	s.done = true

	ids := make([]tile.ID, 0, len(s.tiles))
	for id, t := range s.tiles {
		for _, link := range links(t) {
			if _, ok := s.tiles[link.ID]; link.ID != tile.None && !ok {
				return nil, fmt.Errorf("%w: %s of %v is %d", ErrDanglingLink, link.Name, t, link.ID)
			}
		}
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b tile.ID) int {
		return cmp.Compare(s.codes[a], s.codes[b])
	})
	return ids, nil
}

type link struct {
	Name string
	ID   tile.ID
}

// links returns the stitches of t in dump order.
func links(t tile.Tile) [4]link {
	return [4]link{
		{"rt", t.Top},
		{"tr", t.Right},
		{"bl", t.Left},
		{"lb", t.Bottom},
	}
}

// legacyType returns the type names understood by the visualizer.
func legacyType(t tile.Type) string {
	switch t {
	case tile.Empty:
		return "BLANK"
	case tile.Occupied:
		return "BLOCK"
	}
	return t.String()
}
