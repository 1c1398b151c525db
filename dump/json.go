package dump

import (
	"io"
	"log/slog"

	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/segmentio/encoding/json"
)

type jsonRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type jsonTile struct {
	Index int      `json:"index"`
	Type  string   `json:"type"`
	Rect  jsonRect `json:"rect"`
	// Links hold indices into Tiles, -1 for the canvas border.
	Top    int `json:"rt"`
	Right  int `json:"tr"`
	Left   int `json:"bl"`
	Bottom int `json:"lb"`
}

type jsonDump struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Tiles  []jsonTile `json:"tiles"`
}

// JSONWriter implements tile.Writer producing a single JSON document. Tiles
// are numbered by their position in the document, links refer to those
// numbers.
type JSONWriter struct {
	out    io.Writer
	dump   jsonDump
	snap   *snapshot
	indent bool
	logger *slog.Logger
}

func NewJSONWriter(out io.Writer, width, height int, opts ...Option) (*JSONWriter, error) {
	config := newConfig(opts)
	snap, err := newSnapshot(width, height)
	if err != nil {
		return nil, err
	}
	return &JSONWriter{
		out:    out,
		dump:   jsonDump{Width: width, Height: height},
		snap:   snap,
		logger: config.Logger,
	}, nil
}

// Indent makes Finalize emit an indented document.
func (w *JSONWriter) Indent() *JSONWriter {
	w.indent = true
	return w
}

func (w *JSONWriter) WriteTile(id tile.ID, t tile.Tile) error {
	return w.snap.add(id, t)
}

func (w *JSONWriter) Finalize() error {
	ids, err := w.snap.finish()
	if err != nil {
		return err
	}

	index := make(map[tile.ID]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	ref := func(id tile.ID) int {
		if id == tile.None {
			return -1
		}
		return index[id]
	}

	w.dump.Tiles = make([]jsonTile, 0, len(ids))
	for i, id := range ids {
		t := w.snap.tiles[id]
		w.dump.Tiles = append(w.dump.Tiles, jsonTile{
			Index:  i,
			Type:   legacyType(t.Type),
			Rect:   jsonRect{X: t.XLow(), Y: t.YLow(), Width: t.Width(), Height: t.Height()},
			Top:    ref(t.Top),
			Right:  ref(t.Right),
			Left:   ref(t.Left),
			Bottom: ref(t.Bottom),
		})
	}

	w.logger.Debug("dump: writing json", "tiles", len(ids))
	enc := json.NewEncoder(w.out)
	if w.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(w.dump)
}
