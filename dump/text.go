package dump

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

// TextWriter implements tile.Writer for the line-based visualizer format:
//
//	<tile count>
//	<width> <height>
//	T[BLOCK, R[(xl, yl), w, h, (xh, yh)]]
//	rt: T[...] | nullptr
//	tr: ...
//	bl: ...
//	lb: ...
//
// with one tile line and four link lines per tile.
type TextWriter struct {
	out    io.Writer
	width  int
	height int
	snap   *snapshot
	logger *slog.Logger
}

func NewTextWriter(out io.Writer, width, height int, opts ...Option) (*TextWriter, error) {
	config := newConfig(opts)
	snap, err := newSnapshot(width, height)
	if err != nil {
		return nil, err
	}
	return &TextWriter{out, width, height, snap, config.Logger}, nil
}

func (w *TextWriter) WriteTile(id tile.ID, t tile.Tile) error {
	return w.snap.add(id, t)
}

func (w *TextWriter) Finalize() error {
	ids, err := w.snap.finish()
	if err != nil {
		return err
	}

	w.logger.Debug("dump: writing text", "tiles", len(ids))
	bw := bufio.NewWriter(w.out)
	fmt.Fprintln(bw, len(ids))
	fmt.Fprintln(bw, w.width, w.height)
	for _, id := range ids {
		t := w.snap.tiles[id]
		fmt.Fprintln(bw, formatTile(t))
		for _, link := range links(t) {
			if link.ID == tile.None {
				fmt.Fprintf(bw, "%s: nullptr\n", link.Name)
				continue
			}
			fmt.Fprintf(bw, "%s: %s\n", link.Name, formatTile(w.snap.tiles[link.ID]))
		}
	}
	return bw.Flush()
}

func formatTile(t tile.Tile) string {
	return fmt.Sprintf("T[%s, %s]", legacyType(t.Type), geom.FormatRect(t.Rect))
}
