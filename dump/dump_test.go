package dump_test

import (
	"bytes"
	"database/sql"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/eak1mov/go-cornerstitch/dump"
	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/internal/mosaictest"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *mosaic.Mosaic {
	t.Helper()
	m := mosaictest.MustNew(t, 100, 100)
	mosaictest.MustInsert(t, m, geom.R(10, 10, 20, 20), tile.Occupied)
	return m
}

func writeText(t *testing.T, m *mosaic.Mosaic) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := dump.NewTextWriter(&buf, m.Width(), m.Height())
	require.NoError(t, err)
	require.NoError(t, dump.WriteAll(m, w))
	return buf.String()
}

// blocks splits a text dump into its header and per-tile blocks.
func blocks(t *testing.T, text string) ([]string, [][]string) {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Zero(t, (len(lines)-2)%5, "unexpected line count %d", len(lines))

	var tiles [][]string
	for i := 2; i < len(lines); i += 5 {
		tiles = append(tiles, lines[i:i+5])
	}
	return lines[:2], tiles
}

func TestTextWriter(t *testing.T) {
	header, tiles := blocks(t, writeText(t, sample(t)))
	require.Equal(t, []string{"5", "100 100"}, header)

	const (
		top    = "T[BLANK, R[(0, 20), 100, 80, (100, 100)]]"
		bottom = "T[BLANK, R[(0, 0), 100, 10, (100, 10)]]"
		left   = "T[BLANK, R[(0, 10), 10, 10, (10, 20)]]"
		right  = "T[BLANK, R[(20, 10), 80, 10, (100, 20)]]"
		center = "T[BLOCK, R[(10, 10), 10, 10, (20, 20)]]"
	)
	want := [][]string{
		{top, "rt: nullptr", "tr: nullptr", "bl: nullptr", "lb: " + left},
		{bottom, "rt: " + right, "tr: nullptr", "bl: nullptr", "lb: nullptr"},
		{left, "rt: " + top, "tr: " + center, "bl: nullptr", "lb: " + bottom},
		{right, "rt: " + top, "tr: nullptr", "bl: " + center, "lb: " + bottom},
		{center, "rt: " + top, "tr: " + right, "bl: " + left, "lb: " + bottom},
	}
	slices.SortFunc(want, func(a, b []string) int { return strings.Compare(a[0], b[0]) })
	slices.SortFunc(tiles, func(a, b []string) int { return strings.Compare(a[0], b[0]) })
	if diff := cmp.Diff(want, tiles); diff != "" {
		t.Errorf("text dump mismatch (-want +got):\n%v", diff)
	}
}

func TestTextWriterDeterministic(t *testing.T) {
	rects := []geom.Rect{geom.R(10, 10, 20, 20), geom.R(50, 0, 60, 70), geom.R(0, 80, 100, 90)}

	a := mosaictest.MustNew(t, 100, 100)
	for _, r := range rects {
		mosaictest.MustInsert(t, a, r, tile.Occupied)
	}
	b := mosaictest.MustNew(t, 100, 100)
	for _, r := range slices.Backward(rects) {
		mosaictest.MustInsert(t, b, r, tile.Occupied)
	}
	require.True(t, a.Equal(b))

	if diff := cmp.Diff(writeText(t, a), writeText(t, b)); diff != "" {
		t.Errorf("dumps of equal mosaics differ (-a +b):\n%v", diff)
	}
}

func TestWriterErrors(t *testing.T) {
	var buf bytes.Buffer
	w, err := dump.NewTextWriter(&buf, 10, 10)
	require.NoError(t, err)

	tl := tile.Tile{Rect: geom.R(0, 0, 10, 10), Top: 3, Right: tile.None, Left: tile.None, Bottom: tile.None}
	require.NoError(t, w.WriteTile(0, tl))

	err = w.WriteTile(0, tl)
	require.Truef(t, errors.Is(err, dump.ErrDuplicateTile), "%v", err)

	err = w.Finalize()
	require.Truef(t, errors.Is(err, dump.ErrDanglingLink), "%v", err)
	require.Panics(t, func() { w.Finalize() })

	_, err = dump.NewTextWriter(&buf, 0, 10)
	require.Error(t, err)
}

type jsonRect struct {
	X, Y, Width, Height int
}

type jsonTile struct {
	Index int
	Type  string
	Rect  jsonRect
	RT    int `json:"rt"`
	TR    int `json:"tr"`
	BL    int `json:"bl"`
	LB    int `json:"lb"`
}

func TestJSONWriter(t *testing.T) {
	m := sample(t)

	var buf bytes.Buffer
	w, err := dump.NewJSONWriter(&buf, m.Width(), m.Height())
	require.NoError(t, err)
	require.NoError(t, dump.WriteAll(m, w.Indent()))

	var got struct {
		Width  int
		Height int
		Tiles  []jsonTile
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, 100, got.Width)
	require.Equal(t, 100, got.Height)
	require.Len(t, got.Tiles, m.Len())

	for i, tl := range got.Tiles {
		require.Equal(t, i, tl.Index)
		if tl.RT >= 0 {
			require.Equal(t, tl.Rect.Y+tl.Rect.Height, got.Tiles[tl.RT].Rect.Y)
		}
		if tl.TR >= 0 {
			require.Equal(t, tl.Rect.X+tl.Rect.Width, got.Tiles[tl.TR].Rect.X)
		}
		if tl.BL >= 0 {
			n := got.Tiles[tl.BL].Rect
			require.Equal(t, tl.Rect.X, n.X+n.Width)
		}
		if tl.LB >= 0 {
			n := got.Tiles[tl.LB].Rect
			require.Equal(t, tl.Rect.Y, n.Y+n.Height)
		}
	}

	blocks := 0
	for _, tl := range got.Tiles {
		if tl.Type == "BLOCK" {
			blocks++
			require.Equal(t, jsonRect{X: 10, Y: 10, Width: 10, Height: 10}, tl.Rect)
		}
	}
	require.Equal(t, 1, blocks)
}

func TestSQLiteWriter(t *testing.T) {
	m := sample(t)
	filePath := filepath.Join(t.TempDir(), "mosaic.sqlite")

	w, err := dump.NewSQLiteWriter(filePath, m.Width(), m.Height())
	require.NoError(t, err)
	require.NoError(t, dump.WriteAll(m, w))
	require.NoError(t, w.Close())

	db, err := sql.Open("sqlite3", filePath)
	require.NoError(t, err)
	defer db.Close()

	var width, height int
	require.NoError(t, db.QueryRow("SELECT width, height FROM canvas").Scan(&width, &height))
	require.Equal(t, []int{100, 100}, []int{width, height})

	var count, borders int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tiles").Scan(&count))
	require.Equal(t, m.Len(), count)
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM tiles WHERE rt IS NULL").Scan(&borders))
	require.Equal(t, 1, borders)

	var xl, yl, xh, yh int
	require.NoError(t, db.QueryRow("SELECT xl, yl, xh, yh FROM tiles WHERE type = 'OCCUPIED'").Scan(&xl, &yl, &xh, &yh))
	require.Equal(t, []int{10, 10, 20, 20}, []int{xl, yl, xh, yh})
}
