// Package mosaictest provides assertions and fixtures shared by mosaic tests.
package mosaictest

import (
	"cmp"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/stretchr/testify/require"
)

// Placed is a tile without its stitches.
type Placed struct {
	Rect geom.Rect
	Type tile.Type
}

// Layout returns the tiles of m ordered bottom to top, then left to right.
func Layout(m *mosaic.Mosaic) []Placed {
	var layout []Placed
	for _, t := range tile.IterTiles(m) {
		layout = append(layout, Placed{Rect: t.Rect, Type: t.Type})
	}
	slices.SortFunc(layout, func(a, b Placed) int {
		return cmp.Or(cmp.Compare(a.Rect.Min.Y, b.Rect.Min.Y), cmp.Compare(a.Rect.Min.X, b.Rect.Min.X))
	})
	return layout
}

// RequireValid fails the test unless m passes its self-test and keeps empty
// space in maximal horizontal strips.
func RequireValid(t testing.TB, m *mosaic.Mosaic) {
	t.Helper()
	require.NoError(t, m.SelfTest())

	for id, tl := range tile.IterTiles(m) {
		if tl.Type != tile.Empty {
			continue
		}
		left, err := m.NeighborsLeft(id)
		require.NoError(t, err)
		right, err := m.NeighborsRight(id)
		require.NoError(t, err)
		for _, n := range append(left, right...) {
			nt, err := m.Tile(n)
			require.NoError(t, err)
			require.NotEqualf(t, tile.Empty, nt.Type, "empty tiles %v and %v are side by side", tl, nt)
		}
	}
}

func MustNew(t testing.TB, width, height int) *mosaic.Mosaic {
	t.Helper()
	m, err := mosaic.New(width, height)
	require.NoError(t, err)
	return m
}

func MustInsert(t testing.TB, m *mosaic.Mosaic, r geom.Rect, typ tile.Type) tile.ID {
	t.Helper()
	id, err := m.Insert(r, typ)
	require.NoErrorf(t, err, "Insert(%v, %v)", r, typ)
	return id
}

// MustFind returns the tile containing p.
func MustFind(t testing.TB, m *mosaic.Mosaic, p geom.Point) tile.ID {
	t.Helper()
	id, err := m.FindTile(p)
	require.NoError(t, err)
	return id
}

func MustTile(t testing.TB, m *mosaic.Mosaic, id tile.ID) tile.Tile {
	t.Helper()
	tl, err := m.Tile(id)
	require.NoError(t, err)
	return tl
}

// ScenarioCases yields the name and content of every file in dir matching pattern.
func ScenarioCases(t *testing.T, dir, pattern string) iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		t.Helper()

		paths, err := filepath.Glob(filepath.Join(dir, pattern))
		require.NoError(t, err)
		require.NotEmpty(t, paths, "no scenarios in %s", dir)

		for _, path := range paths {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			if !yield(filepath.Base(path), data) {
				return
			}
		}
	}
}
