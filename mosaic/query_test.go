package mosaic_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/internal/mosaictest"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// stack builds three occupants stacked in the column [10, 20) of a 100x100
// canvas: a at [40, 50), c at [50, 60) and b at [60, 70).
func stack(t *testing.T) (m *mosaic.Mosaic, a, b, c tile.ID) {
	t.Helper()
	m = mosaictest.MustNew(t, 100, 100)
	a = mosaictest.MustInsert(t, m, geom.R(10, 40, 20, 50), tile.Occupied)
	b = mosaictest.MustInsert(t, m, geom.R(10, 60, 20, 70), tile.Occupied)
	c = mosaictest.MustInsert(t, m, geom.R(10, 50, 20, 60), tile.Occupied)
	return m, a, b, c
}

func TestInsertMergesAlignedStrips(t *testing.T) {
	m, _, _, _ := stack(t)

	want := []mosaictest.Placed{
		{Rect: geom.R(0, 0, 100, 40), Type: tile.Empty},
		{Rect: geom.R(0, 40, 10, 70), Type: tile.Empty},
		{Rect: geom.R(10, 40, 20, 50), Type: tile.Occupied},
		{Rect: geom.R(20, 40, 100, 70), Type: tile.Empty},
		{Rect: geom.R(10, 50, 20, 60), Type: tile.Occupied},
		{Rect: geom.R(10, 60, 20, 70), Type: tile.Occupied},
		{Rect: geom.R(0, 70, 100, 100), Type: tile.Empty},
	}
	if diff := cmp.Diff(want, mosaictest.Layout(m)); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%v", diff)
	}
	mosaictest.RequireValid(t, m)
}

func TestInsertKeepsUnequalStrips(t *testing.T) {
	m := mosaictest.MustNew(t, 100, 100)
	mosaictest.MustInsert(t, m, geom.R(10, 40, 20, 60), tile.Occupied)
	mosaictest.MustInsert(t, m, geom.R(40, 40, 50, 60), tile.Occupied)
	mosaictest.MustInsert(t, m, geom.R(20, 45, 40, 55), tile.Occupied)

	want := []mosaictest.Placed{
		{Rect: geom.R(0, 0, 100, 40), Type: tile.Empty},
		{Rect: geom.R(0, 40, 10, 60), Type: tile.Empty},
		{Rect: geom.R(10, 40, 20, 60), Type: tile.Occupied},
		{Rect: geom.R(20, 40, 40, 45), Type: tile.Empty},
		{Rect: geom.R(40, 40, 50, 60), Type: tile.Occupied},
		{Rect: geom.R(50, 40, 100, 60), Type: tile.Empty},
		{Rect: geom.R(20, 45, 40, 55), Type: tile.Occupied},
		{Rect: geom.R(20, 55, 40, 60), Type: tile.Empty},
		{Rect: geom.R(0, 60, 100, 100), Type: tile.Empty},
	}
	if diff := cmp.Diff(want, mosaictest.Layout(m)); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%v", diff)
	}
	mosaictest.RequireValid(t, m)
}

func TestFindTile(t *testing.T) {
	m, a, b, c := stack(t)

	for p, want := range map[geom.Point]tile.ID{
		geom.Pt(10, 40): a,
		geom.Pt(19, 49): a,
		geom.Pt(15, 50): c,
		geom.Pt(15, 69): b,
	} {
		require.Equal(t, want, mosaictest.MustFind(t, m, p), p)
	}

	for _, p := range []geom.Point{geom.Pt(5, 45), geom.Pt(0, 0), geom.Pt(99, 99), geom.Pt(20, 40)} {
		got := mosaictest.MustTile(t, m, mosaictest.MustFind(t, m, p))
		require.True(t, got.Contains(p), "%v does not contain %v", got, p)
		require.Equal(t, tile.Empty, got.Type)
	}

	for _, p := range []geom.Point{geom.Pt(100, 0), geom.Pt(0, 100), geom.Pt(-1, 5)} {
		_, err := m.FindTile(p)
		require.Truef(t, errors.Is(err, mosaic.ErrOutOfCanvas), "%v", err)
	}
}

func TestNeighbors(t *testing.T) {
	m, a, b, c := stack(t)
	left := mosaictest.MustFind(t, m, geom.Pt(0, 40))
	right := mosaictest.MustFind(t, m, geom.Pt(50, 50))
	top := mosaictest.MustFind(t, m, geom.Pt(0, 99))
	bottom := mosaictest.MustFind(t, m, geom.Pt(0, 0))

	testCases := []struct {
		name  string
		query func(tile.ID) ([]tile.ID, error)
		id    tile.ID
		want  []tile.ID
	}{
		{"right of left strip", m.NeighborsRight, left, []tile.ID{b, c, a}},
		{"left of right strip", m.NeighborsLeft, right, []tile.ID{a, c, b}},
		{"above bottom strip", m.NeighborsAbove, bottom, []tile.ID{right, a, left}},
		{"below top strip", m.NeighborsBelow, top, []tile.ID{left, b, right}},
		{"above c", m.NeighborsAbove, c, []tile.ID{b}},
		{"below c", m.NeighborsBelow, c, []tile.ID{a}},
		{"left of top strip", m.NeighborsLeft, top, nil},
		{"all of c", m.Neighbors, c, []tile.ID{b, left, a, right}},
		{"all of a", m.Neighbors, a, []tile.ID{c, left, bottom, right}},
	}
	for _, tc := range testCases {
		got, err := tc.query(tc.id)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%v", tc.name, diff)
		}
	}

	_, err := m.Neighbors(tile.ID(1000))
	require.Truef(t, errors.Is(err, mosaic.ErrUnknownTile), "%v", err)
}

func TestHasOccupant(t *testing.T) {
	m, a, _, c := stack(t)

	testCases := []struct {
		rect    geom.Rect
		want    bool
		witness tile.ID
	}{
		{geom.R(0, 0, 100, 100), true, tile.None},
		{geom.R(0, 45, 15, 48), true, a},
		{geom.R(12, 52, 13, 53), true, c},
		{geom.R(20, 40, 100, 70), false, tile.None},
		{geom.R(0, 0, 10, 100), false, tile.None},
		{geom.R(0, 0, 100, 40), false, tile.None},
		{geom.R(20, 0, 21, 100), false, tile.None},
	}
	for _, tc := range testCases {
		found, err := m.HasOccupant(tc.rect)
		require.NoError(t, err)
		require.Equal(t, tc.want, found, tc.rect)

		id, found, err := m.FindOccupant(tc.rect)
		require.NoError(t, err)
		require.Equal(t, tc.want, found, tc.rect)
		if tc.witness != tile.None {
			require.Equal(t, tc.witness, id, tc.rect)
		}
		if found {
			got := mosaictest.MustTile(t, m, id)
			require.NotEqual(t, tile.Empty, got.Type)
			require.True(t, got.Rect.Overlaps(tc.rect), "%v outside %v", got, tc.rect)
		}
	}

	for _, r := range []geom.Rect{geom.R(90, 90, 101, 95), geom.R(5, 5, 5, 10)} {
		_, err := m.HasOccupant(r)
		require.Truef(t, errors.Is(err, mosaic.ErrOutOfCanvas), "%v", err)
	}
}

func TestEnumerateOccupants(t *testing.T) {
	m, a, b, c := stack(t)
	d := mosaictest.MustInsert(t, m, geom.R(60, 10, 70, 80), tile.Overlap)

	testCases := []struct {
		rect geom.Rect
		want []tile.ID
	}{
		{geom.R(0, 0, 100, 100), []tile.ID{b, c, a, d}},
		{geom.R(15, 55, 30, 65), []tile.ID{b, c}},
		{geom.R(19, 0, 61, 45), []tile.ID{a, d}},
		{geom.R(0, 0, 10, 100), nil},
		{geom.R(65, 0, 100, 100), []tile.ID{d}},
		{geom.R(0, 80, 100, 100), nil},
	}
	for _, tc := range testCases {
		got, err := m.EnumerateOccupants(tc.rect)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("EnumerateOccupants(%v) mismatch (-want +got):\n%v", tc.rect, diff)
		}
	}

	_, err := m.EnumerateOccupants(geom.R(-1, 0, 10, 10))
	require.Truef(t, errors.Is(err, mosaic.ErrOutOfCanvas), "%v", err)
}
