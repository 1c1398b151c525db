package geom_test

import (
	"errors"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	testCases := []struct {
		p, q geom.Point
		want geom.Line
	}{
		{geom.Pt(0, 5), geom.Pt(10, 5), geom.Line{Low: geom.Pt(0, 5), High: geom.Pt(10, 5), Orientation: geom.Horizontal}},
		{geom.Pt(10, 5), geom.Pt(0, 5), geom.Line{Low: geom.Pt(0, 5), High: geom.Pt(10, 5), Orientation: geom.Horizontal}},
		{geom.Pt(3, 9), geom.Pt(3, 1), geom.Line{Low: geom.Pt(3, 1), High: geom.Pt(3, 9), Orientation: geom.Vertical}},
	}
	for _, tc := range testCases {
		got, err := geom.NewLine(tc.p, tc.q)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("NewLine(%v, %v) mismatch (-want +got):\n%v", tc.p, tc.q, diff)
		}
	}
}

func TestNewLineDegenerate(t *testing.T) {
	for _, pq := range [][2]geom.Point{
		{geom.Pt(1, 1), geom.Pt(1, 1)},
		{geom.Pt(0, 0), geom.Pt(2, 3)},
	} {
		_, err := geom.NewLine(pq[0], pq[1])
		require.Truef(t, errors.Is(err, geom.ErrDegenerateLine), "%v", err)
	}
}

func TestLineClip(t *testing.T) {
	l, err := geom.HLine(0, 100, 50)
	require.NoError(t, err)

	got := l.Clip(40, 60)
	want := geom.Line{Low: geom.Pt(40, 50), High: geom.Pt(60, 50), Orientation: geom.Horizontal}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Clip mismatch (-want +got):\n%v", diff)
	}
	require.Equal(t, 20, got.Length())
	require.Equal(t, 50, got.Offset())
	require.Equal(t, "L[(40, 50) --- H --- (60, 50)]", got.String())
}

func TestFormatRect(t *testing.T) {
	require.Equal(t, "R[(2, 3), 4, 5, (6, 8)]", geom.FormatRect(geom.R(2, 3, 6, 8)))
	require.True(t, geom.Within(geom.R(1, 1, 2, 2), geom.R(0, 0, 2, 2)))
	require.False(t, geom.Within(geom.R(1, 1, 3, 2), geom.R(0, 0, 2, 2)))
	require.False(t, geom.Within(geom.R(1, 1, 1, 2), geom.R(0, 0, 2, 2)))
}
