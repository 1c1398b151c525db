package mosaic_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/internal/mosaictest"
	"github.com/eak1mov/go-cornerstitch/internal/script"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRandomEdits(t *testing.T) {
	for seed := range uint64(8) {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			t.Parallel()

			m := mosaictest.MustNew(t, 48, 40)
			gen := script.NewGenerator(seed)
			gen.MaxSide = 12
			rng := rand.New(rand.NewPCG(seed, 1))

			for step := range 150 {
				op := gen.Next(m)
				before := m.Clone()
				require.NoErrorf(t, script.Apply(m, op), "step %d: %v", step, op)
				mosaictest.RequireValid(t, m)

				if op.Kind == script.Insert {
					undo := m.Clone()
					require.NoError(t, undo.Remove(mosaictest.MustFind(t, undo, op.Rect.Min)))
					if !undo.Equal(before) {
						t.Fatalf("step %d: %v is not undone by Remove (-want +got):\n%v", step, op,
							cmp.Diff(mosaictest.Layout(before), mosaictest.Layout(undo)))
					}
				}

				checkPointLocation(t, m, rng)
				checkNeighborSymmetry(t, m)
				checkEnumeration(t, m, rng)
			}
		})
	}
}

func checkPointLocation(t *testing.T, m *mosaic.Mosaic, rng *rand.Rand) {
	t.Helper()
	for range 8 {
		p := geom.Pt(rng.IntN(m.Width()), rng.IntN(m.Height()))
		got := mosaictest.MustTile(t, m, mosaictest.MustFind(t, m, p))
		require.Truef(t, got.Contains(p), "FindTile(%v) = %v", p, got)
	}
}

func checkNeighborSymmetry(t *testing.T, m *mosaic.Mosaic) {
	t.Helper()
	for id := range tile.IterTiles(m) {
		neighbors, err := m.Neighbors(id)
		require.NoError(t, err)
		for _, n := range neighbors {
			back, err := m.Neighbors(n)
			require.NoError(t, err)
			require.Containsf(t, back, id, "%d lists %d as neighbor but not vice versa", id, n)
		}
	}
}

func checkEnumeration(t *testing.T, m *mosaic.Mosaic, rng *rand.Rand) {
	t.Helper()
	x0, x1 := rng.IntN(m.Width()), rng.IntN(m.Width())
	y0, y1 := rng.IntN(m.Height()), rng.IntN(m.Height())
	r := geom.R(min(x0, x1), min(y0, y1), max(x0, x1)+1, max(y0, y1)+1)

	var want []tile.ID
	for id, tl := range tile.IterTiles(m) {
		if tl.Type != tile.Empty && tl.Rect.Overlaps(r) {
			want = append(want, id)
		}
	}

	got, err := m.EnumerateOccupants(r)
	require.NoError(t, err)
	slices.Sort(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("EnumerateOccupants(%v) mismatch (-want +got):\n%v", r, diff)
	}

	found, err := m.HasOccupant(r)
	require.NoError(t, err)
	require.Equal(t, len(want) > 0, found, r)

	line, err := geom.HLine(r.Min.X, r.Max.X, r.Min.Y)
	require.NoError(t, err)
	positive, negative, err := m.TilesAlongLine(line)
	require.NoError(t, err)
	for _, side := range [][]tile.LineTile{positive, negative} {
		if len(side) == 0 {
			continue
		}
		require.Equal(t, line.Low, side[0].Line.Low)
		require.Equal(t, line.High, side[len(side)-1].Line.High)
		for i := 1; i < len(side); i++ {
			require.Equal(t, side[i-1].Line.High, side[i].Line.Low)
		}
	}
}
