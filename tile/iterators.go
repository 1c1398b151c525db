package tile

import (
	"errors"
	"iter"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterTiles returns an iterator over all tiles of the visitor.
// Iteration may panic on unrecoverable errors.
func IterTiles(r Visitor) iter.Seq2[ID, Tile] {
	return func(yield func(ID, Tile) bool) {
		err := r.VisitTiles(func(id ID, t Tile) error {
			if !yield(id, t) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && !errors.Is(err, errVisitCancelled) {
			panic(err)
		}
	}
}
