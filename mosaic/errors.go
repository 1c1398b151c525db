package mosaic

import (
	"errors"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/tile"
)

var (
	ErrInvalidCanvas      = errors.New("mosaic: invalid canvas size")
	ErrOutOfCanvas        = errors.New("mosaic: outside of canvas")
	ErrInvalidType        = errors.New("mosaic: invalid tile type")
	ErrRegionOccupied     = errors.New("mosaic: region is not empty")
	ErrTileNotRegistered  = errors.New("mosaic: tile is not a registered occupant")
	ErrUnknownTile        = errors.New("mosaic: unknown tile")
	ErrInvalidCut         = errors.New("mosaic: invalid cut")
	ErrNotMergeable       = errors.New("mosaic: tiles cannot be merged")
	ErrInvariantViolation = errors.New("mosaic: invariant violation")

	ErrDegenerateLine     = geom.ErrDegenerateLine
	ErrMisalignedLineTile = tile.ErrMisalignedLine
)
