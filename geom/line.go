package geom

import "fmt"

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "H"
	case Vertical:
		return "V"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Line is an axis-aligned segment of positive length. Low is always the
// left (or bottom) end and High the right (or top) end.
type Line struct {
	Low         Point
	High        Point
	Orientation Orientation
}

// NewLine builds a line between p and q, normalizing the endpoint order.
// It fails with ErrDegenerateLine for zero-length and diagonal segments.
func NewLine(p, q Point) (Line, error) {
	switch {
	case p == q:
		return Line{}, fmt.Errorf("%w: zero length at %v", ErrDegenerateLine, p)
	case p.Y == q.Y:
		if q.X < p.X {
			p, q = q, p
		}
		return Line{Low: p, High: q, Orientation: Horizontal}, nil
	case p.X == q.X:
		if q.Y < p.Y {
			p, q = q, p
		}
		return Line{Low: p, High: q, Orientation: Vertical}, nil
	}
	return Line{}, fmt.Errorf("%w: %v and %v are not axis-aligned", ErrDegenerateLine, p, q)
}

// HLine returns the horizontal line at height y spanning [x0, x1].
func HLine(x0, x1, y int) (Line, error) {
	return NewLine(Pt(x0, y), Pt(x1, y))
}

// VLine returns the vertical line at abscissa x spanning [y0, y1].
func VLine(x, y0, y1 int) (Line, error) {
	return NewLine(Pt(x, y0), Pt(x, y1))
}

func (l Line) Length() int {
	if l.Orientation == Horizontal {
		return l.High.X - l.Low.X
	}
	return l.High.Y - l.Low.Y
}

// Span returns the extent of the line along its own axis.
func (l Line) Span() (lo, hi int) {
	if l.Orientation == Horizontal {
		return l.Low.X, l.High.X
	}
	return l.Low.Y, l.High.Y
}

// Offset returns the fixed coordinate: y for horizontal lines, x for vertical ones.
func (l Line) Offset() int {
	if l.Orientation == Horizontal {
		return l.Low.Y
	}
	return l.Low.X
}

// Clip returns the part of l within [lo, hi] along its axis.
// The result may be degenerate if the ranges only touch.
func (l Line) Clip(lo, hi int) Line {
	a, b := l.Span()
	a, b = max(a, lo), min(b, hi)
	if l.Orientation == Horizontal {
		return Line{Low: Pt(a, l.Low.Y), High: Pt(b, l.Low.Y), Orientation: Horizontal}
	}
	return Line{Low: Pt(l.Low.X, a), High: Pt(l.Low.X, b), Orientation: Vertical}
}

func (l Line) String() string {
	return fmt.Sprintf("L[(%d, %d) --- %v --- (%d, %d)]", l.Low.X, l.Low.Y, l.Orientation, l.High.X, l.High.Y)
}
