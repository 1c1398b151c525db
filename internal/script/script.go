// Package script reads, writes and replays mosaic edit scripts.
//
// A script is a sequence of lines:
//
//	canvas W H
//	insert XL YL XH YH TYPE
//	remove X Y
//	check
//
// Blank lines and lines starting with '#' are ignored. remove deletes the
// occupant containing (X, Y); check runs the mosaic self-test.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
)

var (
	ErrSyntax     = errors.New("script: syntax error")
	ErrNoCanvas   = errors.New("script: script must start with canvas")
	ErrNoOccupant = errors.New("script: no occupant at point")
)

type Kind uint8

const (
	Canvas Kind = iota
	Insert
	Remove
	Check
)

var kindNames = [...]string{
	Canvas: "canvas",
	Insert: "insert",
	Remove: "remove",
	Check:  "check",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Op is a single script command. Line is the 1-based source line, zero for
// generated commands.
type Op struct {
	Kind  Kind
	Line  int
	Rect  geom.Rect
	Type  tile.Type
	Point geom.Point
}

func (op Op) String() string {
	switch op.Kind {
	case Canvas:
		return fmt.Sprintf("canvas %d %d", op.Rect.Dx(), op.Rect.Dy())
	case Insert:
		r := op.Rect
		return fmt.Sprintf("insert %d %d %d %d %v", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, op.Type)
	case Remove:
		return fmt.Sprintf("remove %d %d", op.Point.X, op.Point.Y)
	}
	return op.Kind.String()
}

// Parse reads a script.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		op, err := parseOp(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		op.Line = lineNo
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

func parseOp(fields []string) (Op, error) {
	ints := func(args []string) ([]int, error) {
		values := make([]int, len(args))
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
			}
			values[i] = v
		}
		return values, nil
	}
	arity := map[string]int{"canvas": 2, "insert": 5, "remove": 2, "check": 0}

	want, ok := arity[fields[0]]
	if !ok {
		return Op{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, fields[0])
	}
	if len(fields)-1 != want {
		return Op{}, fmt.Errorf("%w: %s takes %d arguments", ErrSyntax, fields[0], want)
	}

	switch fields[0] {
	case "canvas":
		v, err := ints(fields[1:])
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: Canvas, Rect: geom.R(0, 0, v[0], v[1])}, nil
	case "insert":
		v, err := ints(fields[1:5])
		if err != nil {
			return Op{}, err
		}
		typ, err := tile.ParseType(fields[5])
		if err != nil {
			return Op{}, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return Op{Kind: Insert, Rect: geom.R(v[0], v[1], v[2], v[3]), Type: typ}, nil
	case "remove":
		v, err := ints(fields[1:])
		if err != nil {
			return Op{}, err
		}
		return Op{Kind: Remove, Point: geom.Pt(v[0], v[1])}, nil
	}
	return Op{Kind: Check}, nil
}

// Write writes ops in the format accepted by Parse.
func Write(w io.Writer, ops []Op) error {
	bw := bufio.NewWriter(w)
	for _, op := range ops {
		if _, err := fmt.Fprintln(bw, op); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Apply runs a single non-canvas op against m.
func Apply(m *mosaic.Mosaic, op Op) error {
	switch op.Kind {
	case Insert:
		_, err := m.Insert(op.Rect, op.Type)
		return err
	case Remove:
		id, err := m.FindTile(op.Point)
		if err != nil {
			return err
		}
		if t, _ := m.Tile(id); t.Type == tile.Empty {
			return fmt.Errorf("%w: %v", ErrNoOccupant, op.Point)
		}
		return m.Remove(id)
	case Check:
		return m.SelfTest()
	}
	return fmt.Errorf("%w: unexpected %v", ErrSyntax, op.Kind)
}

// Replay creates the mosaic declared by the leading canvas op and applies the
// remaining ops in order. progress, if not nil, is called after every op.
func Replay(ops []Op, progress func(Op), opts ...mosaic.Option) (*mosaic.Mosaic, error) {
	if len(ops) == 0 || ops[0].Kind != Canvas {
		return nil, ErrNoCanvas
	}
	m, err := mosaic.New(ops[0].Rect.Dx(), ops[0].Rect.Dy(), opts...)
	if err != nil {
		return nil, err
	}
	for _, op := range ops[1:] {
		if err := Apply(m, op); err != nil {
			return m, fmt.Errorf("%v (line %d): %w", op, op.Line, err)
		}
		if progress != nil {
			progress(op)
		}
	}
	return m, nil
}
