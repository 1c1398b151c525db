package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/eak1mov/go-cornerstitch/geom"
	"github.com/eak1mov/go-cornerstitch/internal/script"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/google/subcommands"
)

type queryCmd struct {
	inputPath string
	point     string
	rect      string
	line      string
	verbose   bool
}

func (c *queryCmd) Name() string     { return "query" }
func (c *queryCmd) Synopsis() string { return "replay an edit script and query the result" }
func (c *queryCmd) Usage() string {
	return "mosaicutil query -i <script> [-point X,Y] [-rect XL,YL,XH,YH] [-line X0,Y0,X1,Y1]\n"
}
func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input script path")
	f.StringVar(&c.point, "point", "", "Print the tile containing X,Y and its neighbours")
	f.StringVar(&c.rect, "rect", "", "Print the occupants intersecting XL,YL,XH,YH")
	f.StringVar(&c.line, "line", "", "Print the tiles on both sides of X0,Y0,X1,Y1")
	f.BoolVar(&c.verbose, "v", false, "Log every edit")
}

func parseInts(s string, n int) ([]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d comma-separated integers, got %q", n, s)
	}
	values := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (c *queryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	ops, err := readScript(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	m, err := script.Replay(ops, nil, mosaic.WithLogger(newLogger(c.verbose)))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if c.point != "" {
		if err := queryPoint(m, c.point); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	if c.rect != "" {
		if err := queryRect(m, c.rect); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	if c.line != "" {
		if err := queryLine(m, c.line); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func queryPoint(m *mosaic.Mosaic, s string) error {
	v, err := parseInts(s, 2)
	if err != nil {
		return err
	}
	id, err := m.FindTile(geom.Pt(v[0], v[1]))
	if err != nil {
		return err
	}
	t, _ := m.Tile(id)
	fmt.Println(t)

	neighbors, err := m.Neighbors(id)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		t, _ := m.Tile(n)
		fmt.Println("  ", t)
	}
	return nil
}

func queryRect(m *mosaic.Mosaic, s string) error {
	v, err := parseInts(s, 4)
	if err != nil {
		return err
	}
	ids, err := m.EnumerateOccupants(geom.R(v[0], v[1], v[2], v[3]))
	if err != nil {
		return err
	}
	fmt.Printf("%d occupants\n", len(ids))
	for _, id := range ids {
		t, _ := m.Tile(id)
		fmt.Println(t)
	}
	return nil
}

func queryLine(m *mosaic.Mosaic, s string) error {
	v, err := parseInts(s, 4)
	if err != nil {
		return err
	}
	line, err := geom.NewLine(geom.Pt(v[0], v[1]), geom.Pt(v[2], v[3]))
	if err != nil {
		return err
	}
	positive, negative, err := m.TilesAlongLine(line)
	if err != nil {
		return err
	}
	printSide := func(name string, side []tile.LineTile) {
		fmt.Printf("%s: %d tiles\n", name, len(side))
		for _, lt := range side {
			fmt.Println("  ", lt)
		}
	}
	printSide("positive", positive)
	printSide("negative", negative)
	return nil
}
