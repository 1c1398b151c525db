package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/eak1mov/go-cornerstitch/internal/script"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type replayCmd struct {
	inputPath    string
	outputPath   string
	outputFormat string
	verbose      bool
}

func (c *replayCmd) Name() string     { return "replay" }
func (c *replayCmd) Synopsis() string { return "apply an edit script and self-test the result" }
func (c *replayCmd) Usage() string {
	return "mosaicutil replay -i <script> [-o <path> -of <format> -v]\n"
}
func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input script path")
	f.StringVar(&c.outputPath, "o", "", "Output dump path")
	f.StringVar(&c.outputFormat, "of", "", "Output dump format (text, json, sqlite)")
	f.BoolVar(&c.verbose, "v", false, "Log every edit")
}

func (c *replayCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	logger := newLogger(c.verbose)

	ops, err := readScript(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	bar := progressbar.New(max(len(ops)-1, 0))
	m, err := script.Replay(ops, func(script.Op) { bar.Add(1) }, mosaic.WithLogger(logger))
	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if err := m.SelfTest(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d tiles, %d occupants\n", m.Len(), m.Occupants())

	if c.outputPath != "" {
		if err := writeDump(m, c.outputFormat, c.outputPath, logger); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
