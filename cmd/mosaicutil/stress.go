package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/eak1mov/go-cornerstitch/internal/script"
	"github.com/eak1mov/go-cornerstitch/metrics"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"
)

type stressCmd struct {
	width      int
	height     int
	steps      int
	seed       uint64
	checkEvery int
	recordPath string
	metrics    bool
	verbose    bool
}

func (c *stressCmd) Name() string     { return "stress" }
func (c *stressCmd) Synopsis() string { return "apply random edits and self-test the mosaic" }
func (c *stressCmd) Usage() string {
	return "mosaicutil stress [-w 256 -h 256 -n 10000 -seed 1 -check-every 100 -record <path> -metrics]\n"
}
func (c *stressCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.width, "w", 256, "Canvas width")
	f.IntVar(&c.height, "h", 256, "Canvas height")
	f.IntVar(&c.steps, "n", 10000, "Number of edits")
	f.Uint64Var(&c.seed, "seed", 1, "Random seed")
	f.IntVar(&c.checkEvery, "check-every", 100, "Run the self-test every N edits, 0 to disable")
	f.StringVar(&c.recordPath, "record", "", "Write the applied edits as a script to this path on failure")
	f.BoolVar(&c.metrics, "metrics", false, "Print metrics in Prometheus text format when done")
	f.BoolVar(&c.verbose, "v", false, "Log every edit")
}

func (c *stressCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := mosaic.New(c.width, c.height, mosaic.WithLogger(newLogger(c.verbose)))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	reg.MustRegister(metrics.NewCollector(m, nil))

	ops := []script.Op{{Kind: script.Canvas, Rect: m.Bounds()}}
	gen := script.NewGenerator(c.seed)
	bar := progressbar.New(c.steps)

	err = func() error {
		for i := range c.steps {
			op := gen.Next(m)
			ops = append(ops, op)

			start := time.Now()
			err := script.Apply(m, op)
			recorder.Observe(op.Kind.String(), start, err)
			if err != nil {
				return fmt.Errorf("step %d, %v: %w", i, op, err)
			}
			if c.checkEvery > 0 && (i+1)%c.checkEvery == 0 {
				if err := m.SelfTest(); err != nil {
					return fmt.Errorf("step %d: %w", i, err)
				}
			}
			bar.Add(1)
		}
		return m.SelfTest()
	}()
	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		if c.recordPath != "" {
			if err := writeScript(c.recordPath, ops); err != nil {
				log.Println(err)
			}
		}
		return subcommands.ExitFailure
	}

	fmt.Printf("%d tiles, %d occupants\n", m.Len(), m.Occupants())
	if c.metrics {
		if err := metrics.WriteText(os.Stdout, reg); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func writeScript(filePath string, ops []script.Op) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	if err := script.Write(file, ops); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
