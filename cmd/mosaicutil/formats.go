package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/eak1mov/go-cornerstitch/dump"
	"github.com/eak1mov/go-cornerstitch/internal/script"
	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
)

func deduceFormat(format, filePath string) string {
	if format == "" && strings.HasSuffix(filePath, ".json") {
		return "json"
	}
	if format == "" && (strings.HasSuffix(filePath, ".sqlite") || strings.HasSuffix(filePath, ".db")) {
		return "sqlite"
	}
	if format == "" {
		return "text"
	}
	return format
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func readScript(filePath string) ([]script.Op, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return script.Parse(file)
}

// writeDump writes a snapshot of m to filePath in the given format.
func writeDump(m *mosaic.Mosaic, format, filePath string, logger *slog.Logger) error {
	format = deduceFormat(format, filePath)
	if format != "text" && format != "json" && format != "sqlite" {
		return fmt.Errorf("invalid output format: %q", format)
	}

	if format == "sqlite" {
		w, err := dump.NewSQLiteWriter(filePath, m.Width(), m.Height(), dump.WithLogger(logger))
		if err != nil {
			return err
		}
		defer w.Close()
		return dump.WriteAll(m, w)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	var w tile.Writer
	if format == "json" {
		w, err = dump.NewJSONWriter(file, m.Width(), m.Height(), dump.WithLogger(logger))
	} else {
		w, err = dump.NewTextWriter(file, m.Width(), m.Height(), dump.WithLogger(logger))
	}
	if err != nil {
		return err
	}
	return dump.WriteAll(m, w)
}
