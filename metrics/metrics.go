// Package metrics exposes mosaic statistics and edit activity as Prometheus
// metrics.
package metrics

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/eak1mov/go-cornerstitch/mosaic"
	"github.com/eak1mov/go-cornerstitch/tile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const (
	namespace = "mosaic"

	typeLabel    = "type"
	opLabel      = "op"
	errTypeLabel = "error_type"
)

var tileTypes = []tile.Type{tile.Empty, tile.Occupied, tile.Overlap}

// StatsSource is implemented by *mosaic.Mosaic.
type StatsSource interface {
	Stats() mosaic.Stats
	Width() int
	Height() int
}

// Collector reports the tile population of a mosaic on every scrape.
// The mosaic must not be edited concurrently with a scrape.
type Collector struct {
	src         StatsSource
	tiles       *prometheus.Desc
	area        *prometheus.Desc
	utilization *prometheus.Desc
}

func NewCollector(src StatsSource, constLabels prometheus.Labels) *Collector {
	return &Collector{
		src: src,
		tiles: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "tiles"),
			"The number of tiles by type.",
			[]string{typeLabel}, constLabels,
		),
		area: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "area"),
			"The canvas area covered by tiles of each type.",
			[]string{typeLabel}, constLabels,
		),
		utilization: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "utilization_ratio"),
			"The fraction of the canvas covered by non-empty tiles.",
			nil, constLabels,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tiles
	ch <- c.area
	ch <- c.utilization
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()
	for _, typ := range tileTypes {
		label := strings.ToLower(typ.String())
		ch <- prometheus.MustNewConstMetric(c.tiles, prometheus.GaugeValue, float64(stats.Tiles[typ]), label)
		ch <- prometheus.MustNewConstMetric(c.area, prometheus.GaugeValue, float64(stats.Area[typ]), label)
	}

	canvas := float64(c.src.Width() * c.src.Height())
	used := float64(stats.Area[tile.Occupied] + stats.Area[tile.Overlap])
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, used/canvas)
}

// Recorder counts edit operations and their failures.
type Recorder struct {
	edits      *prometheus.CounterVec
	editErrors *prometheus.CounterVec
	latency    *prometheus.HistogramVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		edits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edits_total",
			Help:      "The number of edit operations applied.",
		}, []string{opLabel}),

		editErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edit_errors_total",
			Help:      "The edit operations rejected by the mosaic.",
		}, []string{opLabel, errTypeLabel}),

		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "edit_latency_seconds",
			Help:      "The time to apply an edit operation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{opLabel}),
	}
}

// Observe records an operation that started at start and ended with err.
func (r *Recorder) Observe(op string, start time.Time, err error) {
	r.latency.With(prometheus.Labels{
		opLabel: op,
	}).Observe(time.Since(start).Seconds())

	if err != nil {
		r.editErrors.With(prometheus.Labels{
			opLabel:      op,
			errTypeLabel: errorType(err),
		}).Inc()
		return
	}
	r.edits.With(prometheus.Labels{
		opLabel: op,
	}).Inc()
}

func errorType(err error) string {
	for _, known := range []struct {
		err  error
		name string
	}{
		{mosaic.ErrOutOfCanvas, "out_of_canvas"},
		{mosaic.ErrRegionOccupied, "region_occupied"},
		{mosaic.ErrTileNotRegistered, "not_registered"},
		{mosaic.ErrUnknownTile, "unknown_tile"},
		{mosaic.ErrInvalidType, "invalid_type"},
		{mosaic.ErrInvalidCut, "invalid_cut"},
		{mosaic.ErrNotMergeable, "not_mergeable"},
		{mosaic.ErrInvariantViolation, "invariant_violation"},
	} {
		if errors.Is(err, known.err) {
			return known.name
		}
	}
	return "other"
}

// WriteText writes everything g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
