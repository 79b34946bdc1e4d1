// Package metrics records what the service generates and serves.
//
// Services depend on the Recorder interface only. Nop is used when metrics
// are disabled; Prometheus keeps its collectors on a private registry that
// the server exposes on /metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the narrow interface the services report to.
type Recorder interface {
	// ObserveGeneration records one synthesized dataset.
	ObserveGeneration(table string, rows int, d time.Duration)
	// IncExport counts a dataset served in the given format (csv, json).
	IncExport(table, format string)
	// IncTableNotFound counts lookups of tables missing from the catalog.
	IncTableNotFound()
}

// Nop discards everything.
type Nop struct{}

func (Nop) ObserveGeneration(string, int, time.Duration) {}
func (Nop) IncExport(string, string)                     {}
func (Nop) IncTableNotFound()                            {}

// Prometheus is a Recorder backed by client_golang collectors.
type Prometheus struct {
	reg *prometheus.Registry

	rows     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	exports  *prometheus.CounterVec
	notFound prometheus.Counter
}

// NewPrometheus registers the service collectors on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()

	p := &Prometheus{
		reg: reg,
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampledata_rows_generated_total",
				Help: "Rows synthesized, partitioned by table.",
			},
			[]string{"table"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sampledata_generation_duration_seconds",
				Help:    "Time spent synthesizing one dataset.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"table"},
		),
		exports: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampledata_exports_total",
				Help: "Datasets served, partitioned by table and format.",
			},
			[]string{"table", "format"},
		),
		notFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sampledata_table_not_found_total",
				Help: "Requests for tables that are not in the catalog.",
			},
		),
	}

	reg.MustRegister(p.rows, p.duration, p.exports, p.notFound)
	reg.MustRegister(collectors.NewGoCollector())

	return p
}

func (p *Prometheus) ObserveGeneration(table string, rows int, d time.Duration) {
	if rows > 0 {
		p.rows.WithLabelValues(table).Add(float64(rows))
	}
	p.duration.WithLabelValues(table).Observe(d.Seconds())
}

func (p *Prometheus) IncExport(table, format string) {
	p.exports.WithLabelValues(table, format).Inc()
}

func (p *Prometheus) IncTableNotFound() {
	p.notFound.Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}
