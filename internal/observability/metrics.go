package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// flattening pipeline.
type Metrics struct {
	ArchiveBytes    prometheus.Counter
	RecordsParsed   prometheus.Counter
	TableRows       prometheus.Counter
	PipelineRunning prometheus.Gauge
	YearsCovered    prometheus.Gauge

	FetchDuration     prometheus.Histogram
	NormalizeDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ArchiveBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "names_etl",
			Name:      "archive_bytes_total",
			Help:      "Total archive bytes obtained, downloaded or from cache.",
		}),
		RecordsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "names_etl",
			Name:      "records_parsed_total",
			Help:      "Total records flattened out of the archive.",
		}),
		TableRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "names_etl",
			Name:      "table_rows_written_total",
			Help:      "Total rows written to the flat table.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "names_etl",
			Name:      "pipeline_running",
			Help:      "1 while a pipeline run is in progress.",
		}),
		YearsCovered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "names_etl",
			Name:      "years_covered",
			Help:      "Distinct years present in the last flattened table.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "names_etl",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the archive fetch stage.",
			Buckets:   []float64{0.05, 0.25, 1, 5, 15, 30, 60, 120},
		}),
		NormalizeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "names_etl",
			Name:      "normalize_duration_seconds",
			Help:      "Duration of the archive normalization stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}

	prometheus.MustRegister(
		m.ArchiveBytes,
		m.RecordsParsed,
		m.TableRows,
		m.PipelineRunning,
		m.YearsCovered,
		m.FetchDuration,
		m.NormalizeDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ArchiveBytes:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "names_etl", Name: "archive_bytes_total"}),
		RecordsParsed:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "names_etl", Name: "records_parsed_total"}),
		TableRows:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "names_etl", Name: "table_rows_written_total"}),
		PipelineRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "names_etl", Name: "pipeline_running"}),
		YearsCovered:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "names_etl", Name: "years_covered"}),
		FetchDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "names_etl", Name: "fetch_duration_seconds"}),
		NormalizeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "names_etl", Name: "normalize_duration_seconds"}),
	}
}
