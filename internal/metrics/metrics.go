package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "reso_lookup_seed"

// Registry holds the metrics of one seeding run. Runs are short lived, so the
// values are pushed to a Pushgateway instead of being scraped.
type Registry struct {
	reg                *prometheus.Registry
	FieldsChecked      prometheus.Counter
	FieldsSkipped      prometheus.Counter
	RecordsSynthesized prometheus.Counter
	RecordsInserted    prometheus.Counter
	InsertFailures     prometheus.Counter
	Cancelled          prometheus.Counter
	DurationSec        prometheus.Gauge
	LastSuccess        prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	checked := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fields_checked_total",
		Help:      "Lookup fields checked for existing values.",
	})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fields_skipped_total",
		Help:      "Lookup fields skipped because values already exist.",
	})
	synthesized := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_synthesized_total",
		Help:      "Lookup records built in memory.",
	})
	inserted := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_inserted_total",
		Help:      "Lookup records inserted into the store.",
	})
	failures := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insert_failures_total",
		Help:      "Batch inserts rejected by the store.",
	})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cancelled_total",
		Help:      "Runs cancelled at the confirmation prompt.",
	})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "duration_seconds",
		Help:      "Wall time of the last run.",
	})
	lastSuccess := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last run that inserted lookups.",
	})

	r.MustRegister(checked, skipped, synthesized, inserted, failures, cancelled, duration, lastSuccess)
	return &Registry{
		reg:                r,
		FieldsChecked:      checked,
		FieldsSkipped:      skipped,
		RecordsSynthesized: synthesized,
		RecordsInserted:    inserted,
		InsertFailures:     failures,
		Cancelled:          cancelled,
		DurationSec:        duration,
		LastSuccess:        lastSuccess,
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// ObserveRun records the run duration measured from start.
func (r *Registry) ObserveRun(start time.Time) {
	r.DurationSec.Set(time.Since(start).Seconds())
}

// Push sends the registry to a Pushgateway, grouped by database.
func (r *Registry) Push(ctx context.Context, url, job, database string) error {
	err := push.New(url, job).
		Gatherer(r.reg).
		Grouping("database", database).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
