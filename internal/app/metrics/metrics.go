// Package metrics exposes Prometheus collectors for the intake pipeline,
// the history store and exports. A nil *Collector is valid and records
// nothing, so components can be constructed without metrics in tests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "voxscribe"

// Collector groups all application collectors.
type Collector struct {
	Submissions        *prometheus.CounterVec
	Rejections         *prometheus.CounterVec
	ProcessingDuration prometheus.Histogram
	Progress           prometheus.Gauge
	Busy               prometheus.Gauge
	Searches           prometheus.Counter
	SearchResults      prometheus.Histogram
	Exports            *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Submissions by outcome (completed, failed, cancelled).",
		}, []string{"outcome"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "rejections_total",
			Help:      "Submissions rejected before processing, by reason.",
		}, []string{"reason"}),
		ProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "processing_duration_seconds",
			Help:      "Time from accepted submission to result or failure.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		Progress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "progress_percent",
			Help:      "Progress of the in-flight submission.",
		}),
		Busy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "intake",
			Name:      "busy",
			Help:      "1 while a submission is in flight.",
		}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "searches_total",
			Help:      "History searches executed.",
		}),
		SearchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "history",
			Name:      "search_results",
			Help:      "Number of entries matched per search.",
			Buckets:   prometheus.LinearBuckets(0, 10, 10),
		}),
		Exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "payloads_total",
			Help:      "Export payloads by format and outcome.",
		}, []string{"format", "outcome"}),
	}

	for _, col := range []prometheus.Collector{
		c.Submissions, c.Rejections, c.ProcessingDuration, c.Progress,
		c.Busy, c.Searches, c.SearchResults, c.Exports,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics on registration failure.
func MustNew(reg prometheus.Registerer) *Collector {
	c, err := New(reg)
	if err != nil {
		panic("failed to register metrics: " + err.Error())
	}
	return c
}

func (c *Collector) SubmissionFinished(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Submissions.WithLabelValues(outcome).Inc()
	c.ProcessingDuration.Observe(elapsed.Seconds())
}

func (c *Collector) SubmissionRejected(reason string) {
	if c == nil {
		return
	}
	c.Rejections.WithLabelValues(reason).Inc()
}

func (c *Collector) SetProgress(percent int, busy bool) {
	if c == nil {
		return
	}
	c.Progress.Set(float64(percent))
	if busy {
		c.Busy.Set(1)
	} else {
		c.Busy.Set(0)
	}
}

func (c *Collector) SearchExecuted(matches int) {
	if c == nil {
		return
	}
	c.Searches.Inc()
	c.SearchResults.Observe(float64(matches))
}

func (c *Collector) ExportFinished(format string, err error) {
	if c == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.Exports.WithLabelValues(format, outcome).Inc()
}
