package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "pymu"

// Metrics counts table loads, streamed windows and rejected annotations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	tablesAcquired       prometheus.Counter
	rowsLoaded           prometheus.Counter
	windowsStreamed      prometheus.Counter
	activitiesSynth      prometheus.Counter
	annotationRejections *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		tablesAcquired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tables_acquired_total",
			Help:      "Number of activity tables loaded from disk.",
		}),
		rowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rows_loaded_total",
			Help:      "Number of data rows loaded across all activity tables.",
		}),
		windowsStreamed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "windows_streamed_total",
			Help:      "Number of sliding windows yielded by activity streams.",
		}),
		activitiesSynth: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "activities_synthesized_total",
			Help:      "Number of activities created by dataset synthesis.",
		}),
		annotationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "annotation_rejections_total",
			Help:      "Number of annotation assignments rejected by validation.",
		}, []string{"field"}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{
		m.tablesAcquired,
		m.rowsLoaded,
		m.windowsStreamed,
		m.activitiesSynth,
		m.annotationRejections,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// TableAcquired records one table load of the given row count
func (m *Metrics) TableAcquired(rows int) {
	if m == nil {
		return
	}
	m.tablesAcquired.Inc()
	m.rowsLoaded.Add(float64(rows))
}

// WindowStreamed records one yielded window
func (m *Metrics) WindowStreamed() {
	if m == nil {
		return
	}
	m.windowsStreamed.Inc()
}

// ActivitiesSynthesized records n activities created by a synthesis pass
func (m *Metrics) ActivitiesSynthesized(n int) {
	if m == nil {
		return
	}
	m.activitiesSynth.Add(float64(n))
}

// AnnotationRejected records a rejected assignment to field
func (m *Metrics) AnnotationRejected(field string) {
	if m == nil {
		return
	}
	m.annotationRejections.WithLabelValues(field).Inc()
}
