package activity

import (
	"log/slog"

	"github.com/b3by/pymudata/internal/infrastructure"
	"github.com/b3by/pymudata/internal/table"
)

// Option configures an Activity at construction
type Option func(*settings)

type settings struct {
	exercise    string
	subject     *int
	coordinates []int
	deviations  []float64
	labels      []int
	eager       bool

	loader  table.Loader
	logger  *slog.Logger
	metrics *infrastructure.Metrics
}

// WithExercise sets the exercise name
func WithExercise(name string) Option {
	return func(s *settings) { s.exercise = name }
}

// WithSubject sets the subject identifier
func WithSubject(id int) Option {
	return func(s *settings) { s.subject = &id }
}

// WithGroundCoordinates sets the initial ground coordinates
func WithGroundCoordinates(coords []int) Option {
	return func(s *settings) { s.coordinates = coords }
}

// WithPrimitiveDeviations sets the initial primitive deviations
func WithPrimitiveDeviations(devs []float64) Option {
	return func(s *settings) { s.deviations = devs }
}

// WithPointwiseLabels sets the initial pointwise labels
func WithPointwiseLabels(labels []int) Option {
	return func(s *settings) { s.labels = labels }
}

// WithEager loads the table during construction instead of on first Acquire
func WithEager() Option {
	return func(s *settings) { s.eager = true }
}

// WithLoader replaces the table loader. The default dispatches on extension.
func WithLoader(l table.Loader) Option {
	return func(s *settings) { s.loader = l }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithMetrics sets the metrics sink. Nil disables metrics.
func WithMetrics(m *infrastructure.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}
