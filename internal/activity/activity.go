package activity

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "github.com/b3by/pymudata/internal/errors"
	"github.com/b3by/pymudata/internal/infrastructure"
	"github.com/b3by/pymudata/internal/table"
	"github.com/b3by/pymudata/internal/validation"
	"github.com/b3by/pymudata/pkg/contracts/domain"
)

const (
	fieldCoordinates = "ground_coordinates"
	fieldDeviations  = "primitive_deviations"
	fieldLabels      = "pointwise_labels"
)

// Pair is one primitive segment, delimited by two ground coordinates
type Pair struct {
	Start int
	End   int
}

// Activity is one recorded exercise trial backed by a tabular data file,
// plus its optional ground-truth annotations.
//
// Invariants, checked on every assignment:
//   - ground coordinates have even length
//   - len(primitive deviations) == len(ground pairs) when both are set
//   - len(pointwise labels) == table rows once the table is loaded
//
// A rejected assignment leaves every field as it was. Activity is not safe
// for concurrent mutation.
type Activity struct {
	id       string
	filePath string
	exercise string
	subject  *int

	table *table.Table

	coordinates []int
	pairs       []Pair
	deviations  []float64
	labels      []int

	loader  table.Loader
	logger  *slog.Logger
	metrics *infrastructure.Metrics
}

// New creates an Activity for the data file at path. The file must exist.
// Annotations given as options are assigned in order coordinates,
// deviations, labels, after the table is loaded when WithEager is set.
func New(path string, opts ...Option) (*Activity, error) {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	logger := s.logger
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	logger = infrastructure.WithComponent(logger, "activity")

	if err := validation.NewFileValidator(logger).ValidateFile(path); err != nil {
		return nil, err
	}

	loader := s.loader
	if loader == nil {
		loader = table.DefaultLoader()
	}

	a := &Activity{
		id:       uuid.New().String(),
		filePath: path,
		exercise: s.exercise,
		subject:  s.subject,
		loader:   loader,
		metrics:  s.metrics,
	}
	a.logger = logger.With("activity_id", a.id, "file_path", path)

	if s.eager {
		if err := a.Acquire(); err != nil {
			return nil, err
		}
	}
	if err := a.SetGroundCoordinates(s.coordinates); err != nil {
		return nil, err
	}
	if err := a.SetPrimitiveDeviations(s.deviations); err != nil {
		return nil, err
	}
	if err := a.SetPointwiseLabels(s.labels); err != nil {
		return nil, err
	}

	return a, nil
}

// Acquire loads the table from the data file. It loads at most once: later
// calls log a notice and return nil.
//
// Labels stored before the table existed are checked against the row count.
// On mismatch the table stays loaded, the labels are dropped and a
// validation error is returned.
func (a *Activity) Acquire() error {
	if a.table != nil {
		a.logger.Info("Data file already acquired")
		return nil
	}

	t, err := a.loader.Load(a.filePath)
	if err != nil {
		return err
	}
	a.table = t
	a.metrics.TableAcquired(t.RowCount())
	a.logger.Debug("Data file acquired", "rows", t.RowCount(), "columns", t.ColumnCount())

	if a.labels != nil && len(a.labels) != t.RowCount() {
		got := len(a.labels)
		a.labels = nil
		a.metrics.AnnotationRejected(fieldLabels)
		return labelMismatch(got, t.RowCount())
	}
	return nil
}

// SetGroundCoordinates assigns the ground coordinates and rebuilds the
// ground pairs from consecutive elements. A nil or empty slice clears both
// and leaves deviations and labels alone.
func (a *Activity) SetGroundCoordinates(coords []int) error {
	if len(coords) == 0 {
		a.coordinates = nil
		a.pairs = nil
		return nil
	}

	if len(coords)%2 != 0 {
		a.metrics.AnnotationRejected(fieldCoordinates)
		return apperrors.NewAppValidationError("odd coordinate count").
			WithContext("coordinates", len(coords))
	}

	pairs := make([]Pair, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		pairs = append(pairs, Pair{Start: coords[i], End: coords[i+1]})
	}

	if a.deviations != nil && len(a.deviations) != len(pairs) {
		a.metrics.AnnotationRejected(fieldCoordinates)
		return deviationMismatch(len(pairs), len(a.deviations))
	}

	a.coordinates = append([]int(nil), coords...)
	a.pairs = pairs
	return nil
}

// SetPrimitiveDeviations assigns one deviation per ground pair. A nil or
// empty slice clears them.
func (a *Activity) SetPrimitiveDeviations(devs []float64) error {
	if len(devs) == 0 {
		a.deviations = nil
		return nil
	}

	if a.pairs != nil && len(a.pairs) != len(devs) {
		a.metrics.AnnotationRejected(fieldDeviations)
		return deviationMismatch(len(a.pairs), len(devs))
	}

	a.deviations = append([]float64(nil), devs...)
	return nil
}

// SetPointwiseLabels assigns one label per table row. Before the table is
// loaded the labels are stored unchecked; Acquire checks them later.
func (a *Activity) SetPointwiseLabels(labels []int) error {
	if len(labels) == 0 {
		a.labels = nil
		return nil
	}

	if a.table != nil && len(labels) != a.table.RowCount() {
		a.metrics.AnnotationRejected(fieldLabels)
		return labelMismatch(len(labels), a.table.RowCount())
	}

	a.labels = append([]int(nil), labels...)
	return nil
}

// ClearAnnotations drops coordinates, pairs, deviations and labels
func (a *Activity) ClearAnnotations() {
	a.coordinates = nil
	a.pairs = nil
	a.deviations = nil
	a.labels = nil
}

func deviationMismatch(pairs, deviations int) error {
	return apperrors.NewAppValidationError("count mismatch between primitives and deviations").
		WithContext("primitives", pairs).
		WithContext("deviations", deviations)
}

func labelMismatch(labels, rows int) error {
	return apperrors.NewAppValidationError("count mismatch between points and labels").
		WithContext("labels", labels).
		WithContext("rows", rows)
}

// ID returns the identifier assigned at construction
func (a *Activity) ID() string { return a.id }

// FilePath returns the data file path as given to New
func (a *Activity) FilePath() string { return a.filePath }

// FileName returns the base name of the data file
func (a *Activity) FileName() string { return filepath.Base(a.filePath) }

// ExerciseName returns the exercise name, empty when unset
func (a *Activity) ExerciseName() string { return a.exercise }

// Subject returns the subject identifier and whether one was set
func (a *Activity) Subject() (int, bool) {
	if a.subject == nil {
		return 0, false
	}
	return *a.subject, true
}

// Acquired reports whether the table has been loaded
func (a *Activity) Acquired() bool { return a.table != nil }

// Table returns the loaded table, or nil before Acquire
func (a *Activity) Table() *table.Table { return a.table }

// GroundCoordinates returns a copy of the ground coordinates
func (a *Activity) GroundCoordinates() []int {
	return append([]int(nil), a.coordinates...)
}

// GroundPairs returns a copy of the ground pairs
func (a *Activity) GroundPairs() []Pair {
	return append([]Pair(nil), a.pairs...)
}

// PrimitiveDeviations returns a copy of the primitive deviations
func (a *Activity) PrimitiveDeviations() []float64 {
	return append([]float64(nil), a.deviations...)
}

// PointwiseLabels returns a copy of the pointwise labels
func (a *Activity) PointwiseLabels() []int {
	return append([]int(nil), a.labels...)
}

// Summary returns the serializable view of the activity
func (a *Activity) Summary() domain.ActivitySummary {
	s := domain.ActivitySummary{
		ID:         a.id,
		FilePath:   a.filePath,
		Exercise:   a.exercise,
		Acquired:   a.table != nil,
		Primitives: len(a.pairs),
		Deviations: len(a.deviations),
		Labeled:    a.labels != nil,
	}
	if a.subject != nil {
		subject := *a.subject
		s.Subject = &subject
	}
	if a.table != nil {
		s.Rows = a.table.RowCount()
	}
	return s
}

// String implements fmt.Stringer
func (a *Activity) String() string {
	if a.exercise == "" {
		return fmt.Sprintf("Activity(%s)", a.FileName())
	}
	return fmt.Sprintf("Activity(%s/%s)", a.exercise, a.FileName())
}
