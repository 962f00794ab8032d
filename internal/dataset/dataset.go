package dataset

import (
	"context"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel/attribute"

	"github.com/b3by/pymudata/internal/activity"
	"github.com/b3by/pymudata/internal/config"
	apperrors "github.com/b3by/pymudata/internal/errors"
	"github.com/b3by/pymudata/internal/files"
	"github.com/b3by/pymudata/internal/infrastructure"
	"github.com/b3by/pymudata/internal/table"
	"github.com/b3by/pymudata/internal/validation"
	"github.com/b3by/pymudata/pkg/contracts/domain"
)

// Option configures a Dataset
type Option func(*Dataset)

// WithConfig sets the activity file extension and the annotation columns
func WithConfig(cfg config.DatasetConfig) Option {
	return func(d *Dataset) { d.cfg = cfg }
}

// WithLoader sets the loader used for activities and annotation tables
func WithLoader(l table.Loader) Option {
	return func(d *Dataset) { d.loader = l }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(d *Dataset) { d.logger = l }
}

// WithMetrics sets the metrics sink shared with the dataset's activities
func WithMetrics(m *infrastructure.Metrics) Option {
	return func(d *Dataset) { d.metrics = m }
}

// exercise is one sub-directory of the dataset root
type exercise struct {
	name string
	path string
}

// Dataset is a directory of exercises, one sub-directory each, holding one
// tabular file per activity.
//
// The exercise directories are listed once by New; directories created
// afterwards are not seen. Activities exist only after Synth.
type Dataset struct {
	root      string
	exercises []exercise

	// activities is keyed by exercise name; order keeps the insertion
	// order of the keys. Both are nil until Synth.
	activities map[string][]*activity.Activity
	order      []string

	mask mask

	cfg       config.DatasetConfig
	loader    table.Loader
	discovery *files.Discovery
	logger    *slog.Logger
	// actLogger is handed to activities, which add their own component
	actLogger *slog.Logger
	metrics   *infrastructure.Metrics
}

// New lists the exercise directories under root. No data file is read.
func New(root string, opts ...Option) (*Dataset, error) {
	d := &Dataset{
		root: root,
		cfg:  config.Default().Dataset,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = infrastructure.GetLogger()
	}
	d.actLogger = d.logger
	d.logger = infrastructure.WithComponent(d.logger, "dataset").With("root", root)
	if d.loader == nil {
		d.loader = table.DefaultLoader()
	}

	if err := validation.NewFileValidator(d.logger).ValidateDirectory(root); err != nil {
		return nil, err
	}

	d.discovery = files.NewDiscovery(root)
	dirs, err := d.discovery.ListDirectories("")
	if err != nil {
		return nil, apperrors.NewStorageError("failed to list exercise directories", err).
			WithContext("root", root)
	}
	for _, dir := range dirs {
		d.exercises = append(d.exercises, exercise{name: dir.Name, path: dir.Path})
	}

	d.logger.Debug("Dataset opened", "exercises", len(d.exercises))
	return d, nil
}

// Root returns the dataset root as given to New
func (d *Dataset) Root() string {
	return d.root
}

// Exercises returns the visible exercise names in lexicographic order
func (d *Dataset) Exercises() []string {
	names := make([]string, 0, len(d.exercises))
	for _, e := range d.exercises {
		if d.mask.allows(e.name) {
			names = append(names, e.name)
		}
	}
	sort.Strings(names)
	return names
}

// Synth creates one lazy Activity per data file in each exercise directory,
// replacing the result of any earlier call. Files are matched on the
// configured extension, ignoring case, without descending further.
func (d *Dataset) Synth(ctx context.Context) (err error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := infrastructure.Tracer().Start(ctx, "dataset.synth")
	span.SetAttributes(infrastructure.PathAttributes("dataset", d.root)...)
	defer func() { infrastructure.EndSpan(span, err) }()

	activities := make(map[string][]*activity.Activity, len(d.exercises))
	order := make([]string, 0, len(d.exercises))
	total := 0

	for _, e := range d.exercises {
		if err := ctx.Err(); err != nil {
			return err
		}

		found, err := d.discovery.FindFiles(e.name, d.cfg.Extension)
		if err != nil {
			return apperrors.NewStorageError("failed to list activity files", err).
				WithContext("exercise", e.name)
		}

		acts := make([]*activity.Activity, 0, len(found))
		for _, f := range found {
			a, err := activity.New(f.Path,
				activity.WithExercise(e.name),
				activity.WithLoader(d.loader),
				activity.WithLogger(d.actLogger),
				activity.WithMetrics(d.metrics),
			)
			if err != nil {
				return err
			}
			acts = append(acts, a)
		}

		activities[e.name] = acts
		order = append(order, e.name)
		total += len(acts)
		d.logger.DebugContext(ctx, "Exercise synthesized", "exercise", e.name, "path", e.path, "activities", len(acts))
	}

	d.activities = activities
	d.order = order
	d.metrics.ActivitiesSynthesized(total)
	span.SetAttributes(attribute.Int("pymu.activities", total))
	d.logger.InfoContext(ctx, "Dataset synthesized", "exercises", len(order), "activities", total)
	return nil
}

// Synthesized reports whether Synth has completed at least once
func (d *Dataset) Synthesized() bool {
	return d.activities != nil
}

// AllActivities returns the activities of every visible exercise, in
// directory discovery order
func (d *Dataset) AllActivities() ([]*activity.Activity, error) {
	if !d.Synthesized() {
		return nil, errNotSynthesized()
	}

	var out []*activity.Activity
	for _, name := range d.order {
		if d.mask.allows(name) {
			out = append(out, d.activities[name]...)
		}
	}
	return out, nil
}

// Activities returns the activities of one exercise. A masked or unknown
// exercise yields no activities.
func (d *Dataset) Activities(exercise string) ([]*activity.Activity, error) {
	if !d.Synthesized() {
		return nil, errNotSynthesized()
	}
	if !d.mask.allows(exercise) {
		return nil, nil
	}
	return append([]*activity.Activity(nil), d.activities[exercise]...), nil
}

// Summary returns the serializable view of the dataset. Exercises are listed
// in the same order as Exercises.
func (d *Dataset) Summary() domain.DatasetSummary {
	s := domain.DatasetSummary{
		Root:        d.root,
		Synthesized: d.Synthesized(),
		Mask:        d.mask.list(),
	}
	for _, name := range d.Exercises() {
		es := domain.ExerciseSummary{Name: name}
		for _, a := range d.activities[name] {
			es.Activities++
			if a.Summary().Annotated() {
				es.Annotated++
			}
		}
		s.Exercises = append(s.Exercises, es)
	}
	return s
}

func errNotSynthesized() error {
	return apperrors.NewStateError("dataset not synthesized")
}
