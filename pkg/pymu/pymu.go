package pymu

import (
	"github.com/b3by/pymudata/internal/activity"
	"github.com/b3by/pymudata/internal/config"
	"github.com/b3by/pymudata/internal/dataset"
	apperrors "github.com/b3by/pymudata/internal/errors"
	"github.com/b3by/pymudata/internal/infrastructure"
	"github.com/b3by/pymudata/internal/table"
	"github.com/b3by/pymudata/pkg/contracts"
)

type (
	// Activity is one recorded exercise trial
	Activity = activity.Activity
	// ActivityOption configures an Activity
	ActivityOption = activity.Option
	// Pair is one primitive segment
	Pair = activity.Pair

	// Dataset is a directory of exercises
	Dataset = dataset.Dataset
	// DatasetOption configures a Dataset
	DatasetOption = dataset.Option
	// AnnotationFiles names the annotation tables read by Dataset.Annotate
	AnnotationFiles = dataset.AnnotationFiles

	// Config is the library configuration
	Config = config.Config
	// TracingConfig selects the span exporter
	TracingConfig = config.TracingConfig
	// Metrics holds the Prometheus collectors
	Metrics = infrastructure.Metrics
	// Table is a loaded data file
	Table = table.Table
)

// Activity options
var (
	WithExercise            = activity.WithExercise
	WithSubject             = activity.WithSubject
	WithGroundCoordinates   = activity.WithGroundCoordinates
	WithPrimitiveDeviations = activity.WithPrimitiveDeviations
	WithPointwiseLabels     = activity.WithPointwiseLabels
	WithEager               = activity.WithEager
	WithLoader              = activity.WithLoader
	WithLogger              = activity.WithLogger
	WithMetrics             = activity.WithMetrics
)

// Dataset options
var (
	WithDatasetConfig  = dataset.WithConfig
	WithDatasetLoader  = dataset.WithLoader
	WithDatasetLogger  = dataset.WithLogger
	WithDatasetMetrics = dataset.WithMetrics
)

// Error predicates
var (
	IsNotFound   = apperrors.IsNotFound
	IsValidation = apperrors.IsValidation
	IsState      = apperrors.IsState
	IsParsing    = apperrors.IsParsing
)

// Infrastructure
var (
	LoadConfig        = config.Load
	DefaultConfig     = config.Default
	InitializeLogger  = infrastructure.InitializeLogger
	CloseLogFile      = infrastructure.CloseLogFile
	InitializeTracing = infrastructure.InitializeTracing
	NewMetrics        = infrastructure.NewMetrics
	NewLoader         = table.NewLoader
)

// FromFile creates an Activity for the data file at path
func FromFile(path string, opts ...ActivityOption) (*Activity, error) {
	return activity.New(path, opts...)
}

// NewActivity creates an Activity for the data file at path
func NewActivity(path string, opts ...ActivityOption) (*Activity, error) {
	return activity.New(path, opts...)
}

// NewDataset opens the dataset rooted at root
func NewDataset(root string, opts ...DatasetOption) (*Dataset, error) {
	return dataset.New(root, opts...)
}

// Version returns the library version string
func Version() string {
	return contracts.GetVersionString()
}
