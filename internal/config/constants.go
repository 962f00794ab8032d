package config

// Application constants
const (
	AppName = "pymudata"

	// EnvPrefix namespaces every environment variable read by Load,
	// e.g. PYMU_DATASET_EXTENSION.
	EnvPrefix = "PYMU"

	// Dataset defaults
	DefaultExtension         = ".csv"
	DefaultFilenameColumn    = "filename"
	DefaultCoordinatesColumn = "coordinates"

	// Loader defaults
	DefaultDelimiter = ","

	// Logging defaults
	DefaultLogLevel    = "info"
	DefaultLogOutput   = "console"
	DefaultLogFilePath = "logs/pymu.log"

	// Tracing defaults
	DefaultTraceExporter = "none"
	DefaultSampleRatio   = 1.0
)
