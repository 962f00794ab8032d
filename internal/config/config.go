package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "github.com/b3by/pymudata/internal/errors"
	"github.com/b3by/pymudata/internal/validation"
)

// Config represents the complete library configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Dataset DatasetConfig `yaml:"dataset" envconfig:"DATASET"`
	Loader  LoaderConfig  `yaml:"loader" envconfig:"LOADER"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// DatasetConfig controls how a dataset root is scanned and annotated
type DatasetConfig struct {
	// Extension selects activity files inside each exercise directory.
	Extension string `yaml:"extension" envconfig:"EXTENSION" validate:"required,startswith=."`
	// FilenameColumn and CoordinatesColumn name the columns of the
	// coordinate annotation table.
	FilenameColumn    string `yaml:"filename_column" envconfig:"FILENAME_COLUMN" validate:"required"`
	CoordinatesColumn string `yaml:"coordinates_column" envconfig:"COORDINATES_COLUMN" validate:"required"`
}

// LoaderConfig contains tabular loader settings
type LoaderConfig struct {
	Delimiter        string `yaml:"delimiter" envconfig:"DELIMITER" validate:"required"`
	Comment          string `yaml:"comment" envconfig:"COMMENT"`
	TrimLeadingSpace bool   `yaml:"trim_leading_space" envconfig:"TRIM_LEADING_SPACE"`
	// Sheet is the worksheet read from spreadsheet files. Empty means the
	// first sheet of the workbook.
	Sheet string `yaml:"sheet" envconfig:"SHEET"`
}

// TracingConfig selects the span exporter installed by
// infrastructure.InitializeTracing
type TracingConfig struct {
	Exporter    string  `yaml:"exporter" envconfig:"EXPORTER" validate:"oneof=none stdout"`
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO" validate:"gte=0,lte=1"`
	PrettyPrint bool    `yaml:"pretty_print" envconfig:"PRETTY_PRINT"`
}

// Comma returns the field delimiter as a rune
func (c LoaderConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// CommentRune returns the comment marker, or 0 when comments are disabled
func (c LoaderConfig) CommentRune() rune {
	if c.Comment == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Comment)
	return r
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then PYMU_* environment variables. Later
// sources win.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, apperrors.NewConfigError("failed to load config from file", err).
				WithContext("path", path)
		}
	}

	// No default tags: envconfig leaves a field untouched when its
	// variable is unset, so file values survive.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Output = strings.ToLower(c.Logging.Output)
	c.Tracing.Exporter = strings.ToLower(c.Tracing.Exporter)

	if err := validation.Struct(c); err != nil {
		return err
	}

	if utf8.RuneCountInString(c.Loader.Delimiter) != 1 {
		return apperrors.NewAppValidationError("loader delimiter must be a single character").
			WithContext("delimiter", c.Loader.Delimiter)
	}
	if utf8.RuneCountInString(c.Loader.Comment) > 1 {
		return apperrors.NewAppValidationError("loader comment must be at most one character").
			WithContext("comment", c.Loader.Comment)
	}
	if c.Loader.Comment != "" && c.Loader.Comment == c.Loader.Delimiter {
		return apperrors.NewAppValidationError("loader comment and delimiter must differ")
	}

	return nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFilePath,
		},
		Dataset: DatasetConfig{
			Extension:         DefaultExtension,
			FilenameColumn:    DefaultFilenameColumn,
			CoordinatesColumn: DefaultCoordinatesColumn,
		},
		Loader: LoaderConfig{
			Delimiter: DefaultDelimiter,
		},
		Tracing: TracingConfig{
			Exporter:    DefaultTraceExporter,
			SampleRatio: DefaultSampleRatio,
		},
	}
}
