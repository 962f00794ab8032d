// Package config provides centralized configuration management for pymudata.
// It handles loading configuration from multiple sources, validation, and
// provides a type-safe API for the settings used by the logger, the dataset
// scanner and the tabular loaders.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. A YAML configuration file, when a path is given
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern PYMU_<SECTION>_<FIELD>:
//
//	PYMU_LOGGING_LEVEL=debug
//	PYMU_DATASET_EXTENSION=.xlsx
//	PYMU_DATASET_FILENAME_COLUMN=filename
//	PYMU_DATASET_COORDINATES_COLUMN=coordinates
//	PYMU_LOADER_DELIMITER=;
//	PYMU_TRACING_EXPORTER=stdout
//
// # Validation
//
// Configuration is validated at load time with struct tags. Loader
// delimiters and comment markers must be single characters and must differ.
//
// # Usage
//
//	cfg, err := config.Load("pymu.yaml")
//	if err != nil {
//	    return err
//	}
//	ds, err := dataset.New(root, dataset.WithConfig(cfg.Dataset))
package config
