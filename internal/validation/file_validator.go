package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/b3by/pymudata/internal/errors"
)

// FileValidator checks that activity files and dataset roots exist before
// they are used
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks that path names an existing regular file. A missing
// path or a directory yields a NOT_FOUND error.
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Debug("File does not exist",
			slog.String("file_path", path))
		return apperrors.NewNotFoundError(path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file_path", path),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to stat file %s", path), err)
	}
	if info.IsDir() {
		v.logger.Debug("Path is a directory, not a file",
			slog.String("file_path", path))
		return apperrors.NewNotFoundError(path).WithContext("is_dir", true)
	}

	v.logger.Debug("File validated",
		slog.String("file_path", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateDirectory checks that dir names an existing directory
func (v *FileValidator) ValidateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Debug("Directory does not exist",
			slog.String("directory", dir))
		return apperrors.NewNotFoundError(dir)
	}
	if err != nil {
		v.logger.Error("Failed to stat directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to stat directory %s", dir), err)
	}
	if !info.IsDir() {
		v.logger.Debug("Path is not a directory",
			slog.String("path", dir))
		return apperrors.NewNotFoundError(dir).WithContext("is_dir", false)
	}
	return nil
}

// HasExtension reports whether path ends in ext, ignoring case. ext must
// include the leading dot.
func HasExtension(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}
