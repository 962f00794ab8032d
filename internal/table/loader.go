package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/b3by/pymudata/internal/config"
	apperrors "github.com/b3by/pymudata/internal/errors"
)

// Loader reads a tabular file into a Table. The first row of the file is the
// header.
type Loader interface {
	Load(path string) (*Table, error)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVLoader reads delimited text files
type CSVLoader struct {
	cfg config.LoaderConfig
}

// NewCSVLoader creates a CSV loader with the given delimiter settings
func NewCSVLoader(cfg config.LoaderConfig) *CSVLoader {
	return &CSVLoader{cfg: cfg}
}

// Load implements Loader
func (l *CSVLoader) Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read table", err).
			WithContext("file_path", path)
	}
	// Spreadsheet tools prepend a BOM to UTF-8 exports.
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	if comma := l.cfg.Comma(); comma != 0 {
		reader.Comma = comma
	}
	reader.Comment = l.cfg.CommentRune()
	reader.TrimLeadingSpace = l.cfg.TrimLeadingSpace

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV records", err).
			WithContext("file_path", path)
	}

	return fromRecords(path, records)
}

// ExcelLoader reads one worksheet of an .xlsx workbook
type ExcelLoader struct {
	sheet string
}

// NewExcelLoader creates a workbook loader. An empty cfg.Sheet selects the
// first sheet.
func NewExcelLoader(cfg config.LoaderConfig) *ExcelLoader {
	return &ExcelLoader{sheet: cfg.Sheet}
}

// Load implements Loader
func (l *ExcelLoader) Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open workbook", err).
			WithContext("file_path", path)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, apperrors.NewParsingError("workbook has no sheets", nil).
				WithContext("file_path", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheet), err).
			WithContext("file_path", path)
	}

	// GetRows drops trailing empty cells, so pad every row to the header width.
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			if len(row) < width {
				rows[i] = append(row, make([]string, width-len(row))...)
			}
		}
	}

	return fromRecords(path, rows)
}

func fromRecords(path string, records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, apperrors.NewParsingError("empty table file", nil).
			WithContext("file_path", path)
	}
	return New(records[0], records[1:]), nil
}

// FileLoader dispatches on file extension: workbooks go to the Excel loader,
// everything else is read as delimited text.
type FileLoader struct {
	csv   *CSVLoader
	excel *ExcelLoader
}

// NewLoader creates the extension-dispatching loader
func NewLoader(cfg config.LoaderConfig) *FileLoader {
	return &FileLoader{
		csv:   NewCSVLoader(cfg),
		excel: NewExcelLoader(cfg),
	}
}

// DefaultLoader returns a loader using the default loader configuration
func DefaultLoader() *FileLoader {
	return NewLoader(config.Default().Loader)
}

// Load implements Loader
func (l *FileLoader) Load(path string) (*Table, error) {
	if IsWorkbook(path) {
		return l.excel.Load(path)
	}
	return l.csv.Load(path)
}

// IsWorkbook reports whether path has a spreadsheet extension
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	default:
		return false
	}
}
