// Package tabio loads and saves tabular datasets from spreadsheet files.
// CSV files are read with a declared encoding and delimiter, never sniffed;
// xlsx files are read and written through excelize, with an optional styled
// export that mirrors the formatted reports the application produces.
package tabio

import (
	"path/filepath"
	"strings"

	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// Format identifies a supported spreadsheet file format.
type Format string

// Supported file formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat resolves a file path to its format by extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", errors.NewFormatError(path, ext)
	}
}

// Load reads a dataset from path, dispatching on the file extension. The
// sheet argument applies to workbooks only; empty means the first sheet.
// csvOpts carries the declared delimiter and encoding for CSV inputs.
func Load(path, sheet string, csvOpts CSVOptions) (*tabular.Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatCSV:
		return ReadCSV(path, csvOpts)
	default:
		return ReadXLSX(path, sheet)
	}
}
