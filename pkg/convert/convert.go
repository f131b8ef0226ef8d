// Package convert implements file format conversion between CSV files and
// xlsx workbooks, plus multi-file concatenation into a single output.
package convert

import (
	"context"

	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// Options controls a conversion run.
type Options struct {
	// CSV holds the delimiter and declared encoding for the CSV side of
	// the conversion, whichever side that is.
	CSV tabio.CSVOptions

	// Sheet is the sheet to read from or write to. Empty selects the
	// first sheet on read and the default output sheet on write.
	Sheet string

	// Styled applies the formatted report styling to xlsx output.
	Styled bool
}

// DefaultOptions returns comma-delimited UTF-8 options with no styling.
func DefaultOptions() Options {
	return Options{CSV: tabio.DefaultCSVOptions()}
}

// defaultSheet is the sheet name used for converted workbook output when
// the caller does not pick one.
const defaultSheet = "Data"

// CSVToXLSX converts a CSV file into a new xlsx workbook.
func CSVToXLSX(ctx context.Context, csvPath, xlsxPath string, opts Options) error {
	if err := ctx.Err(); err != nil {
		return errors.ErrCanceled
	}
	ds, err := tabio.ReadCSV(csvPath, opts.CSV)
	if err != nil {
		return err
	}
	sheet := opts.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	return tabio.WriteXLSX(xlsxPath, sheet, ds, opts.Styled)
}

// XLSXToCSV converts one sheet of a workbook into a CSV file.
func XLSXToCSV(ctx context.Context, xlsxPath, csvPath string, opts Options) error {
	if err := ctx.Err(); err != nil {
		return errors.ErrCanceled
	}
	ds, err := tabio.ReadXLSX(xlsxPath, opts.Sheet)
	if err != nil {
		return err
	}
	return tabio.WriteCSV(csvPath, ds, opts.CSV)
}

// Concat loads every input file and stacks their rows into one dataset.
// Columns are unioned in first-seen order; cells absent from a file are
// missing in its rows. Inputs may mix CSV and xlsx freely.
func Concat(ctx context.Context, paths []string, opts Options) (*tabular.Dataset, error) {
	if len(paths) == 0 {
		return nil, errors.NewValidationError("paths", paths, "at least one input file is required")
	}
	datasets := make([]*tabular.Dataset, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.ErrCanceled
		}
		ds, err := tabio.Load(path, opts.Sheet, opts.CSV)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, ds)
	}
	return tabular.Concat(datasets...)
}

// ConcatToFile concatenates the inputs and writes the result to outPath,
// dispatching on the output extension.
func ConcatToFile(ctx context.Context, paths []string, outPath string, opts Options) (*tabular.Dataset, error) {
	ds, err := Concat(ctx, paths, opts)
	if err != nil {
		return nil, err
	}
	format, err := tabio.DetectFormat(outPath)
	if err != nil {
		return nil, err
	}
	if format == tabio.FormatCSV {
		err = tabio.WriteCSV(outPath, ds, opts.CSV)
	} else {
		err = tabio.WriteXLSX(outPath, opts.Sheet, ds, opts.Styled)
	}
	if err != nil {
		return nil, err
	}
	return ds, nil
}
