package tabio

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// SheetNames lists the sheets of a workbook in workbook order.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// ReadXLSX loads one sheet of a workbook into a dataset. An empty sheet name
// selects the first sheet. The first row is the header; header cells are
// trimmed, short rows are padded with missing values, long rows truncated.
func ReadXLSX(path, sheet string) (*tabular.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewSheetError(path, sheet, nil)
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !containsSheet(sheets, sheet) {
		return nil, errors.NewSheetError(path, sheet, sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.WrapParse("xlsx", path, err)
	}
	if len(rows) == 0 {
		return nil, errors.NewParseError("xlsx", path, "sheet "+sheet+" has no header row", errors.ErrEmptyFile)
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	ds, err := tabular.New(header...)
	if err != nil {
		return nil, err
	}

	for _, cells := range rows[1:] {
		row := make([]tabular.Value, len(header))
		for i := range row {
			if i < len(cells) {
				row[i] = tabular.Parse(cells[i])
			} else {
				row[i] = tabular.Missing()
			}
		}
		if err := ds.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}

// WriteXLSX saves a dataset as a new single-sheet workbook. When styled is
// true the sheet gets the formatted report treatment: colored header,
// alternating row fills, borders, a frozen header row, and auto-fitted
// column widths.
func WriteXLSX(path, sheet string, ds *tabular.Dataset, styled bool) error {
	if sheet == "" {
		sheet = constants.DefaultOutputSheet
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := fillSheet(f, sheet, ds, styled); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// AddSheet writes a dataset into an existing workbook under the given sheet
// name, replacing the sheet if it already exists.
func AddSheet(path, sheet string, ds *tabular.Dataset, styled bool) error {
	if sheet == "" {
		sheet = constants.DefaultOutputSheet
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer f.Close()

	if containsSheet(f.GetSheetList(), sheet) {
		if err := f.DeleteSheet(sheet); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := fillSheet(f, sheet, ds, styled); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// fillSheet writes the header and data rows, then applies styling on demand.
func fillSheet(f *excelize.File, sheet string, ds *tabular.Dataset, styled bool) error {
	for j, name := range ds.Columns() {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return errors.WrapParse("xlsx", sheet, err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return errors.WrapParse("xlsx", sheet, err)
		}
	}
	for i := 0; i < ds.NumRows(); i++ {
		for j, v := range ds.Row(i) {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return errors.WrapParse("xlsx", sheet, err)
			}
			if err := setCell(f, sheet, cell, v); err != nil {
				return errors.WrapParse("xlsx", sheet, err)
			}
		}
	}
	if !styled {
		return nil
	}
	return applyReportStyle(f, sheet, ds)
}

// setCell writes a typed value so numbers and booleans stay native in the
// workbook instead of degrading to text.
func setCell(f *excelize.File, sheet, cell string, v tabular.Value) error {
	switch v.Kind() {
	case tabular.KindMissing:
		return nil
	case tabular.KindNumber:
		n, _ := v.AsNumber()
		return f.SetCellValue(sheet, cell, n)
	case tabular.KindBool:
		b, _ := v.AsBool()
		return f.SetCellValue(sheet, cell, b)
	case tabular.KindDate:
		t, _ := v.AsDate()
		return f.SetCellValue(sheet, cell, t)
	default:
		return f.SetCellValue(sheet, cell, v.String())
	}
}
