package tabio

import (
	"github.com/xuri/excelize/v2"

	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

func thinBorders() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "D9D9D9", Style: 1}
	}
	return borders
}

// applyReportStyle formats a filled sheet as a report: bold white header on a
// dark fill, alternating row shading, thin borders, a frozen header row, and
// column widths fitted to a sample of the data.
func applyReportStyle(f *excelize.File, sheet string, ds *tabular.Dataset) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  constants.HeaderFontSize,
			Color: constants.HeaderFontColor,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{constants.HeaderFillColor},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return errors.WrapParse("xlsx", sheet, err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: constants.DataFontSize},
		Border: thinBorders(),
	})
	if err != nil {
		return errors.WrapParse("xlsx", sheet, err)
	}
	alternateStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: constants.DataFontSize},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{constants.AlternateRowColor},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return errors.WrapParse("xlsx", sheet, err)
	}

	lastColumn, err := excelize.ColumnNumberToName(ds.NumColumns())
	if err != nil {
		return errors.WrapParse("xlsx", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastColumn+"1", headerStyle); err != nil {
		return errors.WrapParse("xlsx", sheet, err)
	}
	for i := 0; i < ds.NumRows(); i++ {
		style := dataStyle
		if i%2 == 1 {
			style = alternateStyle
		}
		row, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.WrapParse("xlsx", sheet, err)
		}
		end, err := excelize.CoordinatesToCellName(ds.NumColumns(), i+2)
		if err != nil {
			return errors.WrapParse("xlsx", sheet, err)
		}
		if err := f.SetCellStyle(sheet, row, end, style); err != nil {
			return errors.WrapParse("xlsx", sheet, err)
		}
	}

	if err := autoFitColumns(f, sheet, ds); err != nil {
		return err
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// autoFitColumns sizes each column to its longest rendered value among the
// header and a bounded sample of data rows, clamped to the configured
// minimum and maximum widths.
func autoFitColumns(f *excelize.File, sheet string, ds *tabular.Dataset) error {
	sample := ds.NumRows()
	if sample > constants.AutoFitSampleRows {
		sample = constants.AutoFitSampleRows
	}
	for j, name := range ds.Columns() {
		width := len(name)
		for i := 0; i < sample; i++ {
			row := ds.Row(i)
			if n := len(row[j].String()); n > width {
				width = n
			}
		}
		width += 2
		if width < constants.MinColumnWidth {
			width = constants.MinColumnWidth
		}
		if width > constants.MaxColumnWidth {
			width = constants.MaxColumnWidth
		}
		column, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return errors.WrapParse("xlsx", sheet, err)
		}
		if err := f.SetColWidth(sheet, column, column, float64(width)); err != nil {
			return errors.WrapParse("xlsx", sheet, err)
		}
	}
	return nil
}
