// Package inspect reports on the shape and content of spreadsheet files:
// sheet listings, column summaries, and per-column value statistics.
package inspect

import (
	"sort"

	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// FileInfo summarizes a spreadsheet file.
type FileInfo struct {
	Path    string   `json:"path"`
	Format  string   `json:"format"`
	Sheets  []string `json:"sheets,omitempty"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

// ColumnStats are the per-column value statistics. The numeric aggregates
// cover only cells holding numbers; Numeric counts them.
type ColumnStats struct {
	Name     string  `json:"name"`
	Total    int     `json:"total"`
	NonEmpty int     `json:"nonEmpty"`
	Empty    int     `json:"empty"`
	Distinct int     `json:"distinct"`
	Numeric  int     `json:"numeric"`
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Mean     float64 `json:"mean,omitempty"`
	Sum      float64 `json:"sum,omitempty"`
}

// File inspects a spreadsheet file. For workbooks the sheet argument selects
// which sheet's rows and columns are reported; empty means the first sheet.
// csvOpts carries the declared delimiter and encoding for CSV files.
func File(path, sheet string, csvOpts tabio.CSVOptions) (*FileInfo, error) {
	format, err := tabio.DetectFormat(path)
	if err != nil {
		return nil, err
	}
	info := &FileInfo{Path: path, Format: string(format)}
	if format == tabio.FormatXLSX {
		sheets, err := tabio.SheetNames(path)
		if err != nil {
			return nil, err
		}
		info.Sheets = sheets
	}
	ds, err := tabio.Load(path, sheet, csvOpts)
	if err != nil {
		return nil, err
	}
	info.Rows = ds.NumRows()
	info.Columns = ds.Columns()
	return info, nil
}

// Column computes statistics over one column of a dataset.
func Column(ds *tabular.Dataset, name string) (*ColumnStats, error) {
	values, err := ds.ColumnValues(name)
	if err != nil {
		return nil, err
	}
	stats := &ColumnStats{Name: name, Total: len(values)}
	seen := make(map[string]struct{})
	for _, v := range values {
		if v.IsMissing() {
			stats.Empty++
			continue
		}
		stats.NonEmpty++
		seen[v.String()] = struct{}{}
		if n, ok := v.AsNumber(); ok {
			if stats.Numeric == 0 || n < stats.Min {
				stats.Min = n
			}
			if stats.Numeric == 0 || n > stats.Max {
				stats.Max = n
			}
			stats.Sum += n
			stats.Numeric++
		}
	}
	stats.Distinct = len(seen)
	if stats.Numeric > 0 {
		stats.Mean = stats.Sum / float64(stats.Numeric)
	}
	return stats, nil
}

// Dataset computes statistics for every column of a dataset, in column order.
func Dataset(ds *tabular.Dataset) ([]*ColumnStats, error) {
	out := make([]*ColumnStats, 0, ds.NumColumns())
	for _, name := range ds.Columns() {
		stats, err := Column(ds, name)
		if err != nil {
			return nil, err
		}
		out = append(out, stats)
	}
	return out, nil
}

// TopValues returns the most frequent rendered values of a column, ties
// broken alphabetically, limited to n entries.
func TopValues(ds *tabular.Dataset, name string, n int) ([]ValueCount, error) {
	values, err := ds.ColumnValues(name)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		counts[v.String()]++
	}
	out := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		out = append(out, ValueCount{Value: value, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// ValueCount pairs a rendered cell value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}
