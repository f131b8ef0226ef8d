// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
)

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter creates the appropriate formatter for a format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format outputs data in table format. Non-tabular data falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	v, ok := data.(Data)
	if !ok {
		jsonFormatter := &JSONFormatter{Indent: "  "}
		return jsonFormatter.Format(w, data)
	}

	table := tablewriter.NewTable(w)
	if len(v.Headers) > 0 {
		headers := make([]any, len(v.Headers))
		for i, h := range v.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}
	for _, row := range v.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}
	return table.Render()
}

// Data represents data formatted for table output.
type Data struct {
	Headers []string
	Rows    [][]string
}

// Preview converts the leading rows and columns of a dataset into table
// data, bounded by the preview limits so wide or tall results stay readable.
func Preview(ds *tabular.Dataset, maxRows, maxColumns int) Data {
	if maxRows <= 0 {
		maxRows = constants.PreviewMaxRows
	}
	if maxColumns <= 0 {
		maxColumns = constants.PreviewMaxColumns
	}

	columns := ds.Columns()
	truncatedColumns := len(columns) > maxColumns
	if truncatedColumns {
		columns = columns[:maxColumns]
	}
	headers := make([]string, len(columns))
	copy(headers, columns)
	if truncatedColumns {
		headers = append(headers, fmt.Sprintf("… +%d", ds.NumColumns()-maxColumns))
	}

	rows := ds.NumRows()
	if rows > maxRows {
		rows = maxRows
	}
	data := Data{Headers: headers}
	for i := 0; i < rows; i++ {
		row := ds.Row(i)
		cells := make([]string, 0, len(headers))
		for j := range columns {
			cells = append(cells, row[j].String())
		}
		if truncatedColumns {
			cells = append(cells, "…")
		}
		data.Rows = append(data.Rows, cells)
	}
	return data
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	// Pipes and redirects get machine-readable output.
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}
