// Package inspect implements the inspect command, reporting the shape and
// content of spreadsheet files.
package inspect

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sheetfuse/sheetfuse/internal/cmd/output"
	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/inspect"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// AppContext defines the interface that inspect commands need from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	CSVOptions() tabio.CSVOptions
	OutputFormat() string
}

// NewCommand creates the inspect command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect spreadsheet files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newFileCommand(app))
	cmd.AddCommand(newStatsCommand(app))
	cmd.AddCommand(newHeadCommand(app))

	return cmd
}

// newFileCommand reports sheets, row count, and columns of a file.
func newFileCommand(app AppContext) *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:     "file <path>",
		Short:   "Show sheets, row count, and columns of a file",
		Example: `  sheetfuse inspect file report.xlsx --sheet Sales`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := inspect.File(args[0], sheet, app.CSVOptions())
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			formatter := output.NewFormatter(format)
			if format != output.FormatTable {
				return formatter.Format(cmd.OutOrStdout(), info)
			}

			data := output.Data{
				Headers: []string{"Property", "Value"},
				Rows: [][]string{
					{"Path", info.Path},
					{"Format", info.Format},
					{"Rows", fmt.Sprint(info.Rows)},
					{"Columns", fmt.Sprint(len(info.Columns))},
				},
			}
			for _, s := range info.Sheets {
				data.Rows = append(data.Rows, []string{"Sheet", s})
			}
			for _, c := range info.Columns {
				data.Rows = append(data.Rows, []string{"Column", c})
			}
			return formatter.Format(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to inspect (default first)")
	return cmd
}

// newStatsCommand reports per-column value statistics.
func newStatsCommand(app AppContext) *cobra.Command {
	var (
		sheet   string
		columns []string
		top     int
	)

	cmd := &cobra.Command{
		Use:   "stats <path>",
		Short: "Show per-column value statistics",
		Long: `Stats reports, for each column, the total, non-empty, empty, and
distinct cell counts, and for numeric cells the min, max, mean, and sum.`,
		Example: `  sheetfuse inspect stats sales.xlsx --column amount --column region`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadFile(app, args[0], sheet)
			if err != nil {
				return err
			}

			var stats []*inspect.ColumnStats
			if len(columns) == 0 {
				stats, err = inspect.Dataset(ds)
				if err != nil {
					return err
				}
			} else {
				for _, name := range columns {
					s, err := inspect.Column(ds, name)
					if err != nil {
						return err
					}
					stats = append(stats, s)
				}
			}

			var frequent []columnValues
			if top > 0 {
				for _, s := range stats {
					vc, err := inspect.TopValues(ds, s.Name, top)
					if err != nil {
						return err
					}
					frequent = append(frequent, columnValues{Column: s.Name, Values: vc})
				}
			}

			format := output.DetectFormat(app.OutputFormat())
			formatter := output.NewFormatter(format)
			if format != output.FormatTable {
				if top > 0 {
					return formatter.Format(cmd.OutOrStdout(), statsReport{Stats: stats, TopValues: frequent})
				}
				return formatter.Format(cmd.OutOrStdout(), stats)
			}

			data := output.Data{
				Headers: []string{"Column", "Total", "Non-empty", "Empty", "Distinct", "Numeric", "Min", "Max", "Mean", "Sum"},
			}
			for _, s := range stats {
				row := []string{
					s.Name,
					fmt.Sprint(s.Total),
					fmt.Sprint(s.NonEmpty),
					fmt.Sprint(s.Empty),
					fmt.Sprint(s.Distinct),
					fmt.Sprint(s.Numeric),
					"", "", "", "",
				}
				if s.Numeric > 0 {
					row[6] = strconv.FormatFloat(s.Min, 'f', -1, 64)
					row[7] = strconv.FormatFloat(s.Max, 'f', -1, 64)
					row[8] = strconv.FormatFloat(s.Mean, 'f', 2, 64)
					row[9] = strconv.FormatFloat(s.Sum, 'f', -1, 64)
				}
				data.Rows = append(data.Rows, row)
			}
			if err := formatter.Format(cmd.OutOrStdout(), data); err != nil {
				return err
			}

			if top > 0 {
				freq := output.Data{Headers: []string{"Column", "Value", "Count"}}
				for _, cv := range frequent {
					for _, vc := range cv.Values {
						freq.Rows = append(freq.Rows, []string{cv.Column, vc.Value, fmt.Sprint(vc.Count)})
					}
				}
				return formatter.Format(cmd.OutOrStdout(), freq)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to inspect (default first)")
	cmd.Flags().StringArrayVar(&columns, "column", nil, "limit statistics to these columns")
	cmd.Flags().IntVar(&top, "top", 0, "also show the N most frequent values per column")
	return cmd
}

// statsReport is the structured form of stats output when --top is set.
type statsReport struct {
	Stats     []*inspect.ColumnStats `json:"stats"      yaml:"stats"`
	TopValues []columnValues         `json:"top_values" yaml:"top_values"`
}

type columnValues struct {
	Column string               `json:"column" yaml:"column"`
	Values []inspect.ValueCount `json:"values" yaml:"values"`
}

// newHeadCommand previews the leading rows of a file.
func newHeadCommand(app AppContext) *cobra.Command {
	var (
		sheet string
		rows  int
	)

	cmd := &cobra.Command{
		Use:     "head <path>",
		Short:   "Preview the leading rows of a file",
		Example: `  sheetfuse inspect head data.csv -n 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadFile(app, args[0], sheet)
			if err != nil {
				return err
			}
			format := output.DetectFormat(app.OutputFormat())
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Preview(ds, rows, 0))
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to preview (default first)")
	cmd.Flags().IntVarP(&rows, "rows", "n", 0, "number of rows to show")
	return cmd
}

func loadFile(app AppContext, path, sheet string) (*tabular.Dataset, error) {
	return tabio.Load(path, sheet, app.CSVOptions())
}
