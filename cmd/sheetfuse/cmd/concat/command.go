// Package concat implements the concat command, stacking the rows of many
// spreadsheets into a single output.
package concat

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sheetfuse/sheetfuse/internal/cmd/output"
	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/convert"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
)

// AppContext defines the interface that the concat command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	CSVOptions() tabio.CSVOptions
	OutputFormat() string
}

// NewCommand creates the concat command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		out    string
		sheet  string
		styled bool
	)

	cmd := &cobra.Command{
		Use:   "concat <file>...",
		Short: "Stack the rows of several spreadsheets into one",
		Long: `Concat appends the rows of every input file, in argument order, into a
single output. Columns are unioned by name in first-seen order; a file
that lacks a column contributes empty cells for it. Inputs may mix CSV
and xlsx.`,
		Example: `  sheetfuse concat q1.xlsx q2.xlsx q3.xlsx --out year.xlsx
  sheetfuse concat north.csv south.csv --out all.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return errors.NewValidationError("out", out, "--out is required")
			}

			opts := convert.Options{CSV: app.CSVOptions(), Sheet: sheet, Styled: styled}
			app.Logger().Info().
				Int("inputs", len(args)).
				Str("output", out).
				Msg("Concatenating")

			ds, err := convert.ConcatToFile(cmd.Context(), args, out, opts)
			if err != nil {
				return err
			}

			cmd.Printf("Wrote %d rows, %d columns to %s\n", ds.NumRows(), ds.NumColumns(), out)

			format := output.DetectFormat(app.OutputFormat())
			if format == output.FormatTable {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Preview(ds, 0, 0))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (.csv or .xlsx)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to read from workbook inputs and write to workbook output")
	cmd.Flags().BoolVar(&styled, "styled", false, "apply report styling to workbook output")

	return cmd
}
