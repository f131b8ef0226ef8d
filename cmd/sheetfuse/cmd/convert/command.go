// Package convert implements the convert command for CSV/xlsx conversion.
package convert

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/convert"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
)

// AppContext defines the interface that the convert command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	CSVOptions() tabio.CSVOptions
}

// NewCommand creates the convert command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		sheet     string
		styled    bool
		encoding  string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert between CSV files and xlsx workbooks",
		Long: `Convert reads the input file and writes it in the output file's format,
determined by extension. CSV files use the declared encoding and delimiter.`,
		Example: `  sheetfuse convert data.csv data.xlsx --styled
  sheetfuse convert report.xlsx report.csv --sheet Sales
  sheetfuse convert legacy.csv legacy.xlsx --encoding cp1252 --delimiter ";"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			inFormat, err := tabio.DetectFormat(in)
			if err != nil {
				return err
			}
			outFormat, err := tabio.DetectFormat(out)
			if err != nil {
				return err
			}
			if inFormat == outFormat {
				return errors.NewValidationError("output", out, "input and output formats are the same")
			}

			opts := convert.Options{CSV: app.CSVOptions(), Sheet: sheet, Styled: styled}
			if encoding != "" {
				opts.CSV.Encoding = encoding
			}
			if delimiter != "" {
				d, err := tabio.ParseDelimiter(delimiter)
				if err != nil {
					return err
				}
				opts.CSV.Delimiter = d
			}

			app.Logger().Info().
				Str("input", in).
				Str("output", out).
				Msg("Converting")

			if inFormat == tabio.FormatCSV {
				err = convert.CSVToXLSX(cmd.Context(), in, out, opts)
			} else {
				err = convert.XLSXToCSV(cmd.Context(), in, out, opts)
			}
			if err != nil {
				return err
			}

			cmd.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to read from or write to")
	cmd.Flags().BoolVar(&styled, "styled", false, "apply report styling to workbook output")
	cmd.Flags().StringVar(&encoding, "encoding", "", "declared CSV encoding: utf-8, utf-8-sig, latin-1, cp1252")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "CSV field delimiter")

	return cmd
}
