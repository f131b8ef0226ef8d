// Package merge implements the merge command: a column-keyed enrichment of
// a primary spreadsheet with the columns of a reference spreadsheet.
package merge

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sheetfuse/sheetfuse/internal/cmd/output"
	"github.com/sheetfuse/sheetfuse/internal/profile"
	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/merge"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// AppContext defines the interface that the merge command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	CSVOptions() tabio.CSVOptions
	OutputFormat() string
	Profiles() (*profile.Store, error)
}

// flags holds the parsed merge command flags.
type flags struct {
	primaryKey     string
	referenceKey   string
	primarySheet   string
	referenceSheet string

	matchMode    string
	onMultiple   string
	missingValue string
	matchColumn  bool
	matchesOnly  bool

	out      string
	outSheet string
	into     bool
	styled   bool

	encoding  string
	delimiter string

	profileName string
	saveProfile string
}

// NewCommand creates the merge command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "merge [primary] [reference]",
		Short: "Merge two spreadsheets on a key column",
		Long: `Merge enriches each row of the primary file with the columns of the
matching reference row, matching on one key column per side. Every primary
row appears in the result; unmatched rows get the missing-value marker in
the reference columns. Reference columns that collide with primary names
are suffixed, and the reference key column itself is not repeated.

Duplicate reference keys are resolved by the --on-multiple policy: keep the
first match, expand to one row per match, or fail.`,
		Example: `  sheetfuse merge sales.xlsx customers.csv --primary-key customer_id --reference-key id --out merged.xlsx
  sheetfuse merge a.csv b.csv -k id -r id --on-multiple all --out merged.csv
  sheetfuse merge --profile monthly`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, f, args)
		},
	}

	cmd.Flags().StringVarP(&f.primaryKey, "primary-key", "k", "", "key column in the primary file")
	cmd.Flags().StringVarP(&f.referenceKey, "reference-key", "r", "", "key column in the reference file")
	cmd.Flags().StringVar(&f.primarySheet, "primary-sheet", "", "sheet of the primary workbook (default first)")
	cmd.Flags().StringVar(&f.referenceSheet, "reference-sheet", "", "sheet of the reference workbook (default first)")
	cmd.Flags().StringVar(&f.matchMode, "match-mode", string(merge.MatchExact), "key matching: exact, case-insensitive")
	cmd.Flags().StringVar(&f.onMultiple, "on-multiple", string(merge.MultipleFirst), "duplicate reference keys: first, all, error")
	cmd.Flags().StringVar(&f.missingValue, "missing-value", "", "marker written in reference columns of unmatched rows")
	cmd.Flags().BoolVar(&f.matchColumn, "match-column", false, "append a yes/no MATCH indicator column")
	cmd.Flags().BoolVar(&f.matchesOnly, "matches-only", false, "drop unmatched primary rows from the result")
	cmd.Flags().StringVar(&f.out, "out", "", "output file (.csv or .xlsx); omit to preview only")
	cmd.Flags().StringVar(&f.outSheet, "out-sheet", "", "sheet name for workbook output")
	cmd.Flags().BoolVar(&f.into, "into", false, "write the result as a new sheet of the primary workbook")
	cmd.Flags().BoolVar(&f.styled, "styled", false, "apply report styling to workbook output")
	cmd.Flags().StringVar(&f.encoding, "encoding", "", "declared CSV encoding: utf-8, utf-8-sig, latin-1, cp1252")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV field delimiter")
	cmd.Flags().StringVar(&f.profileName, "profile", "", "run a saved merge profile instead of passing files")
	cmd.Flags().StringVar(&f.saveProfile, "save-profile", "", "save this configuration as a named profile")

	return cmd
}

// request is the fully resolved merge run, after flags and an optional
// profile have been reconciled.
type request struct {
	primary   profile.Input
	reference profile.Input
	output    profile.Output
	options   merge.Options
}

func run(cmd *cobra.Command, app AppContext, f *flags, args []string) error {
	logger := app.Logger()

	req, err := resolve(cmd, app, f, args)
	if err != nil {
		return err
	}

	csvOpts := app.CSVOptions()
	if f.encoding != "" {
		csvOpts.Encoding = f.encoding
	}
	if f.delimiter != "" {
		d, err := tabio.ParseDelimiter(f.delimiter)
		if err != nil {
			return err
		}
		csvOpts.Delimiter = d
	}

	primary, err := load(req.primary, csvOpts)
	if err != nil {
		return err
	}
	reference, err := load(req.reference, csvOpts)
	if err != nil {
		return err
	}

	logger.Info().
		Str("primary", req.primary.File).
		Str("reference", req.reference.File).
		Int("primary_rows", primary.NumRows()).
		Int("reference_rows", reference.NumRows()).
		Msg("Merging")

	result, err := merge.Merge(primary, reference, req.primary.KeyColumn, req.reference.KeyColumn, req.options)
	if err != nil {
		return err
	}

	logger.Info().
		Int("output_rows", result.Stats.OutputRows).
		Int("matched", result.Stats.Matched).
		Int("unmatched", result.Stats.Unmatched).
		Str("match_rate", merge.FormatRate(result.Stats.MatchRate)).
		Msg("Merge complete")

	if req.output.File != "" {
		if err := save(req, result.Data, csvOpts); err != nil {
			return err
		}
		cmd.Printf("Wrote %d rows to %s\n", result.Data.NumRows(), req.output.File)
	}

	if f.saveProfile != "" {
		if err := saveProfile(app, f.saveProfile, req); err != nil {
			return err
		}
		cmd.Printf("Saved profile %q\n", f.saveProfile)
	}

	return report(cmd, app, result)
}

// resolve merges profile values and flag values into one request. Flags win
// over profile values, but only when actually set on the command line.
func resolve(cmd *cobra.Command, app AppContext, f *flags, args []string) (*request, error) {
	req := &request{options: merge.DefaultOptions()}

	if f.profileName != "" {
		store, err := app.Profiles()
		if err != nil {
			return nil, err
		}
		p, err := store.Load(f.profileName)
		if err != nil {
			return nil, err
		}
		req.primary = p.Primary
		req.reference = p.Reference
		req.output = p.Output
		req.options = p.MergeOptions()
	}

	if len(args) > 0 {
		req.primary.File = args[0]
	}
	if len(args) > 1 {
		req.reference.File = args[1]
	}
	if f.primaryKey != "" {
		req.primary.KeyColumn = f.primaryKey
	}
	if f.referenceKey != "" {
		req.reference.KeyColumn = f.referenceKey
	}
	if f.primarySheet != "" {
		req.primary.Sheet = f.primarySheet
	}
	if f.referenceSheet != "" {
		req.reference.Sheet = f.referenceSheet
	}
	if f.out != "" {
		req.output.File = f.out
	}
	if f.outSheet != "" {
		req.output.Sheet = f.outSheet
	}
	if f.styled {
		req.output.Styled = true
	}

	if cmd.Flags().Changed("match-mode") {
		req.options.MatchMode = merge.MatchMode(f.matchMode)
	}
	if cmd.Flags().Changed("on-multiple") {
		req.options.OnMultipleMatches = merge.MultiplePolicy(f.onMultiple)
	}
	if cmd.Flags().Changed("missing-value") {
		req.options.MissingValue = tabular.String(f.missingValue)
	}
	if f.matchColumn {
		req.options.AddMatchColumn = true
	}
	if f.matchesOnly {
		req.options.MatchesOnly = true
	}

	if req.primary.File == "" || req.reference.File == "" {
		return nil, errors.NewValidationError("files", nil, "primary and reference files are required (or use --profile)")
	}
	if req.primary.KeyColumn == "" || req.reference.KeyColumn == "" {
		return nil, errors.NewValidationError("keys", nil, "--primary-key and --reference-key are required")
	}
	if f.into {
		format, err := tabio.DetectFormat(req.primary.File)
		if err != nil {
			return nil, err
		}
		if format != tabio.FormatXLSX {
			return nil, errors.NewValidationError("into", req.primary.File, "--into requires an xlsx primary file")
		}
		req.output.File = req.primary.File
	}

	return req, req.options.Validate()
}

func load(in profile.Input, csvOpts tabio.CSVOptions) (*tabular.Dataset, error) {
	format, err := tabio.DetectFormat(in.File)
	if err != nil {
		return nil, err
	}
	if format == tabio.FormatCSV {
		return tabio.ReadCSV(in.File, csvOpts)
	}
	return tabio.ReadXLSX(in.File, in.Sheet)
}

func save(req *request, ds *tabular.Dataset, csvOpts tabio.CSVOptions) error {
	// --into appends a sheet to the primary workbook itself
	if req.output.File == req.primary.File {
		return tabio.AddSheet(req.output.File, req.output.Sheet, ds, req.output.Styled)
	}
	format, err := tabio.DetectFormat(req.output.File)
	if err != nil {
		return err
	}
	if format == tabio.FormatCSV {
		return tabio.WriteCSV(req.output.File, ds, csvOpts)
	}
	return tabio.WriteXLSX(req.output.File, req.output.Sheet, ds, req.output.Styled)
}

func saveProfile(app AppContext, name string, req *request) error {
	store, err := app.Profiles()
	if err != nil {
		return err
	}
	return store.Save(&profile.Profile{
		Name:              name,
		Primary:           req.primary,
		Reference:         req.reference,
		Output:            req.output,
		MatchMode:         string(req.options.MatchMode),
		OnMultipleMatches: string(req.options.OnMultipleMatches),
		MissingValue:      req.options.MissingValue.String(),
		AddMatchColumn:    req.options.AddMatchColumn,
		MatchesOnly:       req.options.MatchesOnly,
	})
}

// report prints the merge statistics, and a result preview in table mode.
func report(cmd *cobra.Command, app AppContext, result *merge.Result) error {
	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)

	if format != output.FormatTable {
		return formatter.Format(cmd.OutOrStdout(), result.Stats)
	}

	stats := result.Stats
	summary := output.Data{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Primary rows", fmt.Sprint(stats.PrimaryRows)},
			{"Reference rows", fmt.Sprint(stats.ReferenceRows)},
			{"Output rows", fmt.Sprint(stats.OutputRows)},
			{"Matched", fmt.Sprint(stats.Matched)},
			{"Unmatched", fmt.Sprint(stats.Unmatched)},
			{"Match rate", merge.FormatRate(stats.MatchRate)},
			{"Common keys", fmt.Sprint(stats.CommonKeys)},
		},
	}
	if err := formatter.Format(cmd.OutOrStdout(), summary); err != nil {
		return err
	}
	if len(stats.UnmatchedSample) > 0 {
		cmd.Printf("Unmatched keys (sample): %v\n", stats.UnmatchedSample)
	}

	cmd.Println()
	return formatter.Format(cmd.OutOrStdout(), output.Preview(result.Data, 0, 0))
}
