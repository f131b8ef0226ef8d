// Package constants provides shared constants used throughout the sheetfuse
// codebase. This includes file permissions, preview limits, and the default
// styling applied to exported workbooks, so the values stay consistent
// across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Preview limits bound how much of a dataset is rendered to the terminal
const (
	// PreviewMaxRows is the default number of rows shown by previews
	PreviewMaxRows = 50

	// PreviewMaxColumns is the default number of columns shown by previews
	PreviewMaxColumns = 20

	// UnmatchedSampleSize is the number of unmatched keys reported in merge statistics
	UnmatchedSampleSize = 5
)

// Export styling defaults for formatted workbook output
const (
	// HeaderFillColor is the header row background (dark blue)
	HeaderFillColor = "1F4E79"

	// HeaderFontColor is the header row font color (white)
	HeaderFontColor = "FFFFFF"

	// AlternateRowColor is the fill applied to even data rows
	AlternateRowColor = "F2F2F2"

	// HeaderFontSize is the header row font size in points
	HeaderFontSize = 11

	// DataFontSize is the data row font size in points
	DataFontSize = 10

	// MinColumnWidth is the narrowest auto-fitted column, in characters
	MinColumnWidth = 10

	// MaxColumnWidth is the widest auto-fitted column, in characters
	MaxColumnWidth = 50

	// AutoFitSampleRows is how many data rows auto-fit inspects per column
	AutoFitSampleRows = 100
)

// CSV defaults
const (
	// DefaultCSVDelimiter is used when no delimiter is declared
	DefaultCSVDelimiter = ','

	// DefaultCSVEncoding is used when no encoding is declared
	DefaultCSVEncoding = "utf-8"
)

// Merge defaults
const (
	// DefaultMatchColumnName is the name of the appended match indicator column
	DefaultMatchColumnName = "MATCH"

	// ReferenceSuffix disambiguates reference columns that collide with primary names
	ReferenceSuffix = "_REF"

	// DefaultOutputSheet is the sheet name used for merged results
	DefaultOutputSheet = "Merged"
)
