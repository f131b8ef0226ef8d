package merge

import (
	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// MatchMode controls how key values are normalized before comparison.
// Both modes trim surrounding whitespace; case-insensitive additionally
// lowercases.
type MatchMode string

// Supported match modes.
const (
	MatchExact           MatchMode = "exact"
	MatchCaseInsensitive MatchMode = "case-insensitive"
)

// MultiplePolicy controls behavior when a primary key matches more than one
// reference row.
type MultiplePolicy string

// Supported multiple-match policies.
const (
	// MultipleFirst uses the first matching reference row, in reference order.
	MultipleFirst MultiplePolicy = "first"

	// MultipleAll emits one output row per match; output may grow beyond
	// the primary row count.
	MultipleAll MultiplePolicy = "all"

	// MultipleError fails the merge with an AmbiguousMatchError.
	MultipleError MultiplePolicy = "error"
)

// Options configures a merge. The zero Options is not valid; start from
// DefaultOptions.
type Options struct {
	// MatchMode selects key normalization.
	MatchMode MatchMode

	// OnMultipleMatches selects the duplicate-key policy.
	OnMultipleMatches MultiplePolicy

	// MissingValue fills reference-side cells of unmatched primary rows.
	MissingValue tabular.Value

	// AddMatchColumn appends a yes/no indicator column to the result.
	AddMatchColumn bool

	// MatchColumnName names the indicator column. Empty means "MATCH".
	MatchColumnName string

	// MatchesOnly drops unmatched primary rows from the result.
	MatchesOnly bool
}

// DefaultOptions returns the default merge configuration: exact matching,
// first-match policy, empty-string missing marker, no indicator column.
func DefaultOptions() Options {
	return Options{
		MatchMode:         MatchExact,
		OnMultipleMatches: MultipleFirst,
		MissingValue:      tabular.String(""),
		MatchColumnName:   constants.DefaultMatchColumnName,
	}
}

// Validate checks that the option values are recognized.
func (o Options) Validate() error {
	switch o.MatchMode {
	case MatchExact, MatchCaseInsensitive:
	default:
		return errors.NewValidationError("match-mode", string(o.MatchMode), "unknown match mode")
	}
	switch o.OnMultipleMatches {
	case MultipleFirst, MultipleAll, MultipleError:
	default:
		return errors.NewValidationError("on-multiple", string(o.OnMultipleMatches), "unknown multiple-match policy")
	}
	return nil
}

// matchColumn returns the effective indicator column name.
func (o Options) matchColumn() string {
	if o.MatchColumnName == "" {
		return constants.DefaultMatchColumnName
	}
	return o.MatchColumnName
}
