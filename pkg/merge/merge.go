// Package merge implements the column-based merge engine: a left outer join
// of a primary dataset against a reference dataset keyed on one column from
// each side. The engine is pure — inputs are never mutated, no partial
// result is ever returned on error, and calls over distinct inputs are safe
// to run concurrently.
package merge

import (
	"strconv"
	"strings"

	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// Result carries the merged dataset and the statistics gathered while
// producing it.
type Result struct {
	Data  *tabular.Dataset
	Stats Stats
}

// key is a normalized lookup key. Missing cells are literal keys that match
// only other missing cells, so missingness is part of the key identity and
// a missing key never collides with the empty string.
type key struct {
	missing bool
	text    string
}

// normalizeKey builds the lookup key for a cell under the given match mode.
func normalizeKey(v tabular.Value, mode MatchMode) key {
	if v.IsMissing() {
		return key{missing: true}
	}
	text := strings.TrimSpace(v.String())
	if mode == MatchCaseInsensitive {
		text = strings.ToLower(text)
	}
	return key{text: text}
}

// Merge joins reference columns onto every primary row whose key matches,
// per opts. Key columns must exist on both sides; otherwise an
// InvalidKeyError is returned before any row is processed.
func Merge(primary, reference *tabular.Dataset, primaryKey, referenceKey string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	pkIdx, ok := primary.ColumnIndex(primaryKey)
	if !ok {
		return nil, errors.NewInvalidKeyError("primary", primaryKey, primary.Columns())
	}
	rkIdx, ok := reference.ColumnIndex(referenceKey)
	if !ok {
		return nil, errors.NewInvalidKeyError("reference", referenceKey, reference.Columns())
	}

	// Index reference rows by normalized key, encounter order preserved.
	// Duplicate keys are legal here; the policy decides later.
	refIndex := make(map[key][]int, reference.NumRows())
	for r := 0; r < reference.NumRows(); r++ {
		k := normalizeKey(reference.Row(r)[rkIdx], opts.MatchMode)
		refIndex[k] = append(refIndex[k], r)
	}

	columns, refColumns := outputColumns(primary, reference, rkIdx, opts)
	out, err := tabular.New(columns...)
	if err != nil {
		return nil, err
	}

	stats := newStatsCollector(primary, pkIdx, reference, rkIdx, refIndex, opts.MatchMode)

	for r := 0; r < primary.NumRows(); r++ {
		row := primary.Row(r)
		k := normalizeKey(row[pkIdx], opts.MatchMode)
		matches := refIndex[k]

		if len(matches) > 1 && opts.OnMultipleMatches == MultipleError {
			return nil, errors.NewAmbiguousMatchError(row[pkIdx].String(), r, len(matches))
		}

		stats.observePrimary(row[pkIdx], len(matches) > 0)

		if len(matches) == 0 {
			if opts.MatchesOnly {
				continue
			}
			if err := out.AppendRow(buildRow(row, reference, -1, refColumns, opts)...); err != nil {
				return nil, err
			}
			continue
		}

		if opts.OnMultipleMatches == MultipleAll {
			// Expansion rows stay contiguous, in reference order.
			for _, m := range matches {
				if err := out.AppendRow(buildRow(row, reference, m, refColumns, opts)...); err != nil {
					return nil, err
				}
			}
			continue
		}

		if err := out.AppendRow(buildRow(row, reference, matches[0], refColumns, opts)...); err != nil {
			return nil, err
		}
	}

	result := &Result{Data: out, Stats: stats.finish(out.NumRows())}
	return result, nil
}

// outputColumns computes the result column set: primary columns in order,
// then reference columns in order with colliding names suffixed, then the
// optional match indicator. The reference key column is omitted — on every
// matched row it would duplicate the primary key.
func outputColumns(primary, reference *tabular.Dataset, rkIdx int, opts Options) ([]string, []refColumn) {
	columns := primary.Columns()
	taken := make(map[string]struct{}, len(columns))
	for _, name := range columns {
		taken[name] = struct{}{}
	}

	refCols := make([]refColumn, 0, reference.NumColumns())
	for i, name := range reference.Columns() {
		if i == rkIdx {
			continue
		}
		outName := name
		for {
			if _, clash := taken[outName]; !clash {
				break
			}
			outName += constants.ReferenceSuffix
		}
		taken[outName] = struct{}{}
		columns = append(columns, outName)
		refCols = append(refCols, refColumn{src: i, name: outName})
	}

	if opts.AddMatchColumn {
		name := opts.matchColumn()
		for {
			if _, clash := taken[name]; !clash {
				break
			}
			name += constants.ReferenceSuffix
		}
		columns = append(columns, name)
	}

	return columns, refCols
}

// refColumn maps a reference column position to its output column name.
type refColumn struct {
	src  int
	name string
}

// buildRow assembles one output row. refRow < 0 means no match: reference
// cells are filled with the missing marker.
func buildRow(primaryRow []tabular.Value, reference *tabular.Dataset, refRow int, refColumns []refColumn, opts Options) []tabular.Value {
	cells := make([]tabular.Value, 0, len(primaryRow)+len(refColumns)+1)
	cells = append(cells, primaryRow...)

	if refRow < 0 {
		for range refColumns {
			cells = append(cells, opts.MissingValue)
		}
	} else {
		row := reference.Row(refRow)
		for _, rc := range refColumns {
			cells = append(cells, row[rc.src])
		}
	}

	if opts.AddMatchColumn {
		if refRow < 0 {
			cells = append(cells, tabular.String("no"))
		} else {
			cells = append(cells, tabular.String("yes"))
		}
	}

	return cells
}

// FormatRate renders a match rate percentage for display.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + "%"
}
