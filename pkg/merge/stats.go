package merge

import (
	"github.com/sheetfuse/sheetfuse/pkg/constants"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

// Stats summarizes a merge: row counts, match outcomes, and key-shape
// analysis of both datasets. It mirrors what an operator needs to judge
// whether the chosen key columns were the right ones.
type Stats struct {
	PrimaryRows   int
	ReferenceRows int
	OutputRows    int

	// Matched and Unmatched count primary rows, not output rows.
	Matched   int
	Unmatched int

	// MatchRate is Matched over PrimaryRows, as a percentage.
	MatchRate float64

	PrimaryDistinctKeys    int
	PrimaryDuplicateKeys   int
	PrimaryEmptyKeys       int
	ReferenceDistinctKeys  int
	ReferenceDuplicateKeys int
	ReferenceEmptyKeys     int

	// Key overlap between the two sides, over distinct normalized keys.
	CommonKeys        int
	PrimaryOnlyKeys   int
	ReferenceOnlyKeys int

	// UnmatchedSample holds the first few unmatched primary key values.
	UnmatchedSample []string
}

// statsCollector accumulates stats during the merge pass.
type statsCollector struct {
	stats       Stats
	primaryKeys map[key]struct{}
}

// newStatsCollector precomputes the reference-side figures and key overlap;
// primary-side figures accumulate row by row during the merge pass.
func newStatsCollector(primary *tabular.Dataset, pkIdx int, reference *tabular.Dataset, rkIdx int, refIndex map[key][]int, mode MatchMode) *statsCollector {
	c := &statsCollector{
		primaryKeys: make(map[key]struct{}, primary.NumRows()),
	}
	c.stats.PrimaryRows = primary.NumRows()
	c.stats.ReferenceRows = reference.NumRows()

	c.stats.ReferenceDistinctKeys = len(refIndex)
	c.stats.ReferenceDuplicateKeys = reference.NumRows() - len(refIndex)
	for k := range refIndex {
		if k.missing || k.text == "" {
			c.stats.ReferenceEmptyKeys += len(refIndex[k])
		}
	}

	for r := 0; r < primary.NumRows(); r++ {
		k := normalizeKey(primary.Row(r)[pkIdx], mode)
		c.primaryKeys[k] = struct{}{}
		if k.missing || k.text == "" {
			c.stats.PrimaryEmptyKeys++
		}
	}
	c.stats.PrimaryDistinctKeys = len(c.primaryKeys)
	c.stats.PrimaryDuplicateKeys = primary.NumRows() - len(c.primaryKeys)

	for k := range c.primaryKeys {
		if _, ok := refIndex[k]; ok {
			c.stats.CommonKeys++
		} else {
			c.stats.PrimaryOnlyKeys++
		}
	}
	c.stats.ReferenceOnlyKeys = len(refIndex) - c.stats.CommonKeys

	return c
}

// observePrimary records the match outcome for one primary row.
func (c *statsCollector) observePrimary(keyValue tabular.Value, matched bool) {
	if matched {
		c.stats.Matched++
		return
	}
	c.stats.Unmatched++
	if len(c.stats.UnmatchedSample) < constants.UnmatchedSampleSize {
		c.stats.UnmatchedSample = append(c.stats.UnmatchedSample, keyValue.String())
	}
}

// finish seals the stats with the output row count.
func (c *statsCollector) finish(outputRows int) Stats {
	c.stats.OutputRows = outputRows
	if c.stats.PrimaryRows > 0 {
		c.stats.MatchRate = float64(c.stats.Matched) / float64(c.stats.PrimaryRows) * 100
	}
	return c.stats
}
