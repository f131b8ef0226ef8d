package tabular

import (
	"github.com/sheetfuse/sheetfuse/pkg/errors"
)

// Concat stacks datasets vertically. The output column set is the union of
// all input columns in first-seen order; cells absent from an input dataset
// are filled with the missing marker. Row order follows input order.
func Concat(datasets ...*Dataset) (*Dataset, error) {
	if len(datasets) == 0 {
		return nil, errors.NewValidationError("datasets", 0, "nothing to concatenate")
	}

	var columns []string
	seen := make(map[string]struct{})
	for _, d := range datasets {
		for _, name := range d.columns {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}

	out, err := New(columns...)
	if err != nil {
		return nil, err
	}

	for _, d := range datasets {
		for r := range d.rows {
			cells := make([]Value, len(columns))
			for c, name := range columns {
				if i, ok := d.index[name]; ok {
					cells[c] = d.rows[r][i]
				} else {
					cells[c] = Missing()
				}
			}
			if err := out.AppendRow(cells...); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
