package inspect_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/inspect"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

func statsDataset(t *testing.T) *tabular.Dataset {
	t.Helper()
	ds := tabular.MustNew("city", "amount")
	require.NoError(t, ds.AppendRow(tabular.String("Paris"), tabular.Number(10)))
	require.NoError(t, ds.AppendRow(tabular.String("Paris"), tabular.Number(30)))
	require.NoError(t, ds.AppendRow(tabular.String("Lyon"), tabular.Missing()))
	require.NoError(t, ds.AppendRow(tabular.Missing(), tabular.Number(20)))
	return ds
}

func TestColumnStats(t *testing.T) {
	ds := statsDataset(t)

	city, err := inspect.Column(ds, "city")
	require.NoError(t, err)
	assert.Equal(t, 4, city.Total)
	assert.Equal(t, 3, city.NonEmpty)
	assert.Equal(t, 1, city.Empty)
	assert.Equal(t, 2, city.Distinct)
	assert.Equal(t, 0, city.Numeric)

	amount, err := inspect.Column(ds, "amount")
	require.NoError(t, err)
	assert.Equal(t, 3, amount.Numeric)
	assert.Equal(t, 10.0, amount.Min)
	assert.Equal(t, 30.0, amount.Max)
	assert.Equal(t, 60.0, amount.Sum)
	assert.Equal(t, 20.0, amount.Mean)

	_, err = inspect.Column(ds, "missing")
	assert.Error(t, err)
}

func TestDatasetStats(t *testing.T) {
	ds := statsDataset(t)
	all, err := inspect.Dataset(ds)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "city", all[0].Name)
	assert.Equal(t, "amount", all[1].Name)
}

func TestTopValues(t *testing.T) {
	ds := statsDataset(t)
	top, err := inspect.TopValues(ds, "city", 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Paris", top[0].Value)
	assert.Equal(t, 2, top[0].Count)
}

func TestFileInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	info, err := inspect.File(path, "", tabio.DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, "csv", info.Format)
	assert.Equal(t, 1, info.Rows)
	assert.Equal(t, []string{"a", "b"}, info.Columns)
	assert.Empty(t, info.Sheets)
}
