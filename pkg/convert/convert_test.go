package convert_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetfuse/sheetfuse/internal/tabio"
	"github.com/sheetfuse/sheetfuse/pkg/convert"
	"github.com/sheetfuse/sheetfuse/pkg/errors"
)

func writeCSV(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestCSVToXLSXRoundtrip(t *testing.T) {
	csvPath := writeCSV(t, "in.csv", "id,name\n1,Alice\n2,Bob\n")
	xlsxPath := filepath.Join(t.TempDir(), "out.xlsx")

	opts := convert.DefaultOptions()
	opts.Sheet = "Data"
	require.NoError(t, convert.CSVToXLSX(context.Background(), csvPath, xlsxPath, opts))

	backPath := filepath.Join(t.TempDir(), "back.csv")
	require.NoError(t, convert.XLSXToCSV(context.Background(), xlsxPath, backPath, opts))

	raw, err := os.ReadFile(backPath)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,Alice\n2,Bob\n", string(raw))
}

func TestConcat(t *testing.T) {
	a := writeCSV(t, "a.csv", "id,name\n1,Alice\n")
	b := writeCSV(t, "b.csv", "id,city\n2,Paris\n")

	ds, err := convert.Concat(context.Background(), []string{a, b}, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "city"}, ds.Columns())
	require.Equal(t, 2, ds.NumRows())

	v, err := ds.Cell(0, "city")
	require.NoError(t, err)
	assert.True(t, v.IsMissing())
}

func TestConcatSemicolonDelimiter(t *testing.T) {
	a := writeCSV(t, "a.csv", "a;b\nx;y\n")
	b := writeCSV(t, "b.csv", "a;b\nz;w\n")

	opts := convert.DefaultOptions()
	opts.CSV.Delimiter = ';'
	ds, err := convert.Concat(context.Background(), []string{a, b}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
	require.Equal(t, 2, ds.NumRows())

	v, err := ds.Cell(1, "b")
	require.NoError(t, err)
	assert.Equal(t, "w", v.String())
}

func TestConcatToFile(t *testing.T) {
	a := writeCSV(t, "a.csv", "id\n1\n")
	b := writeCSV(t, "b.csv", "id\n2\n")
	out := filepath.Join(t.TempDir(), "out.xlsx")

	ds, err := convert.ConcatToFile(context.Background(), []string{a, b}, out, convert.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, ds.NumRows())

	got, err := tabio.ReadXLSX(out, "")
	require.NoError(t, err)
	assert.Equal(t, 2, got.NumRows())
}

func TestConcatValidation(t *testing.T) {
	_, err := convert.Concat(context.Background(), nil, convert.DefaultOptions())
	assert.True(t, errors.IsValidationError(err))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := convert.CSVToXLSX(ctx, "unused.csv", "unused.xlsx", convert.DefaultOptions())
	assert.True(t, errors.IsCanceled(err))
}
