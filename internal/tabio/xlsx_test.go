package tabio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

func sampleDataset(t *testing.T) *tabular.Dataset {
	t.Helper()
	ds := tabular.MustNew("id", "name", "score")
	require.NoError(t, ds.AppendRow(tabular.String("1"), tabular.String("Alice"), tabular.Number(9.5)))
	require.NoError(t, ds.AppendRow(tabular.String("2"), tabular.String("Bob"), tabular.Missing()))
	return ds
}

func TestXLSXRoundtrip(t *testing.T) {
	ds := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, "People", ds, false))

	sheets, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"People"}, sheets)

	got, err := ReadXLSX(path, "People")
	require.NoError(t, err)
	assert.Equal(t, ds.Columns(), got.Columns())
	require.Equal(t, 2, got.NumRows())

	v, err := got.Cell(0, "score")
	require.NoError(t, err)
	n, ok := v.AsNumber()
	assert.True(t, ok)
	assert.Equal(t, 9.5, n)

	v, err = got.Cell(1, "score")
	require.NoError(t, err)
	assert.True(t, v.IsMissing())
}

func TestReadXLSXSheetSelection(t *testing.T) {
	ds := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, "People", ds, false))

	t.Run("empty name selects first sheet", func(t *testing.T) {
		got, err := ReadXLSX(path, "")
		require.NoError(t, err)
		assert.Equal(t, 2, got.NumRows())
	})

	t.Run("unknown sheet", func(t *testing.T) {
		_, err := ReadXLSX(path, "Nope")
		assert.True(t, errors.IsSheetNotFound(err))
		var sheetErr *errors.SheetError
		require.ErrorAs(t, err, &sheetErr)
		assert.Equal(t, []string{"People"}, sheetErr.Sheets)
	})
}

func TestAddSheet(t *testing.T) {
	ds := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, WriteXLSX(path, "Data", ds, false))

	extra := tabular.MustNew("city")
	require.NoError(t, extra.AppendRow(tabular.String("Paris")))

	require.NoError(t, AddSheet(path, "Cities", extra, false))
	sheets, err := SheetNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Data", "Cities"}, sheets)

	t.Run("replaces existing sheet", func(t *testing.T) {
		replacement := tabular.MustNew("city")
		require.NoError(t, replacement.AppendRow(tabular.String("Lyon")))
		require.NoError(t, AddSheet(path, "Cities", replacement, false))

		got, err := ReadXLSX(path, "Cities")
		require.NoError(t, err)
		require.Equal(t, 1, got.NumRows())
		v, err := got.Cell(0, "city")
		require.NoError(t, err)
		assert.Equal(t, "Lyon", v.String())
	})
}

func TestStyledExport(t *testing.T) {
	ds := sampleDataset(t)
	path := filepath.Join(t.TempDir(), "styled.xlsx")
	require.NoError(t, WriteXLSX(path, "Report", ds, true))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Header keeps its value under styling and the header row is frozen.
	name, err := f.GetCellValue("Report", "B1")
	require.NoError(t, err)
	assert.Equal(t, "name", name)

	panes, err := f.GetPanes("Report")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, "A2", panes.TopLeftCell)

	styleID, err := f.GetCellStyle("Report", "A1")
	require.NoError(t, err)
	assert.NotZero(t, styleID)
}
