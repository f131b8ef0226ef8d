package tabular_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

func TestNewDataset(t *testing.T) {
	t.Run("valid columns", func(t *testing.T) {
		d, err := tabular.New("id", "name")
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, d.Columns())
		assert.Equal(t, 2, d.NumColumns())
		assert.Equal(t, 0, d.NumRows())
	})

	t.Run("duplicate column", func(t *testing.T) {
		_, err := tabular.New("id", "id")
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("empty column name", func(t *testing.T) {
		_, err := tabular.New("id", "")
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestDatasetRows(t *testing.T) {
	d := tabular.MustNew("id", "score")
	require.NoError(t, d.AppendRow(tabular.String("1"), tabular.Number(9.5)))
	require.NoError(t, d.AppendRow(tabular.String("2"), tabular.Missing()))

	t.Run("arity mismatch", func(t *testing.T) {
		err := d.AppendRow(tabular.String("3"))
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("cell access", func(t *testing.T) {
		v, err := d.Cell(0, "score")
		require.NoError(t, err)
		f, ok := v.AsNumber()
		assert.True(t, ok)
		assert.Equal(t, 9.5, f)

		_, err = d.Cell(0, "missing")
		assert.ErrorIs(t, err, pkgerrors.ErrColumnNotFound)
	})

	t.Run("column values preserve row order", func(t *testing.T) {
		values, err := d.ColumnValues("id")
		require.NoError(t, err)
		require.Len(t, values, 2)
		assert.Equal(t, "1", values[0].String())
		assert.Equal(t, "2", values[1].String())
	})

	t.Run("row returns a copy", func(t *testing.T) {
		row := d.Row(0)
		row[0] = tabular.String("mutated")
		v, err := d.Cell(0, "id")
		require.NoError(t, err)
		assert.Equal(t, "1", v.String())
	})
}

func TestDatasetCloneAndEqual(t *testing.T) {
	d := tabular.MustNew("id", "name")
	require.NoError(t, d.AppendRow(tabular.String("1"), tabular.String("A")))

	c := d.Clone()
	assert.True(t, d.Equal(c))

	require.NoError(t, c.AppendRow(tabular.String("2"), tabular.String("B")))
	assert.False(t, d.Equal(c))
	assert.Equal(t, 1, d.NumRows())
}

func TestConcat(t *testing.T) {
	t.Run("union of columns, missing fill", func(t *testing.T) {
		a := tabular.MustNew("id", "name")
		require.NoError(t, a.AppendRow(tabular.String("1"), tabular.String("A")))

		b := tabular.MustNew("id", "city")
		require.NoError(t, b.AppendRow(tabular.String("2"), tabular.String("Paris")))

		out, err := tabular.Concat(a, b)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name", "city"}, out.Columns())
		require.Equal(t, 2, out.NumRows())

		v, err := out.Cell(0, "city")
		require.NoError(t, err)
		assert.True(t, v.IsMissing())

		v, err = out.Cell(1, "name")
		require.NoError(t, err)
		assert.True(t, v.IsMissing())
	})

	t.Run("no datasets", func(t *testing.T) {
		_, err := tabular.Concat()
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}
