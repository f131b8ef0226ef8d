package tabio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	t.Run("typed cells and trimmed header", func(t *testing.T) {
		path := writeFile(t, "in.csv", []byte(" id ,score,active\n1,9.5,true\n2,,false\n"))

		ds, err := ReadCSV(path, DefaultCSVOptions())
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "score", "active"}, ds.Columns())
		require.Equal(t, 2, ds.NumRows())

		v, err := ds.Cell(0, "score")
		require.NoError(t, err)
		n, ok := v.AsNumber()
		assert.True(t, ok)
		assert.Equal(t, 9.5, n)

		v, err = ds.Cell(1, "score")
		require.NoError(t, err)
		assert.True(t, v.IsMissing())

		v, err = ds.Cell(1, "active")
		require.NoError(t, err)
		b, ok := v.AsBool()
		assert.True(t, ok)
		assert.False(t, b)
	})

	t.Run("ragged rows padded and truncated", func(t *testing.T) {
		path := writeFile(t, "ragged.csv", []byte("a,b\n1\n2,3,4\n"))

		ds, err := ReadCSV(path, DefaultCSVOptions())
		require.NoError(t, err)
		require.Equal(t, 2, ds.NumRows())

		v, err := ds.Cell(0, "b")
		require.NoError(t, err)
		assert.True(t, v.IsMissing())
		assert.Len(t, ds.Row(1), 2)
	})

	t.Run("semicolon delimiter", func(t *testing.T) {
		path := writeFile(t, "semi.csv", []byte("a;b\nx;y\n"))

		opts := DefaultCSVOptions()
		opts.Delimiter = ';'
		ds, err := ReadCSV(path, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, ds.Columns())
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.csv", nil)

		_, err := ReadCSV(path, DefaultCSVOptions())
		assert.ErrorIs(t, err, errors.ErrEmptyFile)
	})

	t.Run("unknown encoding", func(t *testing.T) {
		path := writeFile(t, "enc.csv", []byte("a\n1\n"))

		opts := DefaultCSVOptions()
		opts.Encoding = "koi8-r"
		_, err := ReadCSV(path, opts)
		assert.ErrorIs(t, err, errors.ErrUnsupportedEncoding)
	})
}

func TestCSVEncodings(t *testing.T) {
	ds := tabular.MustNew("name")
	require.NoError(t, ds.AppendRow(tabular.String("café")))

	for _, enc := range []string{"utf-8", "utf-8-sig", "latin-1", "cp1252"} {
		t.Run(enc, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out.csv")
			opts := DefaultCSVOptions()
			opts.Encoding = enc

			require.NoError(t, WriteCSV(path, ds, opts))
			got, err := ReadCSV(path, opts)
			require.NoError(t, err)

			v, err := got.Cell(0, "name")
			require.NoError(t, err)
			assert.Equal(t, "café", v.String())
		})
	}

	t.Run("latin-1 bytes are single byte", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "latin.csv")
		opts := DefaultCSVOptions()
		opts.Encoding = "latin-1"
		require.NoError(t, WriteCSV(path, ds, opts))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "caf\xe9")
	})
}

func TestParseDelimiter(t *testing.T) {
	t.Run("single characters", func(t *testing.T) {
		for in, want := range map[string]rune{
			",":  ',',
			";":  ';',
			"\t": '\t',
			"¦":  '¦',
		} {
			got, err := ParseDelimiter(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		for _, in := range []string{"", ",,", "ab", "¦¦"} {
			_, err := ParseDelimiter(in)
			assert.True(t, errors.IsValidationError(err), "%q", in)
		}
	})
}

func TestWriteCSVMissing(t *testing.T) {
	ds := tabular.MustNew("id", "note")
	require.NoError(t, ds.AppendRow(tabular.String("1"), tabular.Missing()))

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, ds, DefaultCSVOptions()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "id,note\n1,\n", string(raw))
}
