package tabio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetfuse/sheetfuse/pkg/errors"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"data.csv", FormatCSV},
		{"DATA.CSV", FormatCSV},
		{"export.txt", FormatCSV},
		{"book.xlsx", FormatXLSX},
		{"macro.xlsm", FormatXLSX},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := DetectFormat("report.pdf")
	assert.True(t, errors.IsUnsupportedFormat(err))
}

func TestLoadDispatch(t *testing.T) {
	csvPath := writeFile(t, "in.csv", []byte("a,b\n1,2\n"))
	ds, err := Load(csvPath, "", DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}

func TestLoadHonorsCSVOptions(t *testing.T) {
	path := writeFile(t, "semi.csv", []byte("a;b\nx;y\n"))

	opts := DefaultCSVOptions()
	opts.Delimiter = ';'
	ds, err := Load(path, "", opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}
