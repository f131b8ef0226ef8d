package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetfuse/sheetfuse/pkg/tabular"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "JSON", "yaml", ""} {
		_, err := ParseFormat(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatJSON).Format(&buf, map[string]int{"rows": 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows": 3}`, buf.String())
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	data := Data{Headers: []string{"id", "name"}, Rows: [][]string{{"1", "Alice"}}}
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
	out := buf.String()
	assert.Contains(t, out, "Alice")
	assert.Contains(t, strings.ToLower(out), "name")
}

func TestPreviewTruncation(t *testing.T) {
	ds := tabular.MustNew("a", "b", "c")
	for i := 0; i < 5; i++ {
		require.NoError(t, ds.AppendRow(tabular.Number(float64(i)), tabular.String("x"), tabular.String("y")))
	}

	data := Preview(ds, 2, 2)
	assert.Len(t, data.Rows, 2)
	require.Len(t, data.Headers, 3)
	assert.Equal(t, "… +1", data.Headers[2])
	assert.Equal(t, "…", data.Rows[0][2])
}
