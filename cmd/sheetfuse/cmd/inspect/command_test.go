package inspect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetfuse/sheetfuse/internal/tabio"
)

// stubApp implements AppContext for command tests.
type stubApp struct{}

func (s *stubApp) Logger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func (s *stubApp) CSVOptions() tabio.CSVOptions { return tabio.DefaultCSVOptions() }
func (s *stubApp) OutputFormat() string         { return "json" }

func writeCSV(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand(&stubApp{})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestFileCommand(t *testing.T) {
	path := writeCSV(t, "id,city\n1,Paris\n2,Lyon\n")

	stdout, err := execute(t, "file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"rows": 2`)
	assert.Contains(t, stdout, "city")
}

func TestStatsCommand(t *testing.T) {
	path := writeCSV(t, "city,amount\nParis,10\nParis,30\nLyon,\n")

	stdout, err := execute(t, "stats", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name": "city"`)
	assert.Contains(t, stdout, `"distinct": 2`)
}

func TestStatsCommandTopValues(t *testing.T) {
	path := writeCSV(t, "city\nParis\nParis\nLyon\nNice\n")

	stdout, err := execute(t, "stats", path, "--column", "city", "--top", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"top_values"`)
	assert.Contains(t, stdout, `"value": "Paris"`)
	assert.Contains(t, stdout, `"count": 2`)
	assert.NotContains(t, stdout, `"value": "Nice"`)
}

func TestHeadCommand(t *testing.T) {
	path := writeCSV(t, "id\n1\n2\n3\n")

	stdout, err := execute(t, "head", path, "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"1"`)
	assert.NotContains(t, stdout, `"3"`)
}
