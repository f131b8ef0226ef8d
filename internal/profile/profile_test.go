package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheetfuse/sheetfuse/pkg/errors"
	"github.com/sheetfuse/sheetfuse/pkg/merge"
)

func sampleProfile() *Profile {
	return &Profile{
		Name:        "monthly",
		Description: "monthly sales against customer master",
		Primary:     Input{File: "sales.xlsx", Sheet: "Sales", KeyColumn: "customer_id"},
		Reference:   Input{File: "customers.csv", KeyColumn: "id"},
		Output:      Output{File: "merged.xlsx", Styled: true},
		MatchMode:   "case-insensitive",
	}
}

func TestStoreRoundtrip(t *testing.T) {
	store := NewStore(t.TempDir())

	require.NoError(t, store.Save(sampleProfile()))

	got, err := store.Load("monthly")
	require.NoError(t, err)
	assert.Equal(t, "sales.xlsx", got.Primary.File)
	assert.Equal(t, "id", got.Reference.KeyColumn)
	assert.True(t, got.Output.Styled)
	assert.False(t, got.CreatedAt.IsZero())

	opts := got.MergeOptions()
	assert.Equal(t, merge.MatchCaseInsensitive, opts.MatchMode)
	assert.Equal(t, merge.MultipleFirst, opts.OnMultipleMatches)
}

func TestStoreListAndDelete(t *testing.T) {
	store := NewStore(t.TempDir())

	first := sampleProfile()
	second := sampleProfile()
	second.Name = "ad-hoc"
	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"ad-hoc", "monthly"}, names)

	require.NoError(t, store.Delete("ad-hoc"))
	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"monthly"}, names)

	err = store.Delete("ad-hoc")
	assert.Error(t, err)
}

func TestStoreEmptyDirectory(t *testing.T) {
	store := NewStore(t.TempDir() + "/never-created")
	names, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = store.Load("nope")
	assert.Error(t, err)
}

func TestProfileValidate(t *testing.T) {
	t.Run("missing key column", func(t *testing.T) {
		p := sampleProfile()
		p.Reference.KeyColumn = ""
		assert.True(t, errors.IsValidationError(p.Validate()))
	})

	t.Run("bad match mode", func(t *testing.T) {
		p := sampleProfile()
		p.MatchMode = "fuzzy"
		assert.True(t, errors.IsValidationError(p.Validate()))
	})

	t.Run("empty name", func(t *testing.T) {
		p := sampleProfile()
		p.Name = "  "
		assert.True(t, errors.IsValidationError(p.Validate()))
	})
}
