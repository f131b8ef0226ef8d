package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheetfuse/sheetfuse/pkg/logging"
)

func TestWithLoggerAndFromContext(t *testing.T) {
	t.Run("nil context returns default", func(t *testing.T) {
		//nolint:staticcheck // intentionally passing nil context
		logger := logging.FromContext(nil)
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("context without logger returns default", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("round trip", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)

		logging.Ctx(ctx).Info().Msg("from context")
		assert.True(t, tl.Contains("from context"))
	})
}

func TestWithRunID(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRunID(ctx, "run-123")

	assert.Equal(t, "run-123", logging.RunID(ctx))

	logging.FromContext(ctx).Info().Msg("tagged")
	assert.True(t, tl.Contains(`"run_id":"run-123"`))
}

func TestWithFields(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	ctx = logging.WithFile(ctx, "data.xlsx")
	ctx = logging.WithSheet(ctx, "Sheet1")
	ctx = logging.WithOperation(ctx, "merge")

	logging.FromContext(ctx).Info().Msg("go")

	out := tl.Output()
	assert.Contains(t, out, `"file":"data.xlsx"`)
	assert.Contains(t, out, `"sheet":"Sheet1"`)
	assert.Contains(t, out, `"operation":"merge"`)
}
