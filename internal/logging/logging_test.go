package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/clienthub/backend/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("debug level enables debug", func(t *testing.T) {
		logger := logging.New(&bytes.Buffer{}, "debug", "text")
		assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("warn level silences info", func(t *testing.T) {
		logger := logging.New(&bytes.Buffer{}, "WARN", "text")
		assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
		assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
	})

	t.Run("unparseable level falls back to info", func(t *testing.T) {
		logger := logging.New(&bytes.Buffer{}, "verbose", "text")
		assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
		assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
	})

	t.Run("json format emits json lines", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, "info", "json")
		logger.Info("server starting", "port", "8080")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "server starting", line["msg"])
		assert.Equal(t, "8080", line["port"])
	})
}
