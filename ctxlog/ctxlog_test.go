package ctxlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/ctxlog"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("info", "text", &buf)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	assert.Same(t, logger, ctxlog.FromContext(ctx))
	assert.Same(t, ctxlog.Discard(), ctxlog.FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ctxlog.ParseLevel(in), in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := ctxlog.New("warn", "json", &buf)
	logger.Info("dropped")
	logger.Warn("kept", "links", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(3), rec["links"])
}
