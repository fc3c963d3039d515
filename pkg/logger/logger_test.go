package logger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContextTagsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core))
	ctx = WithRequestID(ctx, "req-1")

	FromContext(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	Log = zaptest.NewLogger(t)

	assert.Same(t, Log, FromContext(context.Background()))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestInitializeWithFileSink(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev; zap.ReplaceGlobals(prev) })

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Initialize("debug", path))
	assert.True(t, Log.Core().Enabled(zap.DebugLevel))

	require.NoError(t, Initialize("not-a-level", ""))
	assert.False(t, Log.Core().Enabled(zap.DebugLevel))
	assert.True(t, Log.Core().Enabled(zap.InfoLevel))
}
