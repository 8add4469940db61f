package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	lgr, zl := New(zapcore.AddSync(&buf), 0)

	lgr.Info("rendered grid", RowsKey, 2, ColumnsKey, 3)
	require.NoError(t, zl.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "rendered grid", entry[MessageKey])
	assert.EqualValues(t, 2, entry[RowsKey])
	assert.EqualValues(t, 3, entry[ColumnsKey])
	assert.Contains(t, entry, TimeStampKey)
	assert.Contains(t, entry, VersionKey)
}

func TestNewHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr, zl := New(zapcore.AddSync(&buf), 0)

	lgr.V(1).Info("debug detail")
	require.NoError(t, zl.Sync())
	assert.Empty(t, buf.String())

	buf.Reset()
	lgr, zl = New(zapcore.AddSync(&buf), -1)
	lgr.V(1).Info("debug detail")
	require.NoError(t, zl.Sync())
	assert.True(t, strings.Contains(buf.String(), "debug detail"))
}

func TestGetReturnsSameInstance(t *testing.T) {
	first := Get(0)
	second := Get(-1)
	require.NotNil(t, first)
	assert.Same(t, first, second)
}

func TestGetReturnsNoopWhenUnset(t *testing.T) {
	_ = Get(0)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, Get(0))
	assert.Same(t, &defaultNoopLogger, GetGlobalLogger())
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
}

func TestWithLogger(t *testing.T) {
	lgr := Get(0)
	ctx := WithLogger(context.Background(), lgr)
	assert.Same(t, lgr, FromContext(ctx))

	t.Run("same logger keeps context", func(t *testing.T) {
		assert.Equal(t, ctx, WithLogger(ctx, lgr))
	})

	t.Run("different logger replaces", func(t *testing.T) {
		other := logr.Discard()
		assert.Same(t, &other, FromContext(WithLogger(ctx, &other)))
	})
}

func TestWithValuesReturnsNewLogger(t *testing.T) {
	lgr := Get(0)
	nl := WithValues(lgr, CommandKey, "papergrid")
	require.NotNil(t, nl)
	assert.NotSame(t, lgr, nl)
}

func TestSyncWithoutLogger(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(syscall.EINVAL))
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}
