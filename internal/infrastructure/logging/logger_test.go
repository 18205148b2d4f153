package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, level LogLevel) (*StructuredLogger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	config := NewConfig("busyedge-test", "test", "test").WithOutput(buf).WithLevel(level)
	logger, err := NewStructuredLogger(config)
	require.NoError(t, err)
	return logger, buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestStructuredLogger_WritesJSONWithServiceFields(t *testing.T) {
	logger, buf := newBufferLogger(t, LevelInfo)

	ctx := WithRequestID(context.Background(), "req_123")
	logger.Info(ctx, "hello", Fields{"coin": "bitcoin"})

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0]["msg"])
	assert.Equal(t, "busyedge-test", entries[0]["service"])
	assert.Equal(t, "req_123", entries[0][FieldRequestID])
	assert.Equal(t, "bitcoin", entries[0]["coin"])
	assert.Equal(t, "info", entries[0]["level"])
}

func TestStructuredLogger_RespectsLevel(t *testing.T) {
	logger, buf := newBufferLogger(t, LevelWarn)

	logger.Debug(context.Background(), "debug", nil)
	logger.Info(context.Background(), "info", nil)
	logger.Warn(context.Background(), "warn", nil)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["msg"])

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug(context.Background(), "debug", nil)
	assert.Len(t, decodeLines(t, buf), 2)
}

func TestStructuredLogger_WithErrorDoesNotMutateFields(t *testing.T) {
	logger, buf := newBufferLogger(t, LevelInfo)

	fields := Fields{"k": "v"}
	logger.ErrorWithError(context.Background(), "boom", errors.New("bad thing"), fields)

	assert.Len(t, fields, 1)
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "bad thing", entries[0][FieldError])
	assert.Equal(t, "*errors.errorString", entries[0][FieldErrorType])
}

func TestDomainLoggers_TagDomain(t *testing.T) {
	logger, buf := newBufferLogger(t, LevelDebug)

	NewCacheLogger(logger).Hit(context.Background(), "prices:bitcoin", CacheOpGetFresh)
	NewBusinessLogger(logger).StaleFallback(context.Background(), "prices", errors.New("down"))
	NewHTTPLogger(logger).RequestCompleted(context.Background(), "GET", "/api/dashboard", 502, 12.5)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "cache", entries[0][FieldDomain])
	assert.Equal(t, true, entries[0][FieldCacheHit])
	assert.Equal(t, "business", entries[1][FieldDomain])
	assert.Equal(t, "prices", entries[1][FieldResource])
	assert.Equal(t, "warning", entries[1]["level"])
	assert.Equal(t, "http", entries[2][FieldDomain])
	assert.Equal(t, "error", entries[2]["level"])
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	err := DefaultConfig().WithLevel("LOUD").Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "level", cfgErr.Field)

	assert.Error(t, DefaultConfig().WithOutput(nil).Validate())
}

func TestLevelAndFormatFromString(t *testing.T) {
	assert.Equal(t, LevelWarn, LogLevelFromString("warning"))
	assert.Equal(t, LevelDebug, LogLevelFromString(" debug "))
	assert.Equal(t, LevelInfo, LogLevelFromString("nonsense"))
	assert.Equal(t, FormatText, LogFormatFromString("TEXT"))
	assert.Equal(t, FormatJSON, LogFormatFromString(""))
}

func TestGenerateRequestID(t *testing.T) {
	a := GenerateRequestID()
	b := GenerateRequestID()
	assert.True(t, strings.HasPrefix(a, "req_"))
	assert.NotEqual(t, a, b)
}
