package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/pkg/logger"
)

type traceKey struct{}

func traceID(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		out = append(out, rec)
	}
	return out
}

func TestLogger_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelInfo, "food-delivery", traceID)

	ctx := context.WithValue(context.Background(), traceKey{}, "4bf92f3577b34da6a3ce929d0e0e4736")
	log.Info(ctx, "order created", "order_id", "abcd1234")
	log.Error(context.Background(), "create order", "error", "boom")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 2)

	assert.Equal(t, "info", recs[0]["level"])
	assert.Equal(t, "order created", recs[0]["msg"])
	assert.Equal(t, "food-delivery", recs[0]["service"])
	assert.Equal(t, "abcd1234", recs[0]["order_id"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", recs[0]["trace_id"])
	assert.Contains(t, recs[0]["caller"], "logger_test.go")

	assert.Equal(t, "error", recs[1]["level"])
	assert.NotContains(t, recs[1], "trace_id")
}

func TestLogger_MinLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelWarn, "food-delivery", nil)

	log.Debug(context.Background(), "debug")
	log.Info(context.Background(), "info")
	log.Warn(context.Background(), "warn")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "warn", recs[0]["msg"])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.LevelDebug,
		"":        logger.LevelInfo,
		"INFO":    logger.LevelInfo,
		"warning": logger.LevelWarn,
		"error":   logger.LevelError,
	}
	for in, want := range tests {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}
