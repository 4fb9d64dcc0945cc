package context

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRequestID(t *testing.T) {
	assert.Equal(t, "caller-1", NormalizeRequestID("caller-1"))

	generated := NormalizeRequestID("")
	assert.NotEmpty(t, generated)

	oversized := strings.Repeat("x", MaxRequestIDLength+1)
	replaced := NormalizeRequestID(oversized)
	assert.NotEqual(t, oversized, replaced)
	assert.LessOrEqual(t, len(replaced), MaxRequestIDLength)
}

func TestOutboundRequestID(t *testing.T) {
	ctx := WithRequestScope(context.Background(), "req-1", slog.Default())
	assert.Equal(t, "req-1", OutboundRequestID(ctx))

	first := OutboundRequestID(context.Background())
	second := OutboundRequestID(context.Background())
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestWithRequestScope_TagsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithRequestScope(context.Background(), "req-7", base)
	GetLoggerOrDefault(ctx, fallback).Info("hello")

	assert.Contains(t, buf.String(), "request_id=req-7")
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
}
