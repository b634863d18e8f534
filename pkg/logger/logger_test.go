package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestHandler_AddsContextAttrs(t *testing.T) {
	var buf bytes.Buffer

	l, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)

	t.Cleanup(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	})

	userID := uuid.Must(uuid.NewV4())
	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), userID)

	l.With("component", "test").InfoContext(ctx, "hello")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "hello", rec["msg"])
	require.Equal(t, "req-1", rec["request_id"])
	require.Equal(t, userID.String(), rec["user_id"])
	require.Equal(t, "test", rec["component"])
	require.Equal(t, "req-1", RequestIDFromCtx(ctx))
	require.Empty(t, RequestIDFromCtx(context.Background()))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, "loud", "json")
	require.Error(t, err)
}
