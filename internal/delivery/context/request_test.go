package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestOperationName_EchoContext(t *testing.T) {
	c := newEchoContext()

	SetOperationName(c, "")
	assert.Empty(t, GetOperationName(c))

	SetOperationName(c, "GetUsers")
	assert.Equal(t, "GetUsers", GetOperationName(c))
}

func TestWithOperationName_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithLogger(context.Background(), base)

	ctx = WithOperationName(ctx, "GetUsers")

	assert.Equal(t, "GetUsers", GetOperationNameFromContext(ctx))
	GetLoggerOrDefault(ctx, nil).Info("resolved")
	assert.Contains(t, buf.String(), `"operation":"GetUsers"`)
}

func TestWithOperationName_Anonymous(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ctx, WithOperationName(ctx, ""))
	assert.Empty(t, GetOperationNameFromContext(ctx))
}

func TestWithOperationName_WithoutLogger(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	ctx := WithOperationName(context.Background(), "Q")

	assert.Equal(t, "Q", GetOperationNameFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}
