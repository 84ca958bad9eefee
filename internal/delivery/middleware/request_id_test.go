package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"membergraph/config"
	deliverycontext "membergraph/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "client id kept", header: "req-123", wantKeep: true},
		{name: "missing id generated", header: ""},
		{name: "oversized id replaced", header: strings.Repeat("x", maxRequestIDLength+1)},
		{name: "non printable id replaced", header: "bad id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var seenID string
			var seenLogger *slog.Logger
			err := m.Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)

			require.NoError(t, err)
			assert.NotNil(t, seenLogger)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.wantKeep {
				assert.Equal(t, tt.header, seenID)
			} else {
				_, parseErr := uuid.Parse(seenID)
				assert.NoError(t, parseErr)
			}
		})
	}
}

func TestLoggerMiddleware_LogsOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		deliverycontext.SetOperationName(c, "GetUsers")

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"operation":"GetUsers"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	err := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}
