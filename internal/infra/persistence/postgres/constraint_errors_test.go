package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"membergraph/config"
	deliverycontext "membergraph/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConstraintViolations(t *testing.T) {
	wrapped := func(code string) error {
		return errors.Wrap(&pgconn.PgError{Code: code}, "insert users")
	}

	assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(wrapped(pgForeignKeyViolation)))

	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgForeignKeyViolation)))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))

	assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	assert.True(t, isNotNullConstraintViolation(wrapped(pgNotNullViolation)))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "name" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	gormLogger := newGormSlogLogger(base, &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "SELECT 1")

	buf.Reset()
	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	gormLogger.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	buf.Reset()
	gormLogger.LogMode(logger.Info).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_TagsRequestAndOperation(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-9")
	ctx = deliverycontext.WithOperationName(ctx, "GetUsers")
	gormLogger.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
	assert.Contains(t, buf.String(), `"operation":"GetUsers"`)
}
