package schema

import (
	"context"
	"log/slog"

	domainerrors "membergraph/internal/domain/errors"
	"membergraph/internal/errors"
)

// errLoadersMissing means the request was executed without a loader bundle in its context.
var errLoadersMissing = errors.New("request loaders are not configured")

// fieldError is what a resolver failure looks like to clients: a message plus
// the business code under extensions.code.
type fieldError struct {
	message string
	code    string
	cause   error
}

func (e *fieldError) Error() string {
	return e.message
}

func (e *fieldError) Unwrap() error {
	return e.cause
}

// Extensions implements gqlerrors.ExtendedError.
func (e *fieldError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// toFieldError maps err onto the client-facing error. Known business errors keep
// their wrapped message, store failures keep only their public message, and
// anything else is logged and reported as an internal error.
func (s *Schema) toFieldError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var base *domainerrors.BaseError
	if errors.As(err, &base) {
		return &fieldError{message: err.Error(), code: base.ErrorCode(), cause: err}
	}

	s.log(ctx).Error("Resolver failed", slog.Any("error", err))

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return &fieldError{message: appErr.Message(), code: appErr.ErrorCode(), cause: err}
	}

	return &fieldError{
		message: domainerrors.ErrInternalError.Message(),
		code:    domainerrors.ErrInternalError.ErrorCode(),
		cause:   err,
	}
}
