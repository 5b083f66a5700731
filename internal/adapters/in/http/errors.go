package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tubertreats/internal/generated/servers"
	"tubertreats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps a use case error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail renders err as an Error body. Unexpected errors are logged and their
// details are not sent to the client.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

func (s *Server) invalidBody(ctx echo.Context, err error) error {
	message := "Invalid request body"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if m, ok := httpErr.Message.(string); ok {
			message = "Invalid request body: " + m
		}
	}

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// ErrorHandler renders errors that escape a handler, such as unknown routes or
// unparsable path parameters, in the same Error shape the handlers use.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(status)
		} else {
			writeErr = ctx.JSON(status, servers.Error{Code: int32(status), Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
