package middleware

import (
	"log/slog"
	"net/http"

	"mylot/internal/delivery/http/response"
	domainerrors "mylot/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError maps errors onto the API's response shapes as Echo's HTTPErrorHandler.
// Validation failures serve the full [{field, message}] list; AppErrors serve {msg};
// everything else is a logged 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Fields(c, validationErr.HTTPCode(), validationErr.Fields())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Msg(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			msg = s
		}
		_ = response.Msg(c, httpErr.Code, msg)

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Msg(c, http.StatusInternalServerError, "Internal server error.")
}
