package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"kitchenpos/internal/pkg/errs"
)

// ErrorHandler renders every failure as an Error body. Rule violations map to
// 400, missing objects to 404 and everything else to 500.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := statusOf(err)
		if code == http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func statusOf(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	// checked first: an invalid argument may carry a missing object as its cause
	case errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
