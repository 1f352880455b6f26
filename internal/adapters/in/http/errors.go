package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const unexpectedMessage = "unexpected error"

// errRecoveredPanic replaces a recovered panic value so that no sentinel inside the
// panic can classify it as anything but Unexpected.
var errRecoveredPanic = errors.New("recovered panic")

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.Validation:
		return http.StatusBadRequest
	case errs.NotFound:
		return http.StatusNotFound
	case errs.Conflict:
		return http.StatusConflict
	case errs.Unauthorized:
		return http.StatusUnauthorized
	case errs.UpstreamUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func kindOfStatus(status int) errs.Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusRequestEntityTooLarge,
		http.StatusUnsupportedMediaType:
		return errs.Validation
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return errs.NotFound
	case http.StatusConflict:
		return errs.Conflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return errs.Unauthorized
	case http.StatusBadGateway:
		return errs.UpstreamUnavailable
	default:
		return errs.Unexpected
	}
}

// ErrorHandler renders every error returned by a handler or middleware.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := classify(err)
		if body.Code == errs.Unexpected.Code() {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"error", err,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, ErrorResponse{Error: body})
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, ErrorBody) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		kind := kindOfStatus(he.Code)
		if kind == errs.Unexpected {
			return http.StatusInternalServerError, ErrorBody{Code: kind.Code(), Message: unexpectedMessage}
		}
		return he.Code, ErrorBody{Code: kind.Code(), Message: oneLine(fmt.Sprint(he.Message))}
	}

	kind := errs.KindOf(err)
	if kind == errs.Unexpected {
		return http.StatusInternalServerError, ErrorBody{Code: kind.Code(), Message: unexpectedMessage}
	}

	return statusOf(kind), ErrorBody{Code: kind.Code(), Message: oneLine(err.Error())}
}

// oneLine joins the lines errors.Join produces.
func oneLine(s string) string {
	return strings.Join(strings.Split(s, "\n"), "; ")
}
