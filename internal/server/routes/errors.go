package routes

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// detailResponse is the error body of every non-2xx response.
type detailResponse struct {
	Detail any `json:"detail"`
}

// HTTPErrorHandler renders every error as {"detail": ...}.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var detail any = http.StatusText(status)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch msg := he.Message.(type) {
			case string:
				detail = msg
			case nil:
				detail = http.StatusText(status)
			default:
				detail = fmt.Sprint(msg)
			}
		} else {
			log.ErrorContext(c.Request().Context(), "unhandled request error",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"err", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, detailResponse{Detail: detail})
		}
		if err != nil {
			log.ErrorContext(c.Request().Context(), "failed to write error response", "err", err)
		}
	}
}
