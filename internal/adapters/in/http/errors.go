package http

import (
	"net/http"

	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusOf(category errs.Category) int {
	switch category {
	case errs.CategoryValidation:
		return http.StatusBadRequest
	case errs.CategoryDuplicate, errs.CategoryIntegrity:
		return http.StatusConflict
	case errs.CategoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status of the error category. Store and unexpected
// failures are logged and answered with a generic message.
func (s *Server) writeError(ctx echo.Context, err error) error {
	category := errs.CategoryOf(err)
	code := statusOf(category)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, Error{
		Code:     code,
		Category: string(category),
		Message:  message,
	})
}

// httpErrorHandler renders echo's own failures, such as unknown routes, in the
// Error shape.
func httpErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, isString := he.Message.(string); isString {
			message = m
		}
	}

	category := errs.CategoryOther
	switch code {
	case http.StatusNotFound:
		category = errs.CategoryNotFound
	case http.StatusBadRequest:
		category = errs.CategoryValidation
	}

	_ = ctx.JSON(code, Error{Code: code, Category: string(category), Message: message})
}
