package http

import (
	"errors"
	"net/http"

	"seomarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto status codes. Messages of 4xx
// responses come from the error itself; 5xx responses hide the cause and log it.
func (s *Server) writeError(c echo.Context, err error) error {
	var transitionErr *errs.TransitionIsForbiddenError
	if errors.As(err, &transitionErr) {
		allowed := transitionErr.AllowedStatuses
		if allowed == nil {
			allowed = []string{}
		}
		return c.JSON(http.StatusForbidden, TransitionError{
			Error:           Error{Code: http.StatusForbidden, Message: err.Error()},
			AllowedStatuses: allowed,
		})
	}

	code := statusCode(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(code, Error{Code: code, Message: http.StatusText(code)})
	}

	return c.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrActionIsForbidden), errors.Is(err, errs.ErrTransitionIsForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
