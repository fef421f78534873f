package http

import (
	"errors"
	"net/http"
	"time"

	"seomarket/internal/core/domain/model/kernel"
	"seomarket/internal/core/domain/model/role"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	requesterKey = "requester"
)

// RequireRequester builds a role.Requester from the identity headers and stores
// it on the context. Missing or malformed headers yield 401.
func RequireRequester() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderUserID))
			if err != nil {
				return unauthorized(c, HeaderUserID+" header must be a UUID")
			}

			r, err := role.ParseRole(c.Request().Header.Get(HeaderUserRole))
			if err != nil {
				return unauthorized(c, HeaderUserRole+" header must be a known role")
			}

			requester, err := role.NewRequester(userID, r)
			if err != nil {
				return unauthorized(c, err.Error())
			}

			c.Set(requesterKey, requester)
			return next(c)
		}
	}
}

func requesterFrom(c echo.Context) role.Requester {
	requester, _ := c.Get(requesterKey).(role.Requester)
	return requester
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: message})
}

// RequestObserver receives one call per served request.
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// RequestMetrics reports every request to observer, labelled by route template.
func RequestMetrics(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			observer.ObserveHTTPRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
