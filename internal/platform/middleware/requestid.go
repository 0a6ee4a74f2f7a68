// Package middleware holds the echo middleware shared by all routes:
// request correlation, request logging, and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the header carrying the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// RequestIDContextKey is the echo context key the correlation ID is
// stored under. Logger and Recovery read it from here.
const RequestIDContextKey = "request_id"

// RequestID attaches a correlation ID to every request. An ID supplied by
// the client is preserved; otherwise a fresh UUID is generated. The ID is
// stored on the context for the logger and echoed back in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(RequestIDHeader)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(RequestIDContextKey, rid)
			c.Response().Header().Set(RequestIDHeader, rid)
			return next(c)
		}
	}
}
