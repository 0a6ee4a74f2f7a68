// Package listing handles result-count capping for list endpoints. The
// case registry orders by creation time descending and caps results; there
// is no pagination cursor.
package listing

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// LimitFromContext extracts the result cap from the request, falling back
// to DefaultLimit and clamping at MaxLimit.
func LimitFromContext(c echo.Context) int {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return limit
}

// Response wraps a capped list API response.
type Response struct {
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
	Limit int         `json:"limit"`
}

func NewResponse(data interface{}, total, limit int) *Response {
	return &Response{Data: data, Total: total, Limit: limit}
}
