package listing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestLimitFromContext(t *testing.T) {
	tests := []struct {
		target string
		want   int
	}{
		{"/cases", DefaultLimit},
		{"/cases?limit=25", 25},
		{"/cases?limit=0", DefaultLimit},
		{"/cases?limit=-3", DefaultLimit},
		{"/cases?limit=9999", MaxLimit},
		{"/cases?limit=abc", DefaultLimit},
	}
	for _, tt := range tests {
		if got := LimitFromContext(newContext(t, tt.target)); got != tt.want {
			t.Errorf("LimitFromContext(%q) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]int{1, 2}, 10, 2)
	if resp.Total != 10 || resp.Limit != 2 {
		t.Errorf("unexpected response meta: %+v", resp)
	}
}
