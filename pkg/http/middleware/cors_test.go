package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func corsEcho() *echo.Echo {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
		MaxAge:       300,
	}))
	e.GET("/data", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	return e
}

func TestCORSPreflight(t *testing.T) {
	e := corsEcho()
	req := httptest.NewRequest(http.MethodOptions, "/data", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dashboard.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	h := rec.Header()
	if h.Get(echo.HeaderAccessControlAllowOrigin) != "https://dashboard.example" {
		t.Fatalf("allow-origin = %q", h.Get(echo.HeaderAccessControlAllowOrigin))
	}
	if h.Get(echo.HeaderAccessControlMaxAge) != "300" {
		t.Fatalf("max-age = %q", h.Get(echo.HeaderAccessControlMaxAge))
	}
}

func TestCORSNoOriginPassThrough(t *testing.T) {
	e := corsEcho()
	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowOrigin) != "" {
		t.Fatal("request without Origin should get no CORS headers")
	}
}

func TestCORSSimpleRequest(t *testing.T) {
	e := corsEcho()
	req := httptest.NewRequest(http.MethodGet, "/data", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dashboard.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("handler not reached: %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowOrigin) != "https://dashboard.example" {
		t.Fatal("allow-origin missing on simple request")
	}
	if rec.Header().Get(echo.HeaderAccessControlAllowMethods) != "" {
		t.Fatal("method list should only appear on preflight")
	}
}
