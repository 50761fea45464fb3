package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	xhttp "github.com/gahoccode/richslow/pkg/http"
)

// Router bundles all API handlers behind a single registration point so the
// server only needs one Handler.
type Router struct {
	valuation *ValuationEchoHandler
	prices    *PricesEchoHandler
	benchmark *BenchmarkEchoHandler
}

var _ xhttp.Handler = (*Router)(nil)

func NewRouter(valuation *ValuationEchoHandler, prices *PricesEchoHandler, benchmark *BenchmarkEchoHandler) *Router {
	return &Router{valuation: valuation, prices: prices, benchmark: benchmark}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	r.valuation.RegisterRoutes(e)
	r.prices.RegisterRoutes(e)
	r.benchmark.RegisterRoutes(e)
}
