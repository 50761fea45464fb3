package api

import (
	"time"

	"github.com/labstack/echo/v4"

	models "github.com/gahoccode/richslow/internal/domain/models"
	"github.com/gahoccode/richslow/internal/service/metrics"
	"github.com/gahoccode/richslow/internal/service/ratelimit"
	"github.com/gahoccode/richslow/internal/usecase"
	xhttp "github.com/gahoccode/richslow/pkg/http"
	applogger "github.com/gahoccode/richslow/pkg/logger"
)

// Benchmark requests fan out to one provider call per peer company, so they
// get a tighter per-client budget than the single-fetch endpoints.
const (
	benchmarkBurst  = 2
	benchmarkRefill = 0.5 // tokens per second
)

// BenchmarkEchoHandler exposes industry ratio benchmarks and the ICB
// classification listing.
type BenchmarkEchoHandler struct {
	bench *usecase.IndustryBenchmarker
	rl    *ratelimit.Limiter
	l     *applogger.Logger
}

func NewBenchmarkEchoHandler(bench *usecase.IndustryBenchmarker) *BenchmarkEchoHandler {
	metrics.Register()
	return &BenchmarkEchoHandler{bench: bench, rl: ratelimit.New()}
}

// SetLogger injects a structured logger.
func (h *BenchmarkEchoHandler) SetLogger(l *applogger.Logger) { h.l = l }

func (h *BenchmarkEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/benchmark", h.ByName)
	g.GET("/benchmark/:industry_id", h.ByID)
	g.GET("/benchmark/company/:ticker", h.ForCompany)
	g.GET("/classifications", h.Classifications)
}

func (h *BenchmarkEchoHandler) ByID(c echo.Context) error {
	start := time.Now()
	endpoint := "benchmark_by_id"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.BenchmarkByIDRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":benchmark", benchmarkBurst, benchmarkRefill) {
		if h.l != nil {
			h.l.Warn("benchmark rate_limited", applogger.String("remote", c.RealIP()))
		}
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limited"))
	}

	res, err := h.bench.ByID(c.Request().Context(), req.IndustryID, req.MinCompanies)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("benchmark usecase error", applogger.Int("industry_id", req.IndustryID), applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *BenchmarkEchoHandler) ByName(c echo.Context) error {
	start := time.Now()
	endpoint := "benchmark_by_name"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.BenchmarkByNameRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":benchmark", benchmarkBurst, benchmarkRefill) {
		if h.l != nil {
			h.l.Warn("benchmark rate_limited", applogger.String("remote", c.RealIP()))
		}
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limited"))
	}

	res, err := h.bench.ByName(c.Request().Context(), req.IndustryName, req.MinCompanies)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("benchmark usecase error", applogger.String("industry_name", req.IndustryName), applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *BenchmarkEchoHandler) ForCompany(c echo.Context) error {
	start := time.Now()
	endpoint := "benchmark_company"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.CompanyBenchmarkRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":benchmark", benchmarkBurst, benchmarkRefill) {
		if h.l != nil {
			h.l.Warn("benchmark rate_limited", applogger.String("remote", c.RealIP()))
		}
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limited"))
	}

	res, err := h.bench.ForCompany(c.Request().Context(), req.Ticker, req.MinCompanies)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("benchmark usecase error", applogger.String("ticker", req.Ticker), applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *BenchmarkEchoHandler) Classifications(c echo.Context) error {
	start := time.Now()
	endpoint := "classifications"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	res, err := h.bench.Classifications(c.Request().Context())
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("classifications usecase error", applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}
