package api

import (
	"time"

	"github.com/labstack/echo/v4"

	models "github.com/gahoccode/richslow/internal/domain/models"
	"github.com/gahoccode/richslow/internal/service/metrics"
	"github.com/gahoccode/richslow/internal/usecase"
	xhttp "github.com/gahoccode/richslow/pkg/http"
	applogger "github.com/gahoccode/richslow/pkg/logger"
)

// ValuationEchoHandler exposes the beta, WACC, valuation, validation and
// assumptions endpoints.
type ValuationEchoHandler struct {
	analyzer *usecase.ValuationAnalyzer
	l        *applogger.Logger
}

func NewValuationEchoHandler(analyzer *usecase.ValuationAnalyzer) *ValuationEchoHandler {
	metrics.Register()
	return &ValuationEchoHandler{analyzer: analyzer}
}

// SetLogger injects a structured logger.
func (h *ValuationEchoHandler) SetLogger(l *applogger.Logger) { h.l = l }

func (h *ValuationEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/beta/:ticker", h.Beta)
	g.GET("/wacc/:ticker", h.WACC)
	g.GET("/valuation/:ticker", h.Valuation)
	g.GET("/validate/:ticker", h.Validate)
	g.GET("/market-assumptions", h.MarketAssumptions)
}

func (h *ValuationEchoHandler) Beta(c echo.Context) error {
	start := time.Now()
	endpoint := "beta"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.BetaRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Beta(c.Request().Context(), *req)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("beta usecase error", applogger.String("ticker", req.Ticker), applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ValuationEchoHandler) WACC(c echo.Context) error {
	start := time.Now()
	endpoint := "wacc"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.WACCRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.WACC(c.Request().Context(), *req)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("wacc usecase error", applogger.String("ticker", req.Ticker), applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *ValuationEchoHandler) Valuation(c echo.Context) error {
	start := time.Now()
	endpoint := "valuation"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ValuationRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.Valuation(c.Request().Context(), *req)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("valuation usecase error", applogger.String("ticker", req.Ticker), applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// Validate never fails; data problems come back inside the report.
func (h *ValuationEchoHandler) Validate(c echo.Context) error {
	start := time.Now()
	endpoint := "validate"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ValidateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.analyzer.Validate(c.Request().Context(), *req)
	return xhttp.SuccessResponse(c, res)
}

func (h *ValuationEchoHandler) MarketAssumptions(c echo.Context) error {
	start := time.Now()
	endpoint := "market_assumptions"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	return xhttp.SuccessResponse(c, h.analyzer.AssumptionsInfo())
}
