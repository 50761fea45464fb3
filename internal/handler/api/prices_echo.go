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

// PricesEchoHandler exposes historical OHLCV bars.
type PricesEchoHandler struct {
	prices *usecase.PriceHistory
	l      *applogger.Logger
}

func NewPricesEchoHandler(prices *usecase.PriceHistory) *PricesEchoHandler {
	metrics.Register()
	return &PricesEchoHandler{prices: prices}
}

// SetLogger injects a structured logger.
func (h *PricesEchoHandler) SetLogger(l *applogger.Logger) { h.l = l }

func (h *PricesEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/stock-prices/:ticker", h.History)
}

func (h *PricesEchoHandler) History(c echo.Context) error {
	start := time.Now()
	endpoint := "prices"
	defer func() { metrics.ValuationLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.PricesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.prices.Fetch(c.Request().Context(), *req)
	if err != nil {
		metrics.ValuationErrors.WithLabelValues(endpoint).Inc()
		if h.l != nil {
			h.l.Error("prices usecase error", applogger.String("ticker", req.Ticker), applogger.Error(err))
		}
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}
