package usecase

import (
	"context"
	"strings"

	"github.com/gahoccode/richslow/internal/domain/models"
	domrepo "github.com/gahoccode/richslow/internal/domain/repository"
	"github.com/gahoccode/richslow/internal/services/valuation"
	applogger "github.com/gahoccode/richslow/pkg/logger"
	"github.com/gahoccode/richslow/pkg/util"
)

// PriceHistory serves raw OHLCV history for a ticker.
type PriceHistory struct {
	market domrepo.MarketData
	l      *applogger.Logger
}

func NewPriceHistory(market domrepo.MarketData) *PriceHistory {
	return &PriceHistory{market: market}
}

// SetLogger injects a structured logger.
func (u *PriceHistory) SetLogger(l *applogger.Logger) { u.l = l }

// Fetch returns the bars for the requested window, oldest first. An empty
// provider response is reported as missing data rather than an empty list.
func (u *PriceHistory) Fetch(ctx context.Context, req models.PricesRequest) (models.StockPriceHistory, error) {
	ticker := strings.ToUpper(req.Ticker)
	from, ok := util.ParseDate(req.StartDate)
	if !ok {
		return models.StockPriceHistory{}, ErrInvalidDateWindow
	}
	to, ok := util.ParseDate(req.EndDate)
	if !ok {
		return models.StockPriceHistory{}, ErrInvalidDateWindow
	}
	iv := domrepo.NormalizeInterval(req.Interval)

	points, err := u.market.PriceHistory(ctx, ticker, from, to, iv)
	if err != nil {
		return models.StockPriceHistory{}, &valuation.DataFetchError{Ticker: ticker, Op: "price_history", Err: err}
	}
	if len(points) == 0 {
		return models.StockPriceHistory{}, &valuation.MissingMarketDataError{Ticker: ticker, Op: "price_history", Field: "price"}
	}

	bars := make([]models.StockBar, 0, len(points))
	for _, p := range points {
		bars = append(bars, models.StockBar{
			Time:   util.FormatDate(p.Time),
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}
	if u.l != nil {
		u.l.Debug("prices.history fetched",
			applogger.String("ticker", ticker),
			applogger.Int("bars", len(bars)))
	}
	return models.StockPriceHistory{
		Ticker:    ticker,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Interval:  string(iv),
		Count:     len(bars),
		Bars:      bars,
	}, nil
}
