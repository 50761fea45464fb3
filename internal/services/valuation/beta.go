package valuation

import (
	"context"
	"fmt"
	"time"

	"github.com/gahoccode/richslow/internal/domain/models"
	"github.com/gahoccode/richslow/internal/domain/repository"
	applogger "github.com/gahoccode/richslow/pkg/logger"
	"github.com/gahoccode/richslow/pkg/util"
)

type seriesResult struct {
	idx    int
	symbol string
	points []models.PricePoint
	err    error
}

// EstimateBeta fetches daily closes for the ticker and the market symbol in
// parallel, aligns them on common trading dates and regresses the ticker's
// fractional returns against the market's. An empty marketSymbol falls back
// to the configured benchmark.
func (s *Service) EstimateBeta(ctx context.Context, ticker, marketSymbol, startDate, endDate string) (m models.BetaMetrics, err error) {
	start := time.Now()
	defer func() { s.observeCalc("beta", start, err) }()

	if marketSymbol == "" {
		marketSymbol = s.assum.BenchmarkSymbol
	}
	from, ok := util.ParseDate(startDate)
	if !ok {
		return models.BetaMetrics{}, fmt.Errorf("estimate beta %s: invalid start date %q", ticker, startDate)
	}
	to, ok := util.ParseDate(endDate)
	if !ok {
		return models.BetaMetrics{}, fmt.Errorf("estimate beta %s: invalid end date %q", ticker, endDate)
	}

	symbols := [2]string{ticker, marketSymbol}
	ch := make(chan seriesResult, len(symbols))
	for i, symbol := range symbols {
		go func(idx int, symbol string) {
			points, err := s.market.PriceHistory(ctx, symbol, from, to, repository.IntervalDaily)
			ch <- seriesResult{idx: idx, symbol: symbol, points: points, err: err}
		}(i, symbol)
	}

	var legs [2][]models.PricePoint
	for range symbols {
		res := <-ch
		if res.err != nil {
			return models.BetaMetrics{}, &DataFetchError{Ticker: res.symbol, Op: "beta", Err: res.err}
		}
		legs[res.idx] = res.points
	}

	aligned, err := AlignReturns(ticker, legs[0], legs[1], s.minObs)
	if err != nil {
		return models.BetaMetrics{}, err
	}

	m = models.BetaMetrics{
		Ticker:           ticker,
		Beta:             Beta(aligned.Stock, aligned.Market),
		Correlation:      Correlation(aligned.Stock, aligned.Market),
		RSquared:         RSquared(aligned.Market, aligned.Stock),
		VolatilityStock:  AnnualizedVolatility(aligned.Stock, s.assum.TradingDays),
		VolatilityMarket: AnnualizedVolatility(aligned.Market, s.assum.TradingDays),
		DataPointsUsed:   len(aligned.Stock),
		StartDate:        startDate,
		EndDate:          endDate,
	}
	if s.l != nil {
		s.l.Debug("valuation.beta computed",
			applogger.String("ticker", ticker),
			applogger.String("market", marketSymbol),
			applogger.Int("observations", m.DataPointsUsed),
			applogger.Float64("beta", m.Beta))
	}
	return m, nil
}
