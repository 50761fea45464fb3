package valuation

import (
	"sort"
	"time"

	"github.com/gahoccode/richslow/internal/domain/models"
)

// AlignReturns inner-joins two daily close series on exact trading dates,
// orders the common dates ascending and converts both legs to fractional
// returns close_t/close_{t-1} - 1. The first common date only seeds the
// series, so n common dates yield n-1 observations. Returns
// InsufficientDataError when fewer than minObs observations remain. This is
// the only place the threshold is enforced.
func AlignReturns(ticker string, stock, market []models.PricePoint, minObs int) (models.AlignedReturns, error) {
	stockClose := closeByDate(stock)
	marketClose := closeByDate(market)

	dates := make([]time.Time, 0, len(stockClose))
	for d := range stockClose {
		if _, ok := marketClose[d]; ok {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var aligned models.AlignedReturns
	if n := len(dates); n > 1 {
		aligned.Dates = make([]time.Time, 0, n-1)
		aligned.Stock = make([]float64, 0, n-1)
		aligned.Market = make([]float64, 0, n-1)
		for i := 1; i < n; i++ {
			prev, cur := dates[i-1], dates[i]
			aligned.Dates = append(aligned.Dates, cur)
			aligned.Stock = append(aligned.Stock, fractionalReturn(stockClose[prev], stockClose[cur]))
			aligned.Market = append(aligned.Market, fractionalReturn(marketClose[prev], marketClose[cur]))
		}
	}
	if len(aligned.Stock) < minObs {
		return models.AlignedReturns{}, &InsufficientDataError{
			Ticker:   ticker,
			Op:       "align_returns",
			Observed: len(aligned.Stock),
			Required: minObs,
		}
	}
	return aligned, nil
}

// fractionalReturn computes cur/prev - 1, or 0 when either close is
// non-positive.
func fractionalReturn(prev, cur float64) float64 {
	if prev <= 0 || cur <= 0 {
		return 0
	}
	return cur/prev - 1
}

// closeByDate keys closes by midnight-UTC date. Later duplicates win.
func closeByDate(points []models.PricePoint) map[time.Time]float64 {
	m := make(map[time.Time]float64, len(points))
	for _, p := range points {
		m[p.Time.UTC().Truncate(24*time.Hour)] = p.Close
	}
	return m
}
