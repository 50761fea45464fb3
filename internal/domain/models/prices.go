package models

import "time"

// PricePoint is one daily OHLCV bar from the provider chart feed.
type PricePoint struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is an ordered daily price history for one instrument.
// Immutable once fetched.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// StockBar is the wire form of a price bar, with the trading date rendered
// as an ISO calendar date.
type StockBar struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// StockPriceHistory is the stock-prices endpoint payload.
type StockPriceHistory struct {
	Ticker    string     `json:"ticker"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
	Interval  string     `json:"interval"`
	Count     int        `json:"count"`
	Bars      []StockBar `json:"bars"`
}

// AlignedReturns holds paired daily fractional returns for a stock and a
// market index, derived by inner-joining two price series on trading date.
// Stock and Market always have equal length: one entry per common trading
// day after the first.
type AlignedReturns struct {
	Dates  []time.Time
	Stock  []float64
	Market []float64
}
