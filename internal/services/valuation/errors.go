package valuation

import "fmt"

// InsufficientDataError reports that fewer data points than required were
// available for a computation, such as overlapping return observations after
// alignment or peer companies for an industry benchmark.
type InsufficientDataError struct {
	Ticker   string
	Op       string
	Observed int
	Required int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s %s: insufficient data: %d observations, need at least %d", e.Op, e.Ticker, e.Observed, e.Required)
}

// DataFetchError reports a provider failure while loading market data.
type DataFetchError struct {
	Ticker string
	Op     string
	Err    error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("%s %s: fetch market data: %v", e.Op, e.Ticker, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }

// MissingMarketDataError reports that a required statement field or dataset
// was absent for the ticker.
type MissingMarketDataError struct {
	Ticker string
	Op     string
	Field  string
}

func (e *MissingMarketDataError) Error() string {
	return fmt.Sprintf("%s %s: no %s data available", e.Op, e.Ticker, e.Field)
}

// DegenerateCapitalStructureError reports a non-positive total firm value,
// which leaves capital weights undefined.
type DegenerateCapitalStructureError struct {
	Ticker     string
	Op         string
	TotalValue float64
}

func (e *DegenerateCapitalStructureError) Error() string {
	return fmt.Sprintf("%s %s: degenerate capital structure: total value %.2f <= 0", e.Op, e.Ticker, e.TotalValue)
}
