package vci

import (
	"fmt"
	"strconv"
	"strings"
)

// APIError represents a non-200 answer from the VCI API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vci api error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// chartSeries is the TradingView-style bar payload: parallel arrays indexed
// by bar, timestamps in epoch seconds.
type chartSeries struct {
	Symbol string    `json:"symbol"`
	T      []int64   `json:"t"`
	O      []float64 `json:"o"`
	H      []float64 `json:"h"`
	L      []float64 `json:"l"`
	C      []float64 `json:"c"`
	V      []float64 `json:"v"`
}

func (s *chartSeries) ragged() bool {
	n := len(s.T)
	return len(s.O) != n || len(s.H) != n || len(s.L) != n || len(s.C) != n || len(s.V) != n
}

// toFloat coerces a decoded JSON value to float64. The provider ships some
// numeric columns as strings; nulls and labels report false.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
