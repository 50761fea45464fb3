package valuation

import "github.com/gahoccode/richslow/internal/domain/models"

// Vietnamese market defaults. Applied when the config file and the request
// override neither value.
const (
	DefaultTaxRate           = 0.20
	DefaultRiskFreeRate      = 0.035
	DefaultMarketRiskPremium = 0.05
	DefaultCreditSpread      = 0.025
	DefaultBenchmarkSymbol   = "VNINDEX"
	DefaultTradingDays       = 252

	// DefaultMinObservations is the minimum number of aligned return
	// observations a regression needs.
	DefaultMinObservations = 30
)

// DefaultAssumptions returns the built-in Vietnamese market parameter set.
func DefaultAssumptions() models.MarketAssumptions {
	return models.MarketAssumptions{
		TaxRate:           DefaultTaxRate,
		RiskFreeRate:      DefaultRiskFreeRate,
		MarketRiskPremium: DefaultMarketRiskPremium,
		CreditSpread:      DefaultCreditSpread,
		BenchmarkSymbol:   DefaultBenchmarkSymbol,
		TradingDays:       DefaultTradingDays,
	}
}

// WithOverrides returns a copy of a with any non-nil override applied.
// A zero value passed through a pointer is a deliberate override, not a miss.
func WithOverrides(a models.MarketAssumptions, riskFree, marketPremium, creditSpread *float64) models.MarketAssumptions {
	if riskFree != nil {
		a.RiskFreeRate = *riskFree
	}
	if marketPremium != nil {
		a.MarketRiskPremium = *marketPremium
	}
	if creditSpread != nil {
		a.CreditSpread = *creditSpread
	}
	return a
}
