package valuation

import "testing"

func f64ptr(v float64) *float64 { return &v }

func TestCostOfCapitalNumericExample(t *testing.T) {
	ce := CostOfEquity(0.035, 1.25, 0.05)
	if !almostEqual(ce, 0.0975, 1e-12) {
		t.Fatalf("cost of equity = %v, want 0.0975", ce)
	}
	cd := AfterTaxCostOfDebt(0.035, 0.025, 0.20)
	if !almostEqual(cd, 0.048, 1e-12) {
		t.Fatalf("after-tax cost of debt = %v, want 0.048", cd)
	}
	wacc := WACC(0.75, ce, 0.25, cd)
	if !almostEqual(wacc, 0.085125, 1e-12) {
		t.Fatalf("wacc = %v, want 0.085125", wacc)
	}
}

func TestDefaultAssumptions(t *testing.T) {
	a := DefaultAssumptions()
	if a.TaxRate != 0.20 || a.RiskFreeRate != 0.035 || a.MarketRiskPremium != 0.05 || a.CreditSpread != 0.025 {
		t.Fatalf("unexpected default rates: %+v", a)
	}
	if a.BenchmarkSymbol != "VNINDEX" || a.TradingDays != 252 {
		t.Fatalf("unexpected default market setup: %+v", a)
	}
}

func TestWithOverrides(t *testing.T) {
	base := DefaultAssumptions()

	got := WithOverrides(base, nil, nil, nil)
	if got != base {
		t.Fatalf("nil overrides changed assumptions: %+v", got)
	}

	got = WithOverrides(base, f64ptr(0.05), f64ptr(0.07), f64ptr(0.03))
	if got.RiskFreeRate != 0.05 || got.MarketRiskPremium != 0.07 || got.CreditSpread != 0.03 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.TaxRate != base.TaxRate || got.BenchmarkSymbol != base.BenchmarkSymbol {
		t.Fatalf("untouched fields changed: %+v", got)
	}

	// zero through a pointer is an override, not an omission
	got = WithOverrides(base, f64ptr(0), nil, nil)
	if got.RiskFreeRate != 0 {
		t.Fatalf("zero override ignored: %v", got.RiskFreeRate)
	}
	if base.RiskFreeRate != DefaultRiskFreeRate {
		t.Fatalf("base mutated: %v", base.RiskFreeRate)
	}
}
