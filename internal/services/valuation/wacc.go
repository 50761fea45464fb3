package valuation

import (
	"context"
	"time"

	"github.com/gahoccode/richslow/internal/domain/models"
	"github.com/gahoccode/richslow/internal/domain/repository"
	applogger "github.com/gahoccode/richslow/pkg/logger"
)

// MarketCapFields lists the provider columns tried, in order, when reading
// market capitalization from a ratio row. The first present non-zero
// candidate wins; extend this list when the provider renames the column.
var MarketCapFields = []string{"market_cap", "Market Capital (Bn. VND)"}

// CostOfEquity prices equity with CAPM: rf + beta * mrp.
func CostOfEquity(riskFree, beta, marketPremium float64) float64 {
	return riskFree + beta*marketPremium
}

// AfterTaxCostOfDebt prices debt at the risk-free rate plus a credit spread,
// net of the interest tax shield.
func AfterTaxCostOfDebt(riskFree, creditSpread, taxRate float64) float64 {
	return (riskFree + creditSpread) * (1 - taxRate)
}

// WACC blends the weighted costs of the two capital legs.
func WACC(equityWeight, costOfEquity, debtWeight, afterTaxCostOfDebt float64) float64 {
	return equityWeight*costOfEquity + debtWeight*afterTaxCostOfDebt
}

// EstimateWACC runs a beta regression against the configured benchmark, then
// weights the capital structure from the latest ratio and balance-sheet rows.
// Overrides in q replace the matching process assumptions for this call only.
func (s *Service) EstimateWACC(ctx context.Context, q models.WACCQuery) (m models.WACCMetrics, err error) {
	start := time.Now()
	defer func() { s.observeCalc("wacc", start, err) }()

	assum := WithOverrides(s.assum, q.RiskFreeRate, q.MarketRiskPremium, q.CreditSpread)
	period := repository.NormalizePeriod(q.Period)

	beta, err := s.EstimateBeta(ctx, q.Ticker, assum.BenchmarkSymbol, q.StartDate, q.EndDate)
	if err != nil {
		return models.WACCMetrics{}, err
	}

	ratios, err := s.market.FinanceRatios(ctx, q.Ticker, period)
	if err != nil {
		return models.WACCMetrics{}, &DataFetchError{Ticker: q.Ticker, Op: "wacc", Err: err}
	}
	if len(ratios) == 0 {
		return models.WACCMetrics{}, &MissingMarketDataError{Ticker: q.Ticker, Op: "wacc", Field: "financial ratio"}
	}
	latest := ratios[len(ratios)-1]

	marketCap, ok := latest.Field(MarketCapFields...)
	if !ok {
		return models.WACCMetrics{}, &MissingMarketDataError{Ticker: q.Ticker, Op: "wacc", Field: "market capitalization"}
	}

	sheets, err := s.market.BalanceSheet(ctx, q.Ticker, period)
	if err != nil {
		return models.WACCMetrics{}, &DataFetchError{Ticker: q.Ticker, Op: "wacc", Err: err}
	}
	if len(sheets) == 0 {
		return models.WACCMetrics{}, &MissingMarketDataError{Ticker: q.Ticker, Op: "wacc", Field: "balance sheet"}
	}
	sheet := sheets[len(sheets)-1]

	totalDebt := sheet.ShortTermBorrowings + sheet.LongTermBorrowings
	totalValue := marketCap + totalDebt
	if totalValue <= 0 {
		return models.WACCMetrics{}, &DegenerateCapitalStructureError{Ticker: q.Ticker, Op: "wacc", TotalValue: totalValue}
	}
	equityWeight := marketCap / totalValue
	debtWeight := totalDebt / totalValue

	costOfEquity := CostOfEquity(assum.RiskFreeRate, beta.Beta, assum.MarketRiskPremium)
	costOfDebt := AfterTaxCostOfDebt(assum.RiskFreeRate, assum.CreditSpread, assum.TaxRate)

	m = models.WACCMetrics{
		Ticker:            q.Ticker,
		WACC:              WACC(equityWeight, costOfEquity, debtWeight, costOfDebt),
		CostOfEquity:      costOfEquity,
		CostOfDebt:        costOfDebt,
		MarketValueEquity: marketCap,
		MarketValueDebt:   totalDebt,
		TotalValue:        totalValue,
		EquityWeight:      equityWeight,
		DebtWeight:        debtWeight,
		TaxRate:           assum.TaxRate,
		RiskFreeRate:      assum.RiskFreeRate,
		MarketRiskPremium: assum.MarketRiskPremium,
		Beta:              beta.Beta,
	}
	if yr := latest.Year; yr != 0 {
		m.YearReport = &yr
	}
	if s.l != nil {
		s.l.Debug("valuation.wacc computed",
			applogger.String("ticker", q.Ticker),
			applogger.Float64("wacc", m.WACC),
			applogger.Float64("equity_weight", equityWeight),
			applogger.Float64("debt_weight", debtWeight))
	}
	return m, nil
}
