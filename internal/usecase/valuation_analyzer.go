package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/gahoccode/richslow/internal/domain/models"
	domrepo "github.com/gahoccode/richslow/internal/domain/repository"
	domsvc "github.com/gahoccode/richslow/internal/domain/service"
	"github.com/gahoccode/richslow/internal/services/valuation"
	applogger "github.com/gahoccode/richslow/pkg/logger"
	"github.com/gahoccode/richslow/pkg/util"
)

// ErrInvalidDateWindow rejects start/end values that are not ISO calendar
// dates. Request validation normally catches this first.
var ErrInvalidDateWindow = errors.New("invalid date window, expected YYYY-MM-DD")

// ValuationAnalyzer assembles the valuation endpoint responses on top of the
// beta and WACC estimators.
type ValuationAnalyzer struct {
	market domrepo.MarketData
	beta   domsvc.BetaEstimator
	wacc   domsvc.WACCEstimator
	assum  models.MarketAssumptions
	minObs int
	l      *applogger.Logger
}

func NewValuationAnalyzer(market domrepo.MarketData, beta domsvc.BetaEstimator, wacc domsvc.WACCEstimator, assum models.MarketAssumptions, minObs int) *ValuationAnalyzer {
	if minObs <= 0 {
		minObs = valuation.DefaultMinObservations
	}
	return &ValuationAnalyzer{market: market, beta: beta, wacc: wacc, assum: assum, minObs: minObs}
}

// SetLogger injects a structured logger.
func (a *ValuationAnalyzer) SetLogger(l *applogger.Logger) { a.l = l }

// Beta runs a beta regression and grades its statistical quality.
func (a *ValuationAnalyzer) Beta(ctx context.Context, req models.BetaRequest) (models.BetaAnalysis, error) {
	ticker := strings.ToUpper(req.Ticker)
	m, err := a.beta.EstimateBeta(ctx, ticker, strings.ToUpper(req.MarketSymbol), req.StartDate, req.EndDate)
	if err != nil {
		return models.BetaAnalysis{}, err
	}
	return models.BetaAnalysis{
		Ticker:      ticker,
		Period:      req.StartDate + " to " + req.EndDate,
		BetaMetrics: m,
		DataQuality: betaQuality(m, req.StartDate, req.EndDate),
	}, nil
}

// WACC estimates the cost of capital with optional assumption overrides.
func (a *ValuationAnalyzer) WACC(ctx context.Context, req models.WACCRequest) (models.WACCAnalysis, error) {
	ticker := strings.ToUpper(req.Ticker)
	m, err := a.wacc.EstimateWACC(ctx, models.WACCQuery{
		Ticker:            ticker,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Period:            req.Period,
		RiskFreeRate:      req.RiskFreeRate,
		MarketRiskPremium: req.MarketRiskPremium,
		CreditSpread:      req.CreditSpread,
	})
	if err != nil {
		return models.WACCAnalysis{}, err
	}
	return models.WACCAnalysis{
		Ticker:      ticker,
		Period:      req.Period + " data with beta from " + req.StartDate + " to " + req.EndDate,
		WACCMetrics: m,
		Assumptions: models.AppliedAssumptions{
			RiskFreeRate:      m.RiskFreeRate,
			MarketRiskPremium: m.MarketRiskPremium,
			TaxRate:           m.TaxRate,
			Beta:              m.Beta,
		},
	}, nil
}

// Valuation combines one beta regression and one WACC estimation with every
// available reporting period, newest first. Beta and WACC are computed once
// for the requested window and attached unchanged to each period; only the
// per-period leverage and coverage ratios vary across rows.
func (a *ValuationAnalyzer) Valuation(ctx context.Context, req models.ValuationRequest) (models.ValuationAnalysis, error) {
	ticker := strings.ToUpper(req.Ticker)

	betaM, err := a.beta.EstimateBeta(ctx, ticker, "", req.StartDate, req.EndDate)
	if err != nil {
		return models.ValuationAnalysis{}, err
	}
	waccM, err := a.wacc.EstimateWACC(ctx, models.WACCQuery{
		Ticker:    ticker,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Period:    req.Period,
	})
	if err != nil {
		return models.ValuationAnalysis{}, err
	}

	ratios, err := a.market.FinanceRatios(ctx, ticker, domrepo.NormalizePeriod(req.Period))
	if err != nil {
		return models.ValuationAnalysis{}, &valuation.DataFetchError{Ticker: ticker, Op: "valuation_suite", Err: err}
	}

	enterpriseValue := waccM.MarketValueEquity + waccM.MarketValueDebt
	rows := make([]models.ValuationMetrics, 0, len(ratios))
	for i := len(ratios) - 1; i >= 0; i-- {
		row := ratios[i]
		vm := models.ValuationMetrics{
			Ticker:            ticker,
			Beta:              betaM.Beta,
			Correlation:       betaM.Correlation,
			RSquared:          betaM.RSquared,
			StockVolatility:   betaM.VolatilityStock,
			MarketVolatility:  betaM.VolatilityMarket,
			WACC:              waccM.WACC,
			CostOfEquity:      waccM.CostOfEquity,
			CostOfDebt:        waccM.CostOfDebt,
			MarketCap:         waccM.MarketValueEquity,
			TotalDebt:         waccM.MarketValueDebt,
			EnterpriseValue:   enterpriseValue,
			EquityWeight:      waccM.EquityWeight,
			DebtWeight:        waccM.DebtWeight,
			RiskFreeRate:      waccM.RiskFreeRate,
			MarketRiskPremium: waccM.MarketRiskPremium,
			TaxRate:           waccM.TaxRate,
			DataPointsUsed:    betaM.DataPointsUsed,
			StartDate:         req.StartDate,
			EndDate:           req.EndDate,
		}
		if row.Year != 0 {
			yr := row.Year
			vm.YearReport = &yr
		}
		if v, ok := row.Lookup("debt_to_equity"); ok {
			lv := v
			vm.FinancialLeverage = &lv
		}
		if v, ok := row.Lookup("interest_coverage_ratio"); ok {
			ic := v
			vm.InterestCoverage = &ic
		}
		rows = append(rows, vm)
	}
	if len(rows) == 0 {
		return models.ValuationAnalysis{}, &valuation.MissingMarketDataError{Ticker: ticker, Op: "valuation_suite", Field: "valuation"}
	}

	years := make([]int, 0, len(rows))
	seen := make(map[int]bool, len(rows))
	for _, m := range rows {
		if m.YearReport != nil && !seen[*m.YearReport] {
			seen[*m.YearReport] = true
			years = append(years, *m.YearReport)
		}
	}
	sort.Ints(years)

	latest := rows[0]
	resp := models.ValuationAnalysis{
		Ticker:           ticker,
		Period:           req.Period + " analysis from " + req.StartDate + " to " + req.EndDate,
		ValuationMetrics: rows,
		Summary: models.SuiteSummary{
			LatestWACC:           latest.WACC,
			LatestBeta:           latest.Beta,
			LatestMarketCap:      latest.MarketCap,
			DebtToTotalCapital:   latest.DebtWeight,
			EquityToTotalCapital: latest.EquityWeight,
			CostOfEquity:         latest.CostOfEquity,
			CostOfDebt:           latest.CostOfDebt,
			EnterpriseValue:      latest.EnterpriseValue,
		},
		DataQuality: models.SuiteQuality{
			BetaDataPoints:     latest.DataPointsUsed,
			BetaCorrelation:    latest.Correlation,
			BetaRSquared:       latest.RSquared,
			StatisticalQuality: statisticalSignificance(latest.RSquared),
			VolatilityAnalysis: "Complete",
			PeriodsAnalyzed:    len(rows),
		},
		Assumptions: numericAssumptions(a.assum),
		Years:       years,
	}
	if req.IncludeRawData {
		resp.RawData = &models.RawValuationData{ValuationPeriods: periodBreakdowns(rows)}
	}
	if a.l != nil {
		a.l.Info("valuation.suite completed",
			applogger.String("ticker", ticker),
			applogger.Int("periods", len(rows)))
	}
	return resp, nil
}

// Validate probes what the provider can serve for a ticker before a full
// analysis. It never fails; provider errors land inside the report.
func (a *ValuationAnalyzer) Validate(ctx context.Context, req models.ValidateRequest) models.ValidationReport {
	ticker := strings.ToUpper(req.Ticker)
	avail := models.DataAvailability{
		Ticker:         ticker,
		ValidationDate: time.Now().UTC().Format(time.RFC3339),
	}
	fail := func(err error) models.ValidationReport {
		avail.Error = err.Error()
		return models.ValidationReport{
			Ticker:          ticker,
			Period:          req.StartDate + " to " + req.EndDate,
			Validation:      avail,
			Recommendations: unavailableRecommendations(),
		}
	}

	from, fromOK := util.ParseDate(req.StartDate)
	to, toOK := util.ParseDate(req.EndDate)
	if !fromOK || !toOK {
		return fail(ErrInvalidDateWindow)
	}

	points, err := a.market.PriceHistory(ctx, ticker, from, to, domrepo.IntervalDaily)
	if err != nil {
		return fail(err)
	}
	avail.PriceDataPoints = len(points)
	if len(points) > 0 {
		earliest, latest := points[0].Time, points[0].Time
		for _, p := range points[1:] {
			if p.Time.Before(earliest) {
				earliest = p.Time
			}
			if p.Time.After(latest) {
				latest = p.Time
			}
		}
		avail.EarliestPriceDate = util.FormatDate(earliest)
		avail.LatestPriceDate = util.FormatDate(latest)
	}

	ratios, err := a.market.FinanceRatios(ctx, ticker, domrepo.PeriodYear)
	if err != nil {
		return fail(err)
	}
	avail.FinancialPeriodsAvailable = len(ratios)

	sheets, err := a.market.BalanceSheet(ctx, ticker, domrepo.PeriodYear)
	if err != nil {
		return fail(err)
	}
	avail.BalanceSheetPeriods = len(sheets)
	avail.DataAvailable = true

	return models.ValidationReport{
		Ticker:     ticker,
		Period:     req.StartDate + " to " + req.EndDate,
		Validation: avail,
		Recommendations: models.Recommendations{
			MinTradingDaysNeeded:      a.minObs,
			MinFinancialPeriodsNeeded: 1,
			SuggestedAnalysisPeriod:   "1-3 years for stable beta calculation",
		},
	}
}

// AssumptionsInfo publishes the configured market assumptions together with
// the methodology behind each figure.
func (a *ValuationAnalyzer) AssumptionsInfo() models.AssumptionsInfo {
	return models.AssumptionsInfo{
		Assumptions: models.AssumptionSet{
			VietnamCorporateTaxRate:  a.assum.TaxRate,
			VietnamRiskFreeRate:      a.assum.RiskFreeRate,
			VietnamMarketRiskPremium: a.assum.MarketRiskPremium,
			DefaultCreditSpread:      a.assum.CreditSpread,
			MarketBenchmark:          a.assum.BenchmarkSymbol,
			TradingDaysPerYear:       a.assum.TradingDays,
		},
		Market:   "Vietnam",
		Currency: "VND",
		Methodology: map[string]string{
			"beta_calculation":  "Covariance method vs " + a.assum.BenchmarkSymbol,
			"cost_of_equity":    "CAPM model",
			"cost_of_debt":      "Risk-free rate + credit spread with tax shield",
			"market_value_debt": "Book value proxy",
			"data_alignment":    "Inner join on trading dates",
		},
		DataSources: map[string]string{
			"stock_prices":         "VCI",
			"financial_statements": "VCI",
			"market_index":         a.assum.BenchmarkSymbol + " via VCI",
		},
	}
}

func betaQuality(m models.BetaMetrics, startDate, endDate string) models.BetaQuality {
	ratio := 0.0
	if m.VolatilityMarket > 0 {
		ratio = m.VolatilityStock / m.VolatilityMarket
	}
	days := 0
	if from, ok := util.ParseDate(startDate); ok {
		if to, ok := util.ParseDate(endDate); ok {
			days = util.DaysBetween(from, to)
		}
	}
	return models.BetaQuality{
		TradingDaysAnalyzed:     m.DataPointsUsed,
		CorrelationStrength:     correlationStrength(m.Correlation),
		StatisticalSignificance: statisticalSignificance(m.RSquared),
		VolatilityRatio:         ratio,
		AnalysisPeriodDays:      days,
	}
}

func correlationStrength(corr float64) string {
	switch abs := math.Abs(corr); {
	case abs > 0.7:
		return "Strong"
	case abs > 0.4:
		return "Moderate"
	default:
		return "Weak"
	}
}

func statisticalSignificance(rSquared float64) string {
	switch {
	case rSquared > 0.5:
		return "High"
	case rSquared > 0.25:
		return "Medium"
	default:
		return "Low"
	}
}

func numericAssumptions(a models.MarketAssumptions) map[string]float64 {
	return map[string]float64{
		"vietnam_corporate_tax_rate":  a.TaxRate,
		"vietnam_risk_free_rate":      a.RiskFreeRate,
		"vietnam_market_risk_premium": a.MarketRiskPremium,
		"default_credit_spread":       a.CreditSpread,
		"trading_days_per_year":       float64(a.TradingDays),
	}
}

func periodBreakdowns(rows []models.ValuationMetrics) []models.PeriodBreakdown {
	out := make([]models.PeriodBreakdown, 0, len(rows))
	for _, m := range rows {
		out = append(out, models.PeriodBreakdown{
			Year: m.YearReport,
			WACCComponents: models.WACCComponents{
				CostOfEquity: m.CostOfEquity,
				CostOfDebt:   m.CostOfDebt,
				EquityWeight: m.EquityWeight,
				DebtWeight:   m.DebtWeight,
			},
			MarketValues: models.MarketValues{
				MarketCap:       m.MarketCap,
				TotalDebt:       m.TotalDebt,
				EnterpriseValue: m.EnterpriseValue,
			},
			RiskMetrics: models.RiskMetrics{
				Beta:             m.Beta,
				StockVolatility:  m.StockVolatility,
				MarketVolatility: m.MarketVolatility,
			},
		})
	}
	return out
}

func unavailableRecommendations() models.Recommendations {
	return models.Recommendations{
		Issue: "Insufficient data available",
		Suggestions: []string{
			"Try a different date range",
			"Check if ticker symbol is correct",
			"Verify market trading calendar",
		},
	}
}
