package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gahoccode/richslow/internal/domain/models"
	domrepo "github.com/gahoccode/richslow/internal/domain/repository"
	"github.com/gahoccode/richslow/internal/services/valuation"
)

type fakeMarketData struct {
	prices          map[string][]models.PricePoint
	pricesErr       error
	ratios          map[string][]models.RatioRow
	ratiosErr       map[string]error
	sheets          map[string][]models.BalanceRow
	sheetsErr       error
	profiles        map[string]*models.CompanyProfile
	profileErr      error
	industries      []models.IndustryClass
	industriesErr   error
	industrySymbols []models.IndustrySymbol
	symbolsErr      error
	allSymbols      []models.ListedSymbol
	allErr          error
}

func (f *fakeMarketData) PriceHistory(_ context.Context, symbol string, _, _ time.Time, _ domrepo.Interval) ([]models.PricePoint, error) {
	if f.pricesErr != nil {
		return nil, f.pricesErr
	}
	return f.prices[symbol], nil
}

func (f *fakeMarketData) FinanceRatios(_ context.Context, symbol string, _ domrepo.Period) ([]models.RatioRow, error) {
	if err, ok := f.ratiosErr[symbol]; ok {
		return nil, err
	}
	return f.ratios[symbol], nil
}

func (f *fakeMarketData) BalanceSheet(_ context.Context, symbol string, _ domrepo.Period) ([]models.BalanceRow, error) {
	if f.sheetsErr != nil {
		return nil, f.sheetsErr
	}
	return f.sheets[symbol], nil
}

func (f *fakeMarketData) CompanyProfile(_ context.Context, symbol string) (*models.CompanyProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	if p, ok := f.profiles[symbol]; ok {
		return p, nil
	}
	return &models.CompanyProfile{}, nil
}

func (f *fakeMarketData) Industries(_ context.Context) ([]models.IndustryClass, error) {
	if f.industriesErr != nil {
		return nil, f.industriesErr
	}
	return f.industries, nil
}

func (f *fakeMarketData) SymbolsByIndustry(_ context.Context) ([]models.IndustrySymbol, error) {
	if f.symbolsErr != nil {
		return nil, f.symbolsErr
	}
	return f.industrySymbols, nil
}

func (f *fakeMarketData) AllSymbols(_ context.Context) ([]models.ListedSymbol, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.allSymbols, nil
}

var _ domrepo.MarketData = (*fakeMarketData)(nil)

// doubledSeries builds daily bars where the stock return is exactly twice the
// market return each day, so beta is 2 with perfect correlation.
func doubledSeries(days int) (stock, market []models.PricePoint) {
	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	mClose, sClose := 1000.0, 100.0
	for i := 0; i < days; i++ {
		d := base.AddDate(0, 0, i)
		market = append(market, models.PricePoint{Time: d, Close: mClose})
		stock = append(stock, models.PricePoint{Time: d, Close: sClose})
		r := 0.004
		if i%2 == 0 {
			r = 0.006
		}
		mClose *= 1 + r
		sClose *= 1 + 2*r
	}
	return stock, market
}

func analyzerFake() *fakeMarketData {
	stock, market := doubledSeries(40)
	return &fakeMarketData{
		prices: map[string][]models.PricePoint{
			"FPT":     stock,
			"VNINDEX": market,
		},
		ratios: map[string][]models.RatioRow{
			"FPT": {
				{Year: 2021, Fields: map[string]float64{"market_cap": 9000, "debt_to_equity": 1.2, "interest_coverage_ratio": 5}},
				{Year: 2022, Fields: map[string]float64{"market_cap": 10000, "debt_to_equity": 0.8}},
				{Year: 2023, Fields: map[string]float64{"market_cap": 12000, "debt_to_equity": 0, "interest_coverage_ratio": 8}},
			},
		},
		sheets: map[string][]models.BalanceRow{
			"FPT": {
				{Year: 2022, ShortTermBorrowings: 1000, LongTermBorrowings: 500},
				{Year: 2023, ShortTermBorrowings: 2500, LongTermBorrowings: 1500},
			},
		},
	}
}

func newAnalyzer(f *fakeMarketData) *ValuationAnalyzer {
	svc := valuation.New(f, valuation.DefaultAssumptions(), 0)
	return NewValuationAnalyzer(f, svc, svc, svc.Assumptions(), svc.MinObservations())
}

func TestBetaAnalysisQuality(t *testing.T) {
	a := newAnalyzer(analyzerFake())

	res, err := a.Beta(context.Background(), models.BetaRequest{
		Ticker:    "fpt",
		StartDate: "2024-01-02",
		EndDate:   "2024-02-10",
	})
	if err != nil {
		t.Fatalf("Beta: %v", err)
	}
	if res.Ticker != "FPT" {
		t.Fatalf("ticker = %q, want FPT", res.Ticker)
	}
	if res.Period != "2024-01-02 to 2024-02-10" {
		t.Fatalf("period = %q", res.Period)
	}
	if math.Abs(res.BetaMetrics.Beta-2) > 1e-9 {
		t.Fatalf("beta = %v, want 2", res.BetaMetrics.Beta)
	}
	q := res.DataQuality
	if q.TradingDaysAnalyzed != 39 {
		t.Fatalf("trading days = %d, want 39", q.TradingDaysAnalyzed)
	}
	if q.CorrelationStrength != "Strong" {
		t.Fatalf("correlation strength = %q", q.CorrelationStrength)
	}
	if q.StatisticalSignificance != "High" {
		t.Fatalf("significance = %q", q.StatisticalSignificance)
	}
	if math.Abs(q.VolatilityRatio-2) > 1e-9 {
		t.Fatalf("volatility ratio = %v, want 2", q.VolatilityRatio)
	}
	if q.AnalysisPeriodDays != 39 {
		t.Fatalf("period days = %d, want 39", q.AnalysisPeriodDays)
	}
}

func TestQualityBuckets(t *testing.T) {
	strength := map[float64]string{
		0.71:  "Strong",
		-0.9:  "Strong",
		0.7:   "Moderate",
		0.41:  "Moderate",
		0.4:   "Weak",
		-0.05: "Weak",
	}
	for corr, want := range strength {
		if got := correlationStrength(corr); got != want {
			t.Errorf("correlationStrength(%v) = %q, want %q", corr, got, want)
		}
	}
	significance := map[float64]string{
		0.51: "High",
		0.5:  "Medium",
		0.26: "Medium",
		0.25: "Low",
		0:    "Low",
	}
	for r2, want := range significance {
		if got := statisticalSignificance(r2); got != want {
			t.Errorf("statisticalSignificance(%v) = %q, want %q", r2, got, want)
		}
	}
}

func TestWACCAnalysisAssumptions(t *testing.T) {
	a := newAnalyzer(analyzerFake())

	res, err := a.WACC(context.Background(), models.WACCRequest{
		Ticker:    "FPT",
		StartDate: "2024-01-02",
		EndDate:   "2024-02-10",
		Period:    "year",
	})
	if err != nil {
		t.Fatalf("WACC: %v", err)
	}
	if res.Period != "year data with beta from 2024-01-02 to 2024-02-10" {
		t.Fatalf("period = %q", res.Period)
	}
	if res.Assumptions.RiskFreeRate != 0.035 || res.Assumptions.MarketRiskPremium != 0.05 || res.Assumptions.TaxRate != 0.20 {
		t.Fatalf("assumptions = %+v", res.Assumptions)
	}
	if res.Assumptions.Beta != res.WACCMetrics.Beta {
		t.Fatalf("assumption beta %v != metrics beta %v", res.Assumptions.Beta, res.WACCMetrics.Beta)
	}
	if res.WACCMetrics.MarketValueEquity != 12000 || res.WACCMetrics.MarketValueDebt != 4000 {
		t.Fatalf("market values = %+v", res.WACCMetrics)
	}
}

func TestValuationSuiteSharedSnapshot(t *testing.T) {
	a := newAnalyzer(analyzerFake())

	res, err := a.Valuation(context.Background(), models.ValuationRequest{
		Ticker:    "FPT",
		StartDate: "2024-01-02",
		EndDate:   "2024-02-10",
		Period:    "year",
	})
	if err != nil {
		t.Fatalf("Valuation: %v", err)
	}
	if res.Period != "year analysis from 2024-01-02 to 2024-02-10" {
		t.Fatalf("period = %q", res.Period)
	}
	rows := res.ValuationMetrics
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	wantYears := []int{2023, 2022, 2021}
	for i, want := range wantYears {
		if rows[i].YearReport == nil || *rows[i].YearReport != want {
			t.Fatalf("row %d year = %v, want %d", i, rows[i].YearReport, want)
		}
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Beta != rows[0].Beta || rows[i].WACC != rows[0].WACC || rows[i].MarketCap != rows[0].MarketCap {
			t.Fatalf("row %d snapshot differs from row 0", i)
		}
	}

	if rows[0].FinancialLeverage == nil || *rows[0].FinancialLeverage != 0 {
		t.Fatalf("newest leverage = %v, want explicit 0", rows[0].FinancialLeverage)
	}
	if rows[1].FinancialLeverage == nil || *rows[1].FinancialLeverage != 0.8 {
		t.Fatalf("2022 leverage = %v, want 0.8", rows[1].FinancialLeverage)
	}
	if rows[1].InterestCoverage != nil {
		t.Fatalf("2022 coverage should be absent, got %v", *rows[1].InterestCoverage)
	}
	if rows[2].InterestCoverage == nil || *rows[2].InterestCoverage != 5 {
		t.Fatalf("2021 coverage = %v, want 5", rows[2].InterestCoverage)
	}

	if len(res.Years) != 3 || res.Years[0] != 2021 || res.Years[2] != 2023 {
		t.Fatalf("years = %v, want ascending [2021 2022 2023]", res.Years)
	}
	if res.Summary.LatestMarketCap != 12000 || res.Summary.EnterpriseValue != 16000 {
		t.Fatalf("summary = %+v", res.Summary)
	}
	if res.DataQuality.PeriodsAnalyzed != 3 || res.DataQuality.StatisticalQuality != "High" {
		t.Fatalf("data quality = %+v", res.DataQuality)
	}
	if res.DataQuality.VolatilityAnalysis != "Complete" {
		t.Fatalf("volatility analysis = %q", res.DataQuality.VolatilityAnalysis)
	}
	if res.Assumptions["trading_days_per_year"] != 252 {
		t.Fatalf("assumptions = %v", res.Assumptions)
	}
	if len(res.Assumptions) != 5 {
		t.Fatalf("assumption keys = %d, want 5", len(res.Assumptions))
	}
	if res.RawData != nil {
		t.Fatalf("raw data should be omitted by default")
	}
}

func TestValuationSuiteRawData(t *testing.T) {
	a := newAnalyzer(analyzerFake())

	res, err := a.Valuation(context.Background(), models.ValuationRequest{
		Ticker:         "FPT",
		StartDate:      "2024-01-02",
		EndDate:        "2024-02-10",
		Period:         "year",
		IncludeRawData: true,
	})
	if err != nil {
		t.Fatalf("Valuation: %v", err)
	}
	if res.RawData == nil {
		t.Fatal("raw data missing")
	}
	periods := res.RawData.ValuationPeriods
	if len(periods) != 3 {
		t.Fatalf("raw periods = %d, want 3", len(periods))
	}
	if periods[0].Year == nil || *periods[0].Year != 2023 {
		t.Fatalf("raw period year = %v, want 2023", periods[0].Year)
	}
	if periods[0].MarketValues.EnterpriseValue != 16000 {
		t.Fatalf("raw enterprise value = %v", periods[0].MarketValues.EnterpriseValue)
	}
	if periods[0].WACCComponents.EquityWeight != 0.75 {
		t.Fatalf("raw equity weight = %v", periods[0].WACCComponents.EquityWeight)
	}
}

func TestValidateReportsAvailability(t *testing.T) {
	a := newAnalyzer(analyzerFake())

	rep := a.Validate(context.Background(), models.ValidateRequest{
		Ticker:    "fpt",
		StartDate: "2024-01-02",
		EndDate:   "2024-02-10",
	})
	if rep.Ticker != "FPT" {
		t.Fatalf("ticker = %q", rep.Ticker)
	}
	v := rep.Validation
	if !v.DataAvailable {
		t.Fatalf("expected data available, report %+v", v)
	}
	if v.PriceDataPoints != 40 || v.FinancialPeriodsAvailable != 3 || v.BalanceSheetPeriods != 2 {
		t.Fatalf("counts = %+v", v)
	}
	if v.EarliestPriceDate != "2024-01-02" || v.LatestPriceDate != "2024-02-10" {
		t.Fatalf("price dates = %q .. %q", v.EarliestPriceDate, v.LatestPriceDate)
	}
	if _, err := time.Parse(time.RFC3339, v.ValidationDate); err != nil {
		t.Fatalf("validation date %q: %v", v.ValidationDate, err)
	}
	r := rep.Recommendations
	if r.MinTradingDaysNeeded != valuation.DefaultMinObservations || r.MinFinancialPeriodsNeeded != 1 {
		t.Fatalf("recommendations = %+v", r)
	}
	if r.SuggestedAnalysisPeriod != "1-3 years for stable beta calculation" {
		t.Fatalf("suggested period = %q", r.SuggestedAnalysisPeriod)
	}
	if r.Issue != "" || r.Suggestions != nil {
		t.Fatalf("unexpected issue block: %+v", r)
	}
}

func TestValidateReportsProviderFailure(t *testing.T) {
	f := analyzerFake()
	f.pricesErr = errors.New("provider unreachable")
	a := newAnalyzer(f)

	rep := a.Validate(context.Background(), models.ValidateRequest{
		Ticker:    "FPT",
		StartDate: "2024-01-02",
		EndDate:   "2024-02-10",
	})
	v := rep.Validation
	if v.DataAvailable {
		t.Fatal("expected data unavailable")
	}
	if !strings.Contains(v.Error, "provider unreachable") {
		t.Fatalf("error = %q", v.Error)
	}
	r := rep.Recommendations
	if r.Issue != "Insufficient data available" {
		t.Fatalf("issue = %q", r.Issue)
	}
	if len(r.Suggestions) != 3 {
		t.Fatalf("suggestions = %v", r.Suggestions)
	}
	if r.MinTradingDaysNeeded != 0 {
		t.Fatalf("unexpected threshold block: %+v", r)
	}
}

func TestAssumptionsInfo(t *testing.T) {
	a := newAnalyzer(analyzerFake())

	info := a.AssumptionsInfo()
	if info.Market != "Vietnam" || info.Currency != "VND" {
		t.Fatalf("info = %+v", info)
	}
	if info.Assumptions.MarketBenchmark != "VNINDEX" || info.Assumptions.TradingDaysPerYear != 252 {
		t.Fatalf("assumptions = %+v", info.Assumptions)
	}
	if info.Assumptions.VietnamCorporateTaxRate != 0.20 {
		t.Fatalf("tax rate = %v", info.Assumptions.VietnamCorporateTaxRate)
	}
	if info.Methodology["beta_calculation"] != "Covariance method vs VNINDEX" {
		t.Fatalf("methodology = %v", info.Methodology)
	}
	if info.DataSources["market_index"] != "VNINDEX via VCI" {
		t.Fatalf("data sources = %v", info.DataSources)
	}
}
