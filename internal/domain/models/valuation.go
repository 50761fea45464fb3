package models

// MarketAssumptions is the process-wide market parameter set used by every
// valuation calculation. Constructed once at startup and passed by value;
// per-request overrides produce a copy, never a mutation.
type MarketAssumptions struct {
	TaxRate           float64
	RiskFreeRate      float64
	MarketRiskPremium float64
	CreditSpread      float64
	BenchmarkSymbol   string
	TradingDays       int
}

// WACCQuery carries the inputs of a cost-of-capital estimation. The optional
// pointers override the process-wide assumptions for this call only.
type WACCQuery struct {
	Ticker            string
	StartDate         string
	EndDate           string
	Period            string
	RiskFreeRate      *float64
	MarketRiskPremium *float64
	CreditSpread      *float64
}

// BetaMetrics is the output of a beta regression over one date window.
// Derived, read-only, recomputed on every request.
type BetaMetrics struct {
	Ticker           string  `json:"ticker"`
	YearReport       *int    `json:"year_report,omitempty"`
	Beta             float64 `json:"beta"`
	Correlation      float64 `json:"correlation"`
	RSquared         float64 `json:"r_squared"`
	VolatilityStock  float64 `json:"volatility_stock"`
	VolatilityMarket float64 `json:"volatility_market"`
	DataPointsUsed   int     `json:"data_points_used"`
	StartDate        string  `json:"start_date"`
	EndDate          string  `json:"end_date"`
}

// WACCMetrics is the output of a cost-of-capital estimation at the most
// recent reporting period. CostOfDebt is after tax.
type WACCMetrics struct {
	Ticker            string  `json:"ticker"`
	YearReport        *int    `json:"year_report,omitempty"`
	WACC              float64 `json:"wacc"`
	CostOfEquity      float64 `json:"cost_of_equity"`
	CostOfDebt        float64 `json:"cost_of_debt"`
	MarketValueEquity float64 `json:"market_value_equity"`
	MarketValueDebt   float64 `json:"market_value_debt"`
	TotalValue        float64 `json:"total_value"`
	EquityWeight      float64 `json:"equity_weight"`
	DebtWeight        float64 `json:"debt_weight"`
	TaxRate           float64 `json:"tax_rate"`
	RiskFreeRate      float64 `json:"risk_free_rate"`
	MarketRiskPremium float64 `json:"market_risk_premium"`
	Beta              float64 `json:"beta"`
}

// ValuationMetrics is one reporting period of the combined valuation suite.
// Beta and WACC figures reflect the requested analysis window only and are
// attached unchanged to every period; leverage and coverage come from that
// period's own ratio row.
type ValuationMetrics struct {
	Ticker            string   `json:"ticker"`
	YearReport        *int     `json:"year_report,omitempty"`
	Beta              float64  `json:"beta"`
	Correlation       float64  `json:"correlation"`
	RSquared          float64  `json:"r_squared"`
	StockVolatility   float64  `json:"stock_volatility"`
	MarketVolatility  float64  `json:"market_volatility"`
	WACC              float64  `json:"wacc"`
	CostOfEquity      float64  `json:"cost_of_equity"`
	CostOfDebt        float64  `json:"cost_of_debt"`
	MarketCap         float64  `json:"market_cap"`
	TotalDebt         float64  `json:"total_debt"`
	EnterpriseValue   float64  `json:"enterprise_value"`
	EquityWeight      float64  `json:"equity_weight"`
	DebtWeight        float64  `json:"debt_weight"`
	FinancialLeverage *float64 `json:"financial_leverage,omitempty"`
	InterestCoverage  *float64 `json:"interest_coverage,omitempty"`
	RiskFreeRate      float64  `json:"risk_free_rate"`
	MarketRiskPremium float64  `json:"market_risk_premium"`
	TaxRate           float64  `json:"tax_rate"`
	DataPointsUsed    int      `json:"data_points_used"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
}

// BetaQuality summarizes the statistical quality of a beta regression for
// API consumers.
type BetaQuality struct {
	TradingDaysAnalyzed     int     `json:"trading_days_analyzed"`
	CorrelationStrength     string  `json:"correlation_strength"`
	StatisticalSignificance string  `json:"statistical_significance"`
	VolatilityRatio         float64 `json:"volatility_ratio"`
	AnalysisPeriodDays      int     `json:"analysis_period_days"`
}

// AppliedAssumptions echoes the market parameters a WACC estimation ran with.
type AppliedAssumptions struct {
	RiskFreeRate      float64 `json:"risk_free_rate"`
	MarketRiskPremium float64 `json:"market_risk_premium"`
	TaxRate           float64 `json:"tax_rate"`
	Beta              float64 `json:"beta"`
}

// BetaAnalysis is the beta endpoint response.
type BetaAnalysis struct {
	Ticker      string      `json:"ticker"`
	Period      string      `json:"period"`
	BetaMetrics BetaMetrics `json:"beta_metrics"`
	DataQuality BetaQuality `json:"data_quality"`
}

// WACCAnalysis is the WACC endpoint response.
type WACCAnalysis struct {
	Ticker      string             `json:"ticker"`
	Period      string             `json:"period"`
	WACCMetrics WACCMetrics        `json:"wacc_metrics"`
	Assumptions AppliedAssumptions `json:"assumptions"`
}

// SuiteSummary holds headline figures from the latest reporting period.
type SuiteSummary struct {
	LatestWACC           float64 `json:"latest_wacc"`
	LatestBeta           float64 `json:"latest_beta"`
	LatestMarketCap      float64 `json:"latest_market_cap"`
	DebtToTotalCapital   float64 `json:"debt_to_total_capital"`
	EquityToTotalCapital float64 `json:"equity_to_total_capital"`
	CostOfEquity         float64 `json:"cost_of_equity"`
	CostOfDebt           float64 `json:"cost_of_debt"`
	EnterpriseValue      float64 `json:"enterprise_value"`
}

// SuiteQuality summarizes data quality of a valuation suite run.
type SuiteQuality struct {
	BetaDataPoints     int     `json:"beta_data_points"`
	BetaCorrelation    float64 `json:"beta_correlation"`
	BetaRSquared       float64 `json:"beta_r_squared"`
	StatisticalQuality string  `json:"statistical_quality"`
	VolatilityAnalysis string  `json:"volatility_analysis"`
	PeriodsAnalyzed    int     `json:"periods_analyzed"`
}

// WACCComponents breaks out the cost-of-capital inputs of one period.
type WACCComponents struct {
	CostOfEquity float64 `json:"cost_of_equity"`
	CostOfDebt   float64 `json:"cost_of_debt"`
	EquityWeight float64 `json:"equity_weight"`
	DebtWeight   float64 `json:"debt_weight"`
}

// MarketValues breaks out the firm-value inputs of one period.
type MarketValues struct {
	MarketCap       float64 `json:"market_cap"`
	TotalDebt       float64 `json:"total_debt"`
	EnterpriseValue float64 `json:"enterprise_value"`
}

// RiskMetrics breaks out the regression figures of one period.
type RiskMetrics struct {
	Beta             float64 `json:"beta"`
	StockVolatility  float64 `json:"stock_volatility"`
	MarketVolatility float64 `json:"market_volatility"`
}

// PeriodBreakdown is the raw calculation detail for one period.
type PeriodBreakdown struct {
	Year           *int           `json:"year"`
	WACCComponents WACCComponents `json:"wacc_components"`
	MarketValues   MarketValues   `json:"market_values"`
	RiskMetrics    RiskMetrics    `json:"risk_metrics"`
}

// RawValuationData is the optional per-period breakdown block.
type RawValuationData struct {
	ValuationPeriods []PeriodBreakdown `json:"valuation_periods"`
}

// ValuationAnalysis is the complete valuation endpoint response.
type ValuationAnalysis struct {
	Ticker           string             `json:"ticker"`
	Period           string             `json:"period"`
	ValuationMetrics []ValuationMetrics `json:"valuation_metrics"`
	Summary          SuiteSummary       `json:"summary"`
	DataQuality      SuiteQuality       `json:"data_quality"`
	Assumptions      map[string]float64 `json:"assumptions"`
	Years            []int              `json:"years"`
	RawData          *RawValuationData  `json:"raw_data,omitempty"`
}

// AssumptionSet is the published view of the process-wide market assumptions.
type AssumptionSet struct {
	VietnamCorporateTaxRate  float64 `json:"vietnam_corporate_tax_rate"`
	VietnamRiskFreeRate      float64 `json:"vietnam_risk_free_rate"`
	VietnamMarketRiskPremium float64 `json:"vietnam_market_risk_premium"`
	DefaultCreditSpread      float64 `json:"default_credit_spread"`
	MarketBenchmark          string  `json:"market_benchmark"`
	TradingDaysPerYear       int     `json:"trading_days_per_year"`
}

// AssumptionsInfo is the market-assumptions endpoint response.
type AssumptionsInfo struct {
	Assumptions AssumptionSet     `json:"assumptions"`
	Market      string            `json:"market"`
	Currency    string            `json:"currency"`
	Methodology map[string]string `json:"methodology"`
	DataSources map[string]string `json:"data_sources"`
}

// DataAvailability reports what the provider can serve for a ticker/window.
type DataAvailability struct {
	Ticker                    string `json:"ticker"`
	DataAvailable             bool   `json:"data_available"`
	PriceDataPoints           int    `json:"price_data_points"`
	FinancialPeriodsAvailable int    `json:"financial_periods_available"`
	BalanceSheetPeriods       int    `json:"balance_sheet_periods"`
	EarliestPriceDate         string `json:"earliest_price_date,omitempty"`
	LatestPriceDate           string `json:"latest_price_date,omitempty"`
	ValidationDate            string `json:"validation_date"`
	Error                     string `json:"error,omitempty"`
}

// Recommendations guides callers on fixing or sizing their request.
type Recommendations struct {
	MinTradingDaysNeeded      int      `json:"min_trading_days_needed,omitempty"`
	MinFinancialPeriodsNeeded int      `json:"min_financial_periods_needed,omitempty"`
	SuggestedAnalysisPeriod   string   `json:"suggested_analysis_period,omitempty"`
	Issue                     string   `json:"issue,omitempty"`
	Suggestions               []string `json:"suggestions,omitempty"`
}

// ValidationReport is the data-availability endpoint response.
type ValidationReport struct {
	Ticker          string           `json:"ticker"`
	Period          string           `json:"period"`
	Validation      DataAvailability `json:"validation"`
	Recommendations Recommendations  `json:"recommendations"`
}
