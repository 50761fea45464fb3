package models

// Requests for valuation HTTP endpoints. Defined in domain for consistency and reuse.

type BetaRequest struct {
	Ticker       string `param:"ticker" json:"ticker" validate:"required,alphanum,max=10"`
	StartDate    string `query:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `query:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	MarketSymbol string `query:"market_symbol" json:"market_symbol" default:"VNINDEX" validate:"required,max=10"`
}

type WACCRequest struct {
	Ticker            string   `param:"ticker" json:"ticker" validate:"required,alphanum,max=10"`
	StartDate         string   `query:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate           string   `query:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	Period            string   `query:"period" json:"period" default:"year" validate:"oneof=year quarter"`
	RiskFreeRate      *float64 `query:"risk_free_rate" json:"risk_free_rate" validate:"omitempty,gte=0,lte=1"`
	MarketRiskPremium *float64 `query:"market_risk_premium" json:"market_risk_premium" validate:"omitempty,gte=0,lte=1"`
	CreditSpread      *float64 `query:"credit_spread" json:"credit_spread" validate:"omitempty,gte=0,lte=1"`
}

type ValuationRequest struct {
	Ticker         string `param:"ticker" json:"ticker" validate:"required,alphanum,max=10"`
	StartDate      string `query:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `query:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	Period         string `query:"period" json:"period" default:"year" validate:"oneof=year quarter"`
	IncludeRawData bool   `query:"include_raw_data" json:"include_raw_data"`
}

type ValidateRequest struct {
	Ticker    string `param:"ticker" json:"ticker" validate:"required,alphanum,max=10"`
	StartDate string `query:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
}
