package models

// Requests for price-history HTTP endpoints. Defined in domain for consistency and reuse.

type PricesRequest struct {
	Ticker    string `param:"ticker" json:"ticker" validate:"required,alphanum,max=10"`
	StartDate string `query:"start_date" json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" json:"end_date" validate:"required,datetime=2006-01-02"`
	Interval  string `query:"interval" json:"interval" default:"1D" validate:"oneof=1D 1W 1M"`
}
