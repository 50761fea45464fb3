package models

// Requests for industry-benchmark HTTP endpoints. Defined in domain for consistency and reuse.

type BenchmarkByIDRequest struct {
	IndustryID   int `param:"industry_id" json:"industry_id" validate:"required,gt=0"`
	MinCompanies int `query:"min_companies" json:"min_companies" default:"5" validate:"gte=1,lte=50"`
}

type BenchmarkByNameRequest struct {
	IndustryName string `query:"industry_name" json:"industry_name" validate:"required,min=2,max=64"`
	MinCompanies int    `query:"min_companies" json:"min_companies" default:"5" validate:"gte=1,lte=50"`
}

type CompanyBenchmarkRequest struct {
	Ticker       string `param:"ticker" json:"ticker" validate:"required,alphanum,max=10"`
	MinCompanies int    `query:"min_companies" json:"min_companies" default:"5" validate:"gte=1,lte=50"`
}
