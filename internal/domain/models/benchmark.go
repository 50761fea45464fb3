package models

// RatioBenchmark holds the distribution of one financial ratio across the
// companies of an industry. Std is the sample standard deviation; P25 and
// P75 use linear interpolation between order statistics.
type RatioBenchmark struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	Std    float64 `json:"std"`
	Count  int     `json:"count"`
}

// IndustryBenchmark aggregates ratio distributions for one industry.
// CompanyCount is the cohort size attempted; CompaniesAnalyzed counts the
// members whose statements could actually be fetched.
type IndustryBenchmark struct {
	IndustryName      string                    `json:"industry_name"`
	IndustryID        *int                      `json:"industry_id,omitempty"`
	CompanyCount      int                       `json:"company_count"`
	CompaniesAnalyzed int                       `json:"companies_analyzed"`
	Benchmarks        map[string]RatioBenchmark `json:"benchmarks"`
	RatiosAvailable   []string                  `json:"ratios_available"`
}
