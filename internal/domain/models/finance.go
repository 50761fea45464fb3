package models

// RatioRow is one reporting period of financial ratios. The provider exposes
// ratio columns under unstable names that vary with call parameters, so values
// are kept as a generic field map keyed by normalized column name.
type RatioRow struct {
	Year   int
	Fields map[string]float64
}

// Field returns the first present, non-zero value among the candidate field
// names, in order. Reports false when no candidate yields a usable value.
func (r RatioRow) Field(candidates ...string) (float64, bool) {
	for _, name := range candidates {
		if v, ok := r.Fields[name]; ok && v != 0 {
			return v, true
		}
	}
	return 0, false
}

// Lookup returns the named field by plain presence. Zero values count as
// present, unlike Field.
func (r RatioRow) Lookup(name string) (float64, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// BalanceRow is one reporting period of balance-sheet figures. Only the
// positions the valuation path reads are modeled.
type BalanceRow struct {
	Year                int
	ShortTermBorrowings float64
	LongTermBorrowings  float64
}

// CompanyProfile is the slice of a company overview used to resolve the
// company's industry classification.
type CompanyProfile struct {
	Symbol   string `json:"symbol"`
	IcbName2 string `json:"icb_name2"`
	IcbName3 string `json:"icb_name3"`
	IcbName4 string `json:"icb_name4"`
}

// IndustryClass is one entry of the provider's ICB classification listing.
type IndustryClass struct {
	Code string `json:"icb_code"`
	Name string `json:"icb_name"`
}

// IndustrySymbol maps a listed symbol to its ICB industry names.
type IndustrySymbol struct {
	Symbol   string `json:"symbol"`
	IcbName2 string `json:"icb_name2"`
	IcbName3 string `json:"icb_name3"`
	IcbName4 string `json:"icb_name4"`
}

// ListedSymbol is one entry of the plain all-symbols listing.
type ListedSymbol struct {
	Symbol    string `json:"symbol"`
	OrganName string `json:"organ_name"`
}
