package repository

// Period represents financial statement reporting periods.
type Period string

const (
	PeriodYear    Period = "year"
	PeriodQuarter Period = "quarter"
)

// IsValidPeriod returns true if p is a supported reporting period.
func IsValidPeriod(p Period) bool {
	switch p {
	case PeriodYear, PeriodQuarter:
		return true
	default:
		return false
	}
}

// DefaultPeriod returns the default reporting period.
func DefaultPeriod() Period { return PeriodYear }

// NormalizePeriod converts raw string to a valid period (or default).
func NormalizePeriod(s string) Period {
	if s == "" {
		return DefaultPeriod()
	}
	p := Period(s)
	if IsValidPeriod(p) {
		return p
	}
	return DefaultPeriod()
}
