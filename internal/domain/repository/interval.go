package repository

// Interval represents price bar resolutions.
type Interval string

const (
	IntervalDaily   Interval = "1D"
	IntervalWeekly  Interval = "1W"
	IntervalMonthly Interval = "1M"
)

// IsValidInterval returns true if iv is a supported bar resolution.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	default:
		return false
	}
}

// DefaultInterval returns the default bar resolution.
func DefaultInterval() Interval { return IntervalDaily }

// NormalizeInterval converts raw string to a valid interval (or default).
func NormalizeInterval(s string) Interval {
	if s == "" {
		return DefaultInterval()
	}
	iv := Interval(s)
	if IsValidInterval(iv) {
		return iv
	}
	return DefaultInterval()
}
