package valuation

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Variance returns the population variance of xs (denominator n).
func Variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := Mean(xs)
	sum2 := 0.0
	for _, x := range xs {
		d := x - m
		sum2 += d * d
	}
	return sum2 / float64(len(xs))
}

// Covariance returns the population covariance of the paired series x and y.
// The slices must have equal length.
func Covariance(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}
	mx := Mean(x)
	my := Mean(y)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += (x[i] - mx) * (y[i] - my)
	}
	return sum / float64(n)
}

// Beta returns Cov(stock, market) / Var(market). The n vs n-1 normalization
// cancels in the ratio, so the population convention here matches the sample
// one exactly. Returns 0 when the market series has no variance.
func Beta(stock, market []float64) float64 {
	v := Variance(market)
	if v == 0 {
		return 0
	}
	return Covariance(stock, market) / v
}

// Correlation returns the Pearson correlation coefficient of x and y, or 0
// when either series is constant.
func Correlation(x, y []float64) float64 {
	vx := Variance(x)
	vy := Variance(y)
	if vx == 0 || vy == 0 {
		return 0
	}
	return Covariance(x, y) / math.Sqrt(vx*vy)
}

// RSquared returns the coefficient of determination of the least-squares
// line fit of y on x: 1 - ss_res/ss_tot. Returns 0 when either series is
// constant, since the fit explains nothing a flat line would not.
func RSquared(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}
	vx := Variance(x)
	if vx == 0 {
		return 0
	}
	mx := Mean(x)
	my := Mean(y)
	slope := Covariance(x, y) / vx
	intercept := my - slope*mx

	ssRes := 0.0
	ssTot := 0.0
	for i := 0; i < n; i++ {
		res := y[i] - (intercept + slope*x[i])
		ssRes += res * res
		d := y[i] - my
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

// SampleStd returns the sample standard deviation of xs (denominator n-1),
// or 0 when fewer than two values are present.
func SampleStd(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := Mean(xs)
	sum2 := 0.0
	for _, x := range xs {
		d := x - m
		sum2 += d * d
	}
	variance := sum2 / float64(n-1)
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// AnnualizedVolatility scales the sample standard deviation of daily returns
// by sqrt(tradingDays).
func AnnualizedVolatility(returns []float64, tradingDays int) float64 {
	if tradingDays <= 0 {
		return 0
	}
	return SampleStd(returns) * math.Sqrt(float64(tradingDays))
}

// Quantile returns the q-th quantile of xs using linear interpolation
// between adjacent order statistics. It sorts a copy, so xs is untouched.
func Quantile(xs []float64, q float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[n-1]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := lo + 1
	if hi >= n {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Median returns the 0.5 quantile of xs.
func Median(xs []float64) float64 {
	return Quantile(xs, 0.5)
}
