package metrics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Significance selects how the p-value attached to a correlation is derived.
type Significance string

const (
	// Approximate is a coarse |t| > 2 rule, not a statistical test.
	Approximate Significance = "approximate"
	// Exact is the two-tailed Student's t p-value with n-2 degrees of freedom.
	Exact Significance = "exact"
)

const (
	approxSignificantP   = 0.05
	approxInsignificantP = 0.1
	approxTCutoff        = 2.0
	tEpsilon             = 1e-10
)

func ParseSignificance(s string) (Significance, error) {
	switch Significance(s) {
	case Approximate, Exact:
		return Significance(s), nil
	case "":
		return Approximate, nil
	default:
		return "", fmt.Errorf("unknown significance method %q, expected %q or %q", s, Approximate, Exact)
	}
}

func (s Significance) Label() string {
	if s == Exact {
		return "two-tailed t-test"
	}
	return "approximate (|t|>2 rule)"
}

func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Pearson computes the sample correlation coefficient of two equal-length
// sequences. When either sequence has zero variance the coefficient is
// undefined; this returns 0 for that case (and for empty input) by policy.
func Pearson(x, y []float64) float64 {
	r, _ := pearson(x, y)
	return r
}

// pearson reports ok=false when the coefficient is undefined.
func pearson(x, y []float64) (float64, bool) {
	n := min(len(x), len(y))
	if n == 0 {
		return 0, false
	}

	meanX := Mean(x[:n])
	meanY := Mean(y[:n])

	var num, sumSqX, sumSqY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		sumSqX += dx * dx
		sumSqY += dy * dy
	}

	denom := math.Sqrt(sumSqX * sumSqY)
	if denom == 0 {
		return 0, false
	}

	return max(-1, min(1, num/denom)), true
}

// TStatistic converts r into the t statistic for n samples.
func TStatistic(r float64, n int) float64 {
	if n <= 2 {
		return 0
	}
	return r * math.Sqrt(float64(n-2)/(1-r*r+tEpsilon))
}

// Correlate returns the Pearson coefficient and a p-value computed with the
// given method. Undefined correlations yield (0, 1).
func Correlate(x, y []float64, method Significance) (float64, float64) {
	r, ok := pearson(x, y)
	if !ok {
		return 0, 1
	}

	n := min(len(x), len(y))
	t := TStatistic(r, n)

	if method == Exact {
		return r, exactPValue(t, n)
	}
	if math.Abs(t) > approxTCutoff {
		return r, approxSignificantP
	}
	return r, approxInsignificantP
}

func exactPValue(t float64, n int) float64 {
	if n <= 2 {
		return 1
	}
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	p := 2 * dist.Survival(math.Abs(t))
	return max(0, min(1, p))
}

// MeanAbsoluteError averages |x[i]-y[i]|. Empty input yields 0.
func MeanAbsoluteError(x, y []float64) float64 {
	n := min(len(x), len(y))
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(x[i] - y[i])
	}
	return sum / float64(n)
}
