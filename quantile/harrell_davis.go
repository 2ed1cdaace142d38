package quantile

import (
	"math"

	"github.com/uyouii/weighted-stats/beta"
)

// HarrellDavis averages every value with weights from a Beta((n+1)p, (n+1)(1-p))
// kernel, n being the effective sample size.
//
// Unlike the other estimators it has no answer at the boundaries: p <= 0,
// p >= 1, an effective size of at most 1 or fewer than 2 values give NaN.
type HarrellDavis struct{}

func (hd *HarrellDavis) Name() string {
	return HarrellDavisName
}

func (hd *HarrellDavis) Estimate(sorted *Sorted, p float64) float64 {
	n := sorted.EffectiveSize
	a := (n + 1) * p
	b := (n + 1) * (1 - p)

	if p <= 0 || p >= 1 || n <= 1 || len(sorted.Pairs) < HarrellDavisMinSize || a <= 0 || b <= 0 {
		return math.NaN()
	}

	return kernelSum(sorted, func(c float64) float64 {
		return beta.CDF(c, a, b)
	})
}
