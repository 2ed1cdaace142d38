package quantile

import "math"

// Type7 generalizes the Hyndman-Fan type 7 estimator (linear interpolation
// between order statistics) to fractional ranks.
type Type7 struct{}

func (t *Type7) Name() string {
	return Type7Name
}

func (t *Type7) Estimate(sorted *Sorted, p float64) float64 {
	if p <= 0 {
		return sorted.Min()
	}
	if p >= 1 {
		return sorted.Max()
	}

	n := sorted.EffectiveSize
	h := p*(n-1) + 1
	cdf := func(c float64) float64 {
		u := math.Max((h-1)/n, math.Min(h/n, c))
		return u*n - h + 1
	}
	return kernelSum(sorted, cdf)
}

// kernelSum weights every value by the mass cdf puts between its cumulative
// probabilities. The mass below the first value counts as 0.
func kernelSum(sorted *Sorted, cdf func(float64) float64) float64 {
	var res float64
	for i, pair := range sorted.Pairs {
		w := cdf(sorted.CumProbs[i+1])
		if i > 0 {
			w -= cdf(sorted.CumProbs[i])
		}
		res += w * pair.Value
	}
	return res
}
