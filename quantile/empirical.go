package quantile

import "sort"

// Empirical inverts the weighted empirical CDF, interpolating linearly
// between neighbouring values.
type Empirical struct{}

func (e *Empirical) Name() string {
	return EmpiricalName
}

func (e *Empirical) Estimate(sorted *Sorted, p float64) float64 {
	if p <= 0 {
		return sorted.Min()
	}
	if p >= 1 {
		return sorted.Max()
	}

	n := len(sorted.Pairs)
	target := p * sorted.TotalWeight
	pos := sort.Search(n, func(i int) bool {
		return sorted.Cumulative[i] >= target
	})
	// rounding can leave the last sum just below the target
	if pos == n {
		pos = n - 1
	}

	if pos == 0 || sorted.Cumulative[pos] == target {
		return sorted.Pairs[pos].Value
	}

	prevCumSum, curCumSum := sorted.Cumulative[pos-1], sorted.Cumulative[pos]
	lower, upper := sorted.Pairs[pos-1].Value, sorted.Pairs[pos].Value
	fraction := (target - prevCumSum) / (curCumSum - prevCumSum)
	return lower + fraction*(upper-lower)
}
