package sample

import (
	"math"

	"github.com/uyouii/weighted-stats/model"
)

// Cumulative returns the running weight sums of pairs, C[i] = w[0] + ... + w[i].
// The last sum is exactly total, pairs being a closed sample whose weights add
// up to total.
func Cumulative(pairs []model.ValueWeight, total float64) []float64 {
	res := make([]float64, len(pairs))
	var cumSum float64
	for i, pair := range pairs {
		cumSum += pair.Weight
		res[i] = math.Min(cumSum, total)
	}
	if len(res) > 0 {
		res[len(res)-1] = total
	}
	return res
}

// CumulativeProbs returns len(pairs)+1 running sums of the weights divided by
// total, starting at 0 and ending exactly at 1.
func CumulativeProbs(pairs []model.ValueWeight, total float64) []float64 {
	res := make([]float64, len(pairs)+1)
	for i, pair := range pairs {
		res[i+1] = math.Min(res[i]+pair.Weight/total, 1)
	}
	if len(pairs) > 0 {
		res[len(pairs)] = 1
	}
	return res
}

// EffectiveSize is Kish's effective sample size 1 / sum((w/total)^2).
func EffectiveSize(pairs []model.ValueWeight, total float64) float64 {
	var sumSq float64
	for _, pair := range pairs {
		w := pair.Weight / total
		sumSq += w * w
	}
	return 1 / sumSq
}
