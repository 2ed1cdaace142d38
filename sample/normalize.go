package sample

import "github.com/uyouii/weighted-stats/model"

// Normalize drops pairs without positive weight and closes the probability mass.
//
// If the kept weights sum to less than ImplicitMassThreshold, a pair
// {0, 1 - sum} is appended and TotalWeight is exactly 1. A larger sum is
// left as is; it is never scaled down.
func Normalize(pairs []model.ValueWeight) *model.Sample {
	res := &model.Sample{
		Pairs: make([]model.ValueWeight, 0, len(pairs)+1),
	}

	for _, pair := range pairs {
		// NaN weights fail this test too
		if !(pair.Weight > 0) {
			continue
		}
		res.Pairs = append(res.Pairs, pair)
		res.RawWeight += pair.Weight
	}
	res.Observed = len(res.Pairs)
	res.TotalWeight = res.RawWeight

	if res.RawWeight < ImplicitMassThreshold {
		res.Pairs = append(res.Pairs, model.ValueWeight{
			Value:  0,
			Weight: ImplicitMassThreshold - res.RawWeight,
		})
		res.TotalWeight = ImplicitMassThreshold
		res.Implicit = true
	}

	return res
}
