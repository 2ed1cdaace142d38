package moment

import (
	"math"

	"github.com/uyouii/weighted-stats/model"
)

// Mean returns sum(w*v) / s.TotalWeight. The implicit zero adds nothing to the
// numerator but its weight is part of the total.
func Mean(s *model.Sample) model.NullFloat {
	if s.IsEmpty() || s.TotalWeight == 0 {
		return model.Null()
	}
	return model.Float(weightedSum(s) / s.TotalWeight)
}

// Variance returns the weighted variance around Mean. ddof 0 gives the
// population variance; a positive ddof corrects with Kish's effective size
// and has no result once that size is not above ddof.
func Variance(s *model.Sample, ddof int) model.NullFloat {
	if s.IsEmpty() || s.TotalWeight == 0 || ddof < 0 {
		return model.Null()
	}

	mean := weightedSum(s) / s.TotalWeight

	var sumSqDev float64
	for _, pair := range s.Pairs {
		deviation := pair.Value - mean
		sumSqDev += pair.Weight * deviation * deviation
	}

	if ddof == 0 {
		return model.Float(sumSqDev / s.TotalWeight)
	}

	nEff := EffectiveSize(s)
	if nEff <= float64(ddof) {
		return model.Null()
	}
	return model.Float(sumSqDev / s.TotalWeight * nEff / (nEff - float64(ddof)))
}

// Std is the square root of Variance.
func Std(s *model.Sample, ddof int) model.NullFloat {
	variance := Variance(s, ddof)
	if !variance.Valid {
		return variance
	}
	return model.Float(math.Sqrt(variance.Value))
}

// EffectiveSize is Kish's total^2 / sum(w^2) over the raw, unnormalized weights.
func EffectiveSize(s *model.Sample) float64 {
	var sumSq float64
	for _, pair := range s.Pairs {
		sumSq += pair.Weight * pair.Weight
	}
	return s.TotalWeight * s.TotalWeight / sumSq
}

func weightedSum(s *model.Sample) float64 {
	var sum float64
	for _, pair := range s.Pairs {
		sum += pair.Value * pair.Weight
	}
	return sum
}
