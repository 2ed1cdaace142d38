package quantile

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/weighted-stats/common"
	"github.com/uyouii/weighted-stats/model"
	"github.com/uyouii/weighted-stats/sample"
	"github.com/uyouii/weighted-stats/sorting"
)

// Estimator computes one quantile of a prepared sample.
type Estimator interface {
	Name() string
	Estimate(sorted *Sorted, p float64) float64
}

// Sorted is a normalized sample ordered by value, with the cumulative
// distributions every estimator reads.
type Sorted struct {
	Pairs       []model.ValueWeight
	TotalWeight float64

	// Cumulative[i] is the weight of Pairs[0..i]
	Cumulative []float64
	// CumProbs has len(Pairs)+1 entries, CumProbs[i] is the probability below Pairs[i]
	CumProbs []float64
	// Kish's effective sample size
	EffectiveSize float64
}

// Prepare sorts a copy of s's pairs and builds the cumulative distributions.
func Prepare(s *model.Sample) *Sorted {
	pairs := make([]model.ValueWeight, len(s.Pairs))
	copy(pairs, s.Pairs)
	sorting.Sort(pairs)

	return &Sorted{
		Pairs:         pairs,
		TotalWeight:   s.TotalWeight,
		Cumulative:    sample.Cumulative(pairs, s.TotalWeight),
		CumProbs:      sample.CumulativeProbs(pairs, s.TotalWeight),
		EffectiveSize: sample.EffectiveSize(pairs, s.TotalWeight),
	}
}

func (s *Sorted) Min() float64 {
	return s.Pairs[0].Value
}

func (s *Sorted) Max() float64 {
	return s.Pairs[len(s.Pairs)-1].Value
}

// Evaluate estimates every probability of ps, in the same order.
func Evaluate(estimator Estimator, sorted *Sorted, ps []float64) []float64 {
	res := make([]float64, len(ps))
	for i, p := range ps {
		res[i] = estimator.Estimate(sorted, p)
	}
	return res
}

var (
	empirical    = &Empirical{}
	type7        = &Type7{}
	harrellDavis = &HarrellDavis{}
)

// All returns one estimator of each kind.
func All() []Estimator {
	return []Estimator{empirical, type7, harrellDavis}
}

// ByName accepts the estimator names and their SQL function names.
func ByName(name string) (Estimator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case EmpiricalName, "weighted_quantile", "ecdf":
		return empirical, nil
	case Type7Name, "wquantile", "type-7", "hyndman-fan":
		return type7, nil
	case HarrellDavisName, "hd", "whdquantile", "harrelldavis":
		return harrellDavis, nil
	}
	return nil, errors.Wrapf(common.ErrorUnknownMethod, "%q", name)
}
