// Package stats exposes weighted statistics over sparse samples, where
// weights summing to less than 1 leave the remaining mass on an implicit 0.
//
// Mean, variance and standard deviation reject negative weights and non
// finite inputs. The quantile functions accept any input and ignore pairs
// without positive weight.
package stats

import (
	"github.com/pkg/errors"
	"github.com/uyouii/weighted-stats/common"
	"github.com/uyouii/weighted-stats/ingest"
	"github.com/uyouii/weighted-stats/model"
	"github.com/uyouii/weighted-stats/moment"
	"github.com/uyouii/weighted-stats/quantile"
	"github.com/uyouii/weighted-stats/sample"
)

// WeightedMean returns a null result for nil or empty input and for samples
// without any positive weight.
func WeightedMean(values []float64, weights []float64) (model.NullFloat, error) {
	s, ok, err := strictSample(values, weights)
	if err != nil || !ok {
		return model.Null(), err
	}
	return moment.Mean(s), nil
}

// WeightedVariance additionally returns a null result when the effective
// sample size is not above ddof.
func WeightedVariance(values []float64, weights []float64, ddof int) (model.NullFloat, error) {
	s, ok, err := momentSample(values, weights, ddof)
	if err != nil || !ok {
		return model.Null(), err
	}
	return moment.Variance(s, ddof), nil
}

func WeightedStd(values []float64, weights []float64, ddof int) (model.NullFloat, error) {
	s, ok, err := momentSample(values, weights, ddof)
	if err != nil || !ok {
		return model.Null(), err
	}
	return moment.Std(s, ddof), nil
}

// WeightedQuantile inverts the weighted empirical CDF at each probability.
func WeightedQuantile(values []float64, weights []float64, ps []float64) ([]float64, error) {
	return Quantiles(quantile.EmpiricalName, values, weights, ps)
}

// WQuantile is the weighted Hyndman-Fan type 7 quantile.
func WQuantile(values []float64, weights []float64, ps []float64) ([]float64, error) {
	return Quantiles(quantile.Type7Name, values, weights, ps)
}

// WHDQuantile is the weighted Harrell-Davis quantile. Probabilities it can't
// estimate give NaN in place.
func WHDQuantile(values []float64, weights []float64, ps []float64) ([]float64, error) {
	return Quantiles(quantile.HarrellDavisName, values, weights, ps)
}

func WeightedMedian(values []float64, weights []float64) (float64, error) {
	res, err := WeightedQuantile(values, weights, []float64{0.5})
	if err != nil {
		return 0, err
	}
	return res[0], nil
}

// Quantiles estimates every probability of ps with the named method. Nil
// values or weights, or both empty, give a zero per probability.
func Quantiles(method string, values []float64, weights []float64, ps []float64) ([]float64, error) {
	estimator, err := quantile.ByName(method)
	if err != nil {
		return nil, err
	}
	probs, err := ingest.Probabilities(ps)
	if err != nil {
		return nil, err
	}
	if missing(values, weights) {
		return make([]float64, len(probs)), nil
	}

	pairs, err := ingest.Lenient(values, weights)
	if err != nil {
		return nil, err
	}
	return estimate(estimator, pairs, probs), nil
}

// NullableQuantiles is Quantiles for inputs with missing elements, which
// count as 0.
func NullableQuantiles(method string, values []*float64, weights []*float64, ps []*float64) ([]float64, error) {
	estimator, err := quantile.ByName(method)
	if err != nil {
		return nil, err
	}
	probs, err := ingest.NullableProbabilities(ps)
	if err != nil {
		return nil, err
	}
	if missing(values, weights) {
		return make([]float64, len(probs)), nil
	}

	pairs, err := ingest.Nullable(values, weights)
	if err != nil {
		return nil, err
	}
	return estimate(estimator, pairs, probs), nil
}

func estimate(estimator quantile.Estimator, pairs []model.ValueWeight, probs []float64) []float64 {
	sorted := quantile.Prepare(sample.Normalize(pairs))
	return quantile.Evaluate(estimator, sorted, probs)
}

// missing reports a null sample. One empty array next to a non empty one is a
// length mismatch, not a null.
func missing[T any](values []T, weights []T) bool {
	return values == nil || weights == nil || (len(values) == 0 && len(weights) == 0)
}

func momentSample(values []float64, weights []float64, ddof int) (*model.Sample, bool, error) {
	if values == nil || weights == nil {
		return nil, false, nil
	}
	if ddof < 0 {
		return nil, false, errors.Wrapf(common.ErrorInvalidDdof, "ddof = %d", ddof)
	}
	return strictSample(values, weights)
}

// strictSample reports false for inputs that have no result without being wrong.
func strictSample(values []float64, weights []float64) (*model.Sample, bool, error) {
	if values == nil || weights == nil {
		return nil, false, nil
	}
	pairs, err := ingest.Strict(values, weights)
	if err != nil {
		return nil, false, err
	}

	s := sample.Normalize(pairs)
	if s.IsEmpty() {
		return nil, false, nil
	}
	return s, true, nil
}
