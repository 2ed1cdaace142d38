package ingest

import (
	"math"

	"github.com/pkg/errors"
	"github.com/uyouii/weighted-stats/common"
	"github.com/uyouii/weighted-stats/model"
)

// Strict copies values and weights into pairs for the mean and variance path.
// Every element is checked, zero weighted ones included.
func Strict(values []float64, weights []float64) ([]model.ValueWeight, error) {
	if err := checkLength(len(values), len(weights)); err != nil {
		return nil, err
	}

	for i := range values {
		if weights[i] < 0 {
			return nil, errors.Wrapf(common.ErrorNegativeWeight, "weights[%d] = %v", i, weights[i])
		}
		if !isFinite(values[i]) || !isFinite(weights[i]) {
			return nil, errors.Wrapf(common.ErrorNonFinite, "element %d: value %v, weight %v",
				i, values[i], weights[i])
		}
	}

	return pairs(values, weights), nil
}

// Lenient copies values and weights for the quantile path. Only the lengths are checked,
// bad weights are dropped later by the normalizer.
func Lenient(values []float64, weights []float64) ([]model.ValueWeight, error) {
	if err := checkLength(len(values), len(weights)); err != nil {
		return nil, err
	}
	return pairs(values, weights), nil
}

// Nullable is Lenient for inputs with missing elements, which count as 0.
func Nullable(values []*float64, weights []*float64) ([]model.ValueWeight, error) {
	if err := checkLength(len(values), len(weights)); err != nil {
		return nil, err
	}
	return Lenient(Fill(values), Fill(weights))
}

// Probabilities validates a whole probability vector before anything is computed.
func Probabilities(ps []float64) ([]float64, error) {
	res := make([]float64, len(ps))
	for i, p := range ps {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 || p > 1 {
			return nil, errors.Wrapf(common.ErrorInvalidProbability, "probabilities[%d] = %v", i, p)
		}
		res[i] = p
	}
	return res, nil
}

func NullableProbabilities(ps []*float64) ([]float64, error) {
	return Probabilities(Fill(ps))
}

func checkLength(valueCnt, weightCnt int) error {
	if valueCnt != weightCnt {
		return errors.Wrapf(common.ErrorLengthMismatch, "got %d values and %d weights", valueCnt, weightCnt)
	}
	return nil
}

func pairs(values []float64, weights []float64) []model.ValueWeight {
	res := make([]model.ValueWeight, len(values))
	for i := range values {
		res[i] = model.ValueWeight{Value: values[i], Weight: weights[i]}
	}
	return res
}

// Fill replaces missing elements with 0. A nil slice stays nil.
func Fill(xs []*float64) []float64 {
	if xs == nil {
		return nil
	}
	res := make([]float64, len(xs))
	for i, x := range xs {
		if x != nil {
			res[i] = *x
		}
	}
	return res
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
