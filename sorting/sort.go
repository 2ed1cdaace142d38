package sorting

import (
	"cmp"
	"math"
	"slices"

	"github.com/uyouii/weighted-stats/model"
)

type Algorithm int

const (
	Comparison Algorithm = 1
	Counting   Algorithm = 2
	Radix      Algorithm = 3
)

func (a Algorithm) String() string {
	switch a {
	case Comparison:
		return "comparison"
	case Counting:
		return "counting"
	case Radix:
		return "radix"
	}
	return "unknown"
}

// Sort orders pairs by ascending value in place. The order of equal values is unspecified.
func Sort(pairs []model.ValueWeight) {
	switch Select(pairs) {
	case Comparison:
		comparisonSort(pairs)
	case Counting:
		countingSort(pairs)
	case Radix:
		radixSort(pairs)
	}
}

// Select picks the algorithm Sort uses for pairs from their count and value shape.
func Select(pairs []model.ValueWeight) Algorithm {
	n := len(pairs)
	if n < ComparisonMaxSize {
		return Comparison
	}

	shape := analyze(pairs)
	if shape.allIntegers && shape.valueRange > 0 && shape.valueRange <= CountingMaxRange &&
		n > CountingMinSize {
		return Counting
	}
	if n < RadixMinSize {
		return Comparison
	}
	return Radix
}

type valueShape struct {
	min         float64
	max         float64
	valueRange  float64
	allIntegers bool
}

func analyze(pairs []model.ValueWeight) valueShape {
	shape := valueShape{
		min:         pairs[0].Value,
		max:         pairs[0].Value,
		allIntegers: true,
	}
	for _, pair := range pairs {
		shape.min = math.Min(shape.min, pair.Value)
		shape.max = math.Max(shape.max, pair.Value)
		if pair.Value != math.Floor(pair.Value) {
			shape.allIntegers = false
		}
	}
	shape.valueRange = shape.max - shape.min
	return shape
}

func comparisonSort(pairs []model.ValueWeight) {
	slices.SortFunc(pairs, func(a, b model.ValueWeight) int {
		return cmp.Compare(a.Value, b.Value)
	})
}
