package sorting

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/weighted-stats/model"
)

func generate(n int, value func(i int) float64) []model.ValueWeight {
	pairs := make([]model.ValueWeight, n)
	for i := range pairs {
		pairs[i] = model.ValueWeight{Value: value(i), Weight: float64(i)}
	}
	return pairs
}

func requireSorted(t *testing.T, original, sorted []model.ValueWeight) {
	t.Helper()
	require.True(t, slices.IsSortedFunc(sorted, func(a, b model.ValueWeight) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		}
		return 0
	}), "not sorted: %v", sorted)

	// same pairs, weights travel with their values
	require.ElementsMatch(t, original, sorted)
}

func TestSelect(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	tests := []struct {
		name     string
		pairs    []model.ValueWeight
		expected Algorithm
	}{
		{"tiny", generate(10, func(i int) float64 { return r.Float64() }), Comparison},
		{"small integers", generate(50, func(i int) float64 { return float64(i % 7) }), Comparison},
		{"many integers in a small range", generate(500, func(i int) float64 { return float64(r.Intn(100)) }), Counting},
		{"integers in a wide range", generate(500, func(i int) float64 { return float64(r.Intn(100000)) }), Radix},
		{"constant integers", generate(500, func(i int) float64 { return 3 }), Radix},
		{"medium floats", generate(200, func(i int) float64 { return r.NormFloat64() }), Comparison},
		{"large floats", generate(1000, func(i int) float64 { return r.NormFloat64() }), Radix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Select(tt.pairs))
		})
	}
}

func TestSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	tests := []struct {
		name  string
		pairs []model.ValueWeight
	}{
		{"empty", nil},
		{"single", generate(1, func(i int) float64 { return 1 })},
		{"tiny", generate(20, func(i int) float64 { return r.Float64()*10 - 5 })},
		{"counting", generate(300, func(i int) float64 { return float64(r.Intn(50) - 25) })},
		{"radix mixed signs", generate(2000, func(i int) float64 { return r.NormFloat64() * 1e6 })},
		{"radix with zeros and infinities", generate(400, func(i int) float64 {
			switch i % 5 {
			case 0:
				return 0
			case 1:
				return math.Inf(1)
			case 2:
				return math.Inf(-1)
			}
			return r.Float64() - 0.5
		})},
		{"already sorted", generate(1000, func(i int) float64 { return float64(i) / 3 })},
		{"reversed", generate(1000, func(i int) float64 { return -float64(i) / 3 })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := slices.Clone(tt.pairs)
			Sort(tt.pairs)
			requireSorted(t, original, tt.pairs)
		})
	}
}

func TestAlgorithms(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	integers := generate(600, func(i int) float64 { return float64(r.Intn(400)) })
	floats := generate(600, func(i int) float64 { return r.ExpFloat64() - 1 })

	for name, sort := range map[string]func([]model.ValueWeight){
		"comparison": comparisonSort,
		"counting":   countingSort,
		"radix":      radixSort,
	} {
		for _, input := range [][]model.ValueWeight{integers, floats} {
			pairs := slices.Clone(input)
			sort(pairs)
			requireSorted(t, input, pairs)
		}
		t.Logf("%s ok", name)
	}
}

func TestCountingSort_FallsBackOnWideRange(t *testing.T) {
	pairs := generate(300, func(i int) float64 { return float64(i * 1000) })
	slices.Reverse(pairs)
	original := slices.Clone(pairs)

	countingSort(pairs)
	requireSorted(t, original, pairs)
}

func TestRadixKey(t *testing.T) {
	values := []float64{math.Inf(-1), -1e300, -2.5, -1, -math.SmallestNonzeroFloat64, 0,
		math.SmallestNonzeroFloat64, 1, 2.5, 1e300, math.Inf(1)}
	for i := 1; i < len(values); i++ {
		require.Less(t, radixKey(values[i-1]), radixKey(values[i]), "%v < %v", values[i-1], values[i])
	}
}

func TestAlgorithmString(t *testing.T) {
	require.Equal(t, "comparison", Comparison.String())
	require.Equal(t, "counting", Counting.String())
	require.Equal(t, "radix", Radix.String())
	require.Equal(t, "unknown", Algorithm(0).String())
}
