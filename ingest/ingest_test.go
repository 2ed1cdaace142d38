package ingest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/weighted-stats/common"
	"github.com/uyouii/weighted-stats/model"
)

func TestStrict(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		weights []float64
		err     error
	}{
		{"valid", []float64{1, 2, 3}, []float64{0.1, 0, 0.3}, nil},
		{"empty", []float64{}, []float64{}, nil},
		{"length mismatch", []float64{1, 2}, []float64{0.1}, common.ErrorLengthMismatch},
		{"negative weight", []float64{1, 2}, []float64{0.1, -0.1}, common.ErrorNegativeWeight},
		{"NaN value", []float64{math.NaN(), 2}, []float64{0.1, 0.1}, common.ErrorNonFinite},
		{"infinite value", []float64{1, math.Inf(-1)}, []float64{0.1, 0.1}, common.ErrorNonFinite},
		{"infinite weight", []float64{1, 2}, []float64{math.Inf(1), 0.1}, common.ErrorNonFinite},
		{"NaN weight on zero value", []float64{0}, []float64{math.NaN()}, common.ErrorNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := Strict(tt.values, tt.weights)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Nil(t, pairs)
				return
			}
			require.NoError(t, err)
			require.Len(t, pairs, len(tt.values))
			for i, pair := range pairs {
				require.Equal(t, model.ValueWeight{Value: tt.values[i], Weight: tt.weights[i]}, pair)
			}
		})
	}
}

func TestStrict_InvalidValueCategory(t *testing.T) {
	_, err := Strict([]float64{1}, []float64{-1})
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = Strict([]float64{math.NaN()}, []float64{1})
	require.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = Strict([]float64{1}, []float64{})
	require.NotErrorIs(t, err, common.ErrorInvalidValue)
}

func TestLenient(t *testing.T) {
	pairs, err := Lenient([]float64{math.NaN(), 2}, []float64{-1, math.Inf(1)})
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	require.True(t, math.IsNaN(pairs[0].Value))
	require.Equal(t, -1.0, pairs[0].Weight)

	_, err = Lenient([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, common.ErrorLengthMismatch)
}

func TestNullable(t *testing.T) {
	one, two := 1.0, 2.0

	pairs, err := Nullable([]*float64{&one, nil}, []*float64{nil, &two})
	require.NoError(t, err)
	require.Equal(t, []model.ValueWeight{{Value: 1, Weight: 0}, {Value: 0, Weight: 2}}, pairs)

	_, err = Nullable([]*float64{&one}, nil)
	require.ErrorIs(t, err, common.ErrorLengthMismatch)
}

func TestProbabilities(t *testing.T) {
	ps := []float64{0, 0.5, 1}
	res, err := Probabilities(ps)
	require.NoError(t, err)
	require.Equal(t, ps, res)

	res[0] = 0.3
	require.Equal(t, 0.0, ps[0], "result must be a copy")

	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := Probabilities([]float64{0.5, p})
		require.ErrorIs(t, err, common.ErrorInvalidProbability, "p = %v", p)
	}
}

func TestNullableProbabilities(t *testing.T) {
	half, bad := 0.5, 2.0

	res, err := NullableProbabilities([]*float64{nil, &half})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.5}, res)

	_, err = NullableProbabilities([]*float64{&bad})
	require.ErrorIs(t, err, common.ErrorInvalidProbability)
}

func TestFill(t *testing.T) {
	require.Nil(t, Fill(nil))
	require.Equal(t, []float64{}, Fill([]*float64{}))

	x := 3.5
	require.Equal(t, []float64{0, 3.5}, Fill([]*float64{nil, &x}))
}
