package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat rounds f to round decimal places; a negative round keeps f as is.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || round < 0 {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}

func FormatFloats(fs []float64, round int32) []float64 {
	res := make([]float64, len(fs))
	for i, f := range fs {
		res[i] = FormatFloat(f, round)
	}
	return res
}

func JoinFloats(fs []float64, sep string) string {
	strs := make([]string, len(fs))
	for i, f := range fs {
		strs[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(strs, sep)
}
