package sorting

import (
	"math"

	"github.com/uyouii/weighted-stats/model"
)

// countingSort buckets integral values by value - min. It falls back to
// radixSort when the values turn out not to fit.
func countingSort(pairs []model.ValueWeight) {
	n := len(pairs)
	if n <= 1 {
		return
	}

	shape := analyze(pairs)
	if !shape.allIntegers || shape.valueRange <= 0 || shape.valueRange > countingHardMaxRange ||
		shape.valueRange != math.Floor(shape.valueRange) {
		radixSort(pairs)
		return
	}

	bucketCnt := int(shape.valueRange) + 1
	count := make([]int, bucketCnt)
	buckets := make([]int, n)
	for i, pair := range pairs {
		bucket := int(pair.Value - shape.min)
		if bucket < 0 || bucket >= bucketCnt {
			radixSort(pairs)
			return
		}
		buckets[i] = bucket
		count[bucket]++
	}

	for i := 1; i < bucketCnt; i++ {
		count[i] += count[i-1]
	}

	temp := make([]model.ValueWeight, n)
	for i := n - 1; i >= 0; i-- {
		count[buckets[i]]--
		temp[count[buckets[i]]] = pairs[i]
	}
	copy(pairs, temp)
}
