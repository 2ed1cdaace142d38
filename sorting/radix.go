package sorting

import (
	"math"

	"github.com/uyouii/weighted-stats/model"
)

// radixSort sorts by the IEEE 754 bits of the values, one byte per stable
// counting pass. Passes go from the lowest byte to the highest so the last
// pass decides the order.
func radixSort(pairs []model.ValueWeight) {
	n := len(pairs)
	if n <= 1 {
		return
	}
	if n < RadixMinSize {
		comparisonSort(pairs)
		return
	}

	keys := make([]uint64, n)
	for i, pair := range pairs {
		keys[i] = radixKey(pair.Value)
	}

	temp := make([]model.ValueWeight, n)
	tempKeys := make([]uint64, n)
	for shift := uint(0); shift < 64; shift += 8 {
		var count [radixBuckets]int
		for _, key := range keys {
			count[(key>>shift)&0xFF]++
		}
		// every key shares this byte, nothing to move
		if count[(keys[0]>>shift)&0xFF] == n {
			continue
		}

		for i := 1; i < radixBuckets; i++ {
			count[i] += count[i-1]
		}

		for i := n - 1; i >= 0; i-- {
			bucket := (keys[i] >> shift) & 0xFF
			count[bucket]--
			temp[count[bucket]] = pairs[i]
			tempKeys[count[bucket]] = keys[i]
		}
		copy(pairs, temp)
		copy(keys, tempKeys)
	}
}

// radixKey maps a float64 to a uint64 with the same ordering: negative values
// have all bits flipped, the others get the sign bit set.
func radixKey(value float64) uint64 {
	key := math.Float64bits(value)
	if key&signBit != 0 {
		return ^key
	}
	return key ^ signBit
}
