package sorting

const (
	// below this size a comparison sort wins
	ComparisonMaxSize = 32

	// counting sort needs integral values spread over at most CountingMaxRange
	CountingMinSize  = 100
	CountingMaxRange = 1000
	// the counting sort itself refuses wider ranges
	countingHardMaxRange = 10000

	RadixMinSize = 256

	radixBuckets = 256
	signBit      = uint64(1) << 63
)
