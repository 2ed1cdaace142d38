package stats

const (
	DefaultDdof   = 0
	DefaultMethod = "empirical"
)

var (
	DefaultDescribeQuantiles = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.99}
)
