package quantile

const (
	EmpiricalName    = "empirical"
	Type7Name        = "type7"
	HarrellDavisName = "harrell-davis"

	HarrellDavisMinSize = 2
)
