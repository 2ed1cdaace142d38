package sample

const (
	// samples lighter than this get an implicit zero carrying the rest of the mass
	ImplicitMassThreshold = 1.0
)
