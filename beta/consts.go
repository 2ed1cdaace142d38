package beta

const (
	// convergence threshold on |1 - c*d|
	Stop = 1.0e-8
	// floor keeping the Lentz recurrence away from division by zero
	Tiny = 1.0e-30

	MaxIterations = 200
)
