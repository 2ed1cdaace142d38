package beta

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// CDF returns the regularized incomplete beta function Iₓ(a, b), the CDF of
// Beta(a, b) at x.
//
// It is 0 for x <= 0 and 1 for x >= 1. It returns NaN when a or b is not
// positive, and when the continued fraction does not converge within
// MaxIterations terms.
func CDF(x, a, b float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if !(a > 0) || !(b > 0) {
		return math.NaN()
	}

	// The continued fraction converges quickly only below the mean region.
	if x > (a+1)/(a+b+2) {
		return 1 - CDF(1-x, b, a)
	}

	front := math.Exp(math.Log(x)*a+math.Log(1-x)*b-mathext.Lbeta(a, b)) / a
	f, ok := continuedFraction(x, a, b)
	if !ok {
		return math.NaN()
	}
	return front * (f - 1)
}

// continuedFraction evaluates
//
//	1/(1+d₁/(1+d₂/(1+...)))
//
// with Lentz's method, where
//
//	d_{2m+1} = -(a+m)(a+b+m)x/((a+2m)(a+2m+1))
//	d_{2m}   = m(b-m)x/((a+2m-1)(a+2m))
//
// The result includes the leading term 1, so callers subtract it.
func continuedFraction(x, a, b float64) (float64, bool) {
	f, c, d := 1.0, 1.0, 0.0

	for i := 0; i <= MaxIterations; i++ {
		m := float64(i / 2)

		var numerator float64
		switch {
		case i == 0:
			numerator = 1
		case i%2 == 0:
			numerator = (m * (b - m) * x) / ((a + 2*m - 1) * (a + 2*m))
		default:
			numerator = -((a + m) * (a + b + m) * x) / ((a + 2*m) * (a + 2*m + 1))
		}

		d = 1 / raiseTiny(1+numerator*d)
		c = raiseTiny(1 + numerator/c)

		cd := c * d
		f *= cd

		if math.Abs(1-cd) < Stop {
			return f, true
		}
	}
	return math.NaN(), false
}

func raiseTiny(z float64) float64 {
	if math.Abs(z) < Tiny {
		return Tiny
	}
	return z
}
