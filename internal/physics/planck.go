package physics

import "math"

// Physical constants (SI units, CODATA 2018).
const (
	PlanckH      = 6.62607015e-34 // Planck constant (J s)
	BoltzmannK   = 1.380649e-23   // Boltzmann constant (J/K)
	SpeedOfLight = 2.99792458e8   // speed of light (m/s)
)

// Planck returns the blackbody spectral radiance B_nu(T) for frequency
// nu in Hz and temperature T in Kelvin:
//
//	B = 2 h nu^3 / c^2 / (exp(h nu / (k T)) - 1)
//
// Callers must pass nu > 0; at nu = 0 the denominator vanishes. As T
// approaches zero the exponent overflows to +Inf and the result
// underflows to 0, the physically correct limit, so no guard is needed.
func Planck(nu, T float64) float64 {
	return (2 * PlanckH * nu * nu * nu / (SpeedOfLight * SpeedOfLight)) /
		(math.Exp(PlanckH*nu/(BoltzmannK*T)) - 1)
}
