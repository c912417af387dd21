package physics

import "math"

// Reference frequencies pinning the foreground power laws. Fixed by the
// model definition, not configurable.
const (
	SyncRefHz = 1e9  // synchrotron pivot, 1 GHz
	DustRefHz = 1e11 // dust pivot, 100 GHz
)

// Synchrotron returns the power-law synchrotron radiance
// amp * (nu / 1 GHz)^(-beta). Larger beta means steeper falloff, so the
// result is monotonically decreasing in nu for positive beta. At the
// pivot frequency the result is exactly amp.
func Synchrotron(nu, amp, beta float64) float64 {
	return amp * math.Pow(nu/SyncRefHz, -beta)
}

// Dust returns the modified-blackbody dust radiance
// amp * (nu / 100 GHz)^beta * B_nu(T), where B_nu is [Planck] evaluated
// at the dust temperature T.
func Dust(nu, amp, T, beta float64) float64 {
	return amp * math.Pow(nu/DustRefHz, beta) * Planck(nu, T)
}
