// Package physics provides the closed-form emission laws of the
// spectrum model:
//
//   - [Planck]: blackbody spectral radiance (Planck law)
//   - [Synchrotron]: power-law galactic synchrotron emission
//   - [Dust]: modified-blackbody thermal dust emission
//
// All functions are pure and work in SI units: frequencies in Hz,
// temperatures in Kelvin, radiance in W m^-2 Hz^-1 sr^-1.
package physics
