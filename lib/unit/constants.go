// Copyright 2026 The Dimetric Authors
// SPDX-License-Identifier: Apache-2.0

package unit

// Exact defined constants shared by the category tables. Imperial
// lengths and masses are the international definitions; derived
// factors (pound-force, foot-pound, slug) are computed from them so
// every table stays consistent with the same primitives.
const (
	metresPerFoot = 0.3048
	metresPerInch = 0.0254
	metresPerYard = 0.9144
	metresPerMile = 1609.344

	kilogramsPerPound = 0.45359237
	standardGravity   = 9.80665 // m/s², defined

	newtonsPerPoundForce = kilogramsPerPound * standardGravity
	joulesPerFootPound   = newtonsPerPoundForce * metresPerFoot
	joulesPerInchPound   = newtonsPerPoundForce * metresPerInch

	// Slug and slinch are the coherent masses of the foot and inch
	// systems: the mass accelerated at 1 ft/s² (respectively in/s²)
	// by one pound-force.
	kilogramsPerSlug   = newtonsPerPoundForce / metresPerFoot
	kilogramsPerSlinch = newtonsPerPoundForce / metresPerInch

	pascalsPerPoundPerSquareFoot = newtonsPerPoundForce / (metresPerFoot * metresPerFoot)
	pascalsPerPoundPerSquareInch = newtonsPerPoundForce / (metresPerInch * metresPerInch)

	joulesPerBritishThermalUnit = 1055.05585262 // International Table
	joulesPerCalorie            = 4.184         // thermochemical
	joulesPerElectronvolt       = 1.602176634e-19

	wattsPerHorsepower = 550.0 * joulesPerFootPound // mechanical

	kelvinsPerRankine = 1.0 / 1.8

	radiansPerDegree     = 3.14159265358979323846 / 180.0
	radiansPerRevolution = 2.0 * 3.14159265358979323846

	particlesPerMole = 6.02214076e23 // Avogadro, defined
)
