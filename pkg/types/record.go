// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math"

// OrbitalRecord holds the orbital elements and catalog annotations for one
// Trans-Neptunian Object. Records are immutable once loaded.
//
// Distances are in AU, angles in degrees. The loader guarantees that no
// numeric field is NaN; the orbital geometry itself (q <= a <= ad) is not
// validated.
type OrbitalRecord struct {
	// Name is the object designation (e.g. "2012 VP113").
	Name string `json:"name" yaml:"name"`

	// A is the semi-major axis.
	A float64 `json:"a" yaml:"a"`

	// E is the eccentricity.
	E float64 `json:"e" yaml:"e"`

	// I is the inclination.
	I float64 `json:"i" yaml:"i"`

	// Q is the perihelion distance.
	Q float64 `json:"q" yaml:"q"`

	// AD is the aphelion distance.
	AD float64 `json:"ad" yaml:"ad"`

	// Period is the orbital period in years.
	Period float64 `json:"period" yaml:"period"`

	// AscendingNode is the longitude of the ascending node (Ω).
	AscendingNode float64 `json:"omega" yaml:"omega"`

	// ArgOfPerihelion is the argument of perihelion (ω).
	ArgOfPerihelion float64 `json:"w" yaml:"w"`

	AbsoluteMagnitude    float64 `json:"absolute_magnitude" yaml:"absolute_magnitude"`
	PerturbationStrength float64 `json:"perturbation_strength" yaml:"perturbation_strength"`

	// ApsidalPrecession and NodalPrecession are catalog rates in degrees
	// per orbital period.
	ApsidalPrecession float64 `json:"apsidal_precession" yaml:"apsidal_precession"`
	NodalPrecession   float64 `json:"nodal_precession" yaml:"nodal_precession"`

	// CatalogResonance is the resonance strength column as published in the
	// catalog. The derived value lives on KozaiCandidate.
	CatalogResonance float64 `json:"catalog_resonance_strength" yaml:"catalog_resonance_strength"`

	PerturbationType string `json:"perturbation_type" yaml:"perturbation_type"`

	// Distant is the catalog's distant-object flag.
	Distant bool `json:"distant_flag" yaml:"distant_flag"`

	Classification string `json:"classification" yaml:"classification"`
}

// LongitudeOfPerihelion returns ϖ = Ω + ω normalized to [0, 360).
func (r OrbitalRecord) LongitudeOfPerihelion() float64 {
	return NormalizeDegrees(r.AscendingNode + r.ArgOfPerihelion)
}

// NormalizeDegrees maps an angle to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		return 0
	}
	return deg
}
