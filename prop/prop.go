// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package prop implements the property-correlation mechanism for liquid
// heavy metals: named empirical correlations with validity ranges, the
// registry grouping them per property, bounds (monotonicity) analysis and
// the numerical inversion of a correlation to recover a temperature.
//  References:
//   [1] OECD/NEA (2015) Handbook on Lead-bismuth Eutectic Alloy and Lead
//       Properties, Materials Compatibility, Thermal-hydraulics and
//       Technologies, NEA No. 7268
//   [2] Sobolev V (2011) Database of thermophysical properties of liquid
//       metal coolants for GEN-IV, SCK-CEN-BLG-1069
package prop

// Atm is the standard atmospheric pressure [Pa] adopted as the default
// pressure for property calculation.
const Atm = 101325.0

// DefaultCorrName tags correlations whose source is the handbook itself
// rather than a single publication.
const DefaultCorrName = "lbh15"

// Property defines one named correlation for one physical property of a
// liquid metal. Implementations must be immutable after construction and
// Correlation must be pure: no side effects, deterministic, well defined
// for every temperature inside the validity range. Outside the range the
// analytic expression is still evaluated; trusting it is the caller's
// business (see Eval).
type Property interface {
	Correlation(T, p float64) float64 // computes the property value at temperature T [K] and pressure p [Pa]
	Name() string                     // short property key, e.g. "rho"
	CorrelationName() string          // author/source tag, e.g. "sobolev2011"
	LongName() string                 // human readable property name
	Description() string              // property description
	Units() string                    // property units, e.g. "[kg/m^3]"
	Range() (Tlo, Thi float64)        // validity range [K], inclusive bounds
	Injective() bool                  // advisory hint; ComputeBounds gives the authoritative answer
}

// Data implements Property from plain data. All built-in correlations and
// most custom ones are Data values; dynamic dispatch only matters at the
// plugin boundary.
type Data struct {
	PropName string  // short property key, e.g. "rho"
	CorrName string  // source tag; DefaultCorrName when empty
	Long     string  // human readable name, e.g. "density"
	Descr    string  // description, e.g. "Liquid lead density"
	Unit     string  // units, e.g. "[kg/m^3]"
	Tlo, Thi float64 // validity range [K]
	NonInj   bool    // true if the correlation is known to be non-injective
	F        func(T, p float64) float64
}

// Correlation evaluates the correlation function
func (o *Data) Correlation(T, p float64) float64 { return o.F(T, p) }

// Name returns the short property key
func (o *Data) Name() string { return o.PropName }

// CorrelationName returns the author/source tag
func (o *Data) CorrelationName() string {
	if o.CorrName == "" {
		return DefaultCorrName
	}
	return o.CorrName
}

// LongName returns the human readable property name
func (o *Data) LongName() string { return o.Long }

// Description returns the property description
func (o *Data) Description() string { return o.Descr }

// Units returns the property units
func (o *Data) Units() string { return o.Unit }

// Range returns the validity range
func (o *Data) Range() (Tlo, Thi float64) { return o.Tlo, o.Thi }

// Injective tells whether the correlation is declared injective
func (o *Data) Injective() bool { return !o.NonInj }
