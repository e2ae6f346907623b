// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"math"

	"github.com/newcleo-dev-team/lbh15/prop"
)

// Lead-bismuth eutectic characteristic constants [1]
const (
	lbeTM0 = 398.0   // melting temperature [K]
	lbeQM0 = 38.6e3  // melting latent heat [J/kg]
	lbeTB0 = 1927.0  // boiling temperature [K]
	lbeQB0 = 856.6e3 // vaporisation heat [J/kg]
)

// lbeProps returns the built-in correlation set for the lead-bismuth
// eutectic. The sobolev2011 specific heat has a minimum near 1560 K,
// inside the validity range, hence it is non-injective.
func lbeProps() []prop.Property {

	usF := func(T, p float64) float64 { return 1855 - 0.212*T }
	alphaF := func(T, p float64) float64 { return 1 / (8558 - T) }
	cpF := func(T, p float64) float64 {
		return 164.8 - T*(3.94e-2-1.25e-5*T) - 4.56e5/T/T
	}
	rhoF := func(T, p float64) float64 {
		rho0 := 11065 - 1.293*T
		us := usF(T, p)
		al := alphaF(T, p)
		return rho0 + (1.0/(us*us)+T*al*al/cpF(T, p))*(p-prop.Atm)
	}
	betaF := func(T, p float64) float64 {
		us := usF(T, p)
		return 1 / (rhoF(T, p) * us * us)
	}
	hF := func(T, p float64) float64 {
		return T*(164.8-T*(1.97e-2-4.167e-6*T)) -
			lbeTM0*(164.8-lbeTM0*(1.97e-2-4.167e-6*lbeTM0)) +
			4.56e5*(1/T-1/lbeTM0)
	}

	return []prop.Property{

		// thermophysical
		&prop.Data{PropName: "p_s", CorrName: "sobolev2011",
			Long: "saturation vapour pressure", Unit: "[Pa]",
			Descr: "Liquid lbe saturation vapour pressure",
			Tlo:   lbeTM0, Thi: lbeTB0,
			F: func(T, p float64) float64 { return 1.22e10 * math.Exp(-22552/T) }},

		&prop.Data{PropName: "sigma", CorrName: "plevachuk2008",
			Long: "surface tension", Unit: "[N/m]",
			Descr: "Liquid lbe surface tension",
			Tlo:   lbeTM0, Thi: 1400.0,
			F: func(T, p float64) float64 { return (448.5 - 0.0799*T) * 1e-3 }},

		&prop.Data{PropName: "rho", CorrName: "sobolev2008a",
			Long: "density", Unit: "[kg/m^3]",
			Descr: "Liquid lbe density",
			Tlo:   lbeTM0, Thi: lbeTB0, F: rhoF},

		&prop.Data{PropName: "alpha", Long: "thermal expansion coefficient",
			Unit:  "[1/K]",
			Descr: "Liquid lbe thermal expansion coefficient",
			Tlo:   lbeTM0, Thi: lbeTB0, F: alphaF},

		&prop.Data{PropName: "u_s", CorrName: "sobolev2011",
			Long: "sound velocity", Unit: "[m/s]",
			Descr: "Sound velocity in liquid lbe",
			Tlo:   400.0, Thi: 1100.0, F: usF},

		&prop.Data{PropName: "beta_s", Long: "isentropic compressibility",
			Unit:  "[1/Pa]",
			Descr: "Liquid lbe isentropic compressibility",
			Tlo:   400.0, Thi: 1100.0, F: betaF},

		&prop.Data{PropName: "cp", CorrName: "sobolev2011",
			Long: "specific heat capacity", Unit: "[J/(kg*K)]",
			Descr: "Liquid lbe specific heat capacity",
			Tlo:   400.0, Thi: lbeTB0, NonInj: true, F: cpF},

		&prop.Data{PropName: "h", CorrName: "sobolev2011",
			Long: "specific enthalpy", Unit: "[J/kg]",
			Descr: "Liquid lbe specific enthalpy (as difference with respect to the melting point enthalpy)",
			Tlo:   400.0, Thi: lbeTB0, F: hF},

		&prop.Data{PropName: "mu", Long: "dynamic viscosity", Unit: "[Pa*s]",
			Descr: "Liquid lbe dynamic viscosity",
			Tlo:   lbeTM0, Thi: 1300.0,
			F: func(T, p float64) float64 { return 4.94e-4 * math.Exp(754.1/T) }},

		&prop.Data{PropName: "r", Long: "electrical resistivity",
			Unit:  "[Ohm*m]",
			Descr: "Liquid lbe electrical resistivity",
			Tlo:   400.0, Thi: 1100.0,
			F: func(T, p float64) float64 { return (90.9 + 0.048*T) * 1e-8 }},

		&prop.Data{PropName: "k", CorrName: "sobolev2011",
			Long: "thermal conductivity", Unit: "[W/(m*K)]",
			Descr: "Liquid lbe thermal conductivity",
			Tlo:   lbeTM0, Thi: 1200.0,
			F: func(T, p float64) float64 { return 3.284 + T*(1.617e-2-2.305e-6*T) }},

		// thermochemical
		&prop.Data{PropName: "fe_sol", CorrName: "weeks1969",
			Long: "iron solubility", Unit: "[wt.%]",
			Descr: "Iron solubility in liquid lbe",
			Tlo:   823.0, Thi: 1053.0,
			F: func(T, p float64) float64 { return math.Pow(10, 1.85-4164/T) }},

		&prop.Data{PropName: "fe_sol", CorrName: "gosse2014",
			Long: "iron solubility", Unit: "[wt.%]",
			Descr: "Iron solubility in liquid lbe",
			Tlo:   399.0, Thi: 1173.0,
			F: func(T, p float64) float64 { return math.Pow(10, 2.00-4399/T) }},

		&prop.Data{PropName: "o_sol", Long: "oxygen solubility",
			Unit:  "[wt.%]",
			Descr: "Oxygen solubility in liquid lbe",
			Tlo:   673.0, Thi: 1013.0,
			F: func(T, p float64) float64 { return math.Pow(10, 2.25-4125/T) }},
	}
}
