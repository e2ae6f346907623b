// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"math"

	"github.com/newcleo-dev-team/lbh15/prop"
)

// Liquid lead characteristic constants [1]
const (
	leadTM0 = 600.6   // melting temperature [K]
	leadQM0 = 23.07e3 // melting latent heat [J/kg]
	leadTB0 = 2021.0  // boiling temperature [K]
	leadQB0 = 858.6e3 // vaporisation heat [J/kg]
	leadM   = 207.20  // molar mass [g/mol]
)

// gasR is the universal gas constant [J/(mol*K)]
const gasR = 8.314

// leadProps returns the built-in correlation set for liquid lead. The
// sobolev2011 specific heat is the handbook default; gurvich1991 is the
// alternative. Both are non-injective: cp has a minimum inside the
// validity range, so inversion needs a branch choice.
func leadProps() []prop.Property {

	// thermophysical correlation functions; rho and beta_s combine the
	// sound velocity, thermal expansion and specific heat expressions in
	// their pressure-dependent terms
	usF := func(T, p float64) float64 { return 1953 - 0.246*T }
	alphaF := func(T, p float64) float64 { return 1 / (8942 - T) }
	cpSobolevF := func(T, p float64) float64 {
		return 176.2 - T*(4.923e-2-1.544e-5*T) - 1.524e6/T/T
	}
	cpGurvichF := func(T, p float64) float64 {
		return 175.1 - T*(4.961e-2-T*(1.985e-5-2.099e-9*T)) - 1.524e6/T/T
	}
	rhoF := func(T, p float64) float64 {
		rho0 := 11441 - 1.2795*T
		us := usF(T, p)
		al := alphaF(T, p)
		return rho0 + (1.0/(us*us)+T*al*al/cpSobolevF(T, p))*(p-prop.Atm)
	}
	betaF := func(T, p float64) float64 {
		us := usF(T, p)
		return 1 / (rhoF(T, p) * us * us)
	}
	hF := func(T, p float64) float64 {
		return T*(176.2-T*(2.4615e-2-5.147e-6*T)) -
			leadTM0*(176.2-leadTM0*(2.4615e-2-5.147e-6*leadTM0)) +
			1.524e6*(1/T-1/leadTM0)
	}

	return []prop.Property{

		// thermophysical
		&prop.Data{PropName: "p_s", CorrName: "sobolev2011",
			Long: "saturation vapour pressure", Unit: "[Pa]",
			Descr: "Liquid lead saturation vapour pressure",
			Tlo:   leadTM0, Thi: leadTB0,
			F: func(T, p float64) float64 { return 5.76e9 * math.Exp(-22131/T) }},

		&prop.Data{PropName: "sigma", CorrName: "jauch1986",
			Long: "surface tension", Unit: "[N/m]",
			Descr: "Liquid lead surface tension",
			Tlo:   leadTM0, Thi: 1300.0,
			F: func(T, p float64) float64 { return (525.9 - 0.113*T) * 1e-3 }},

		&prop.Data{PropName: "rho", CorrName: "sobolev2008a",
			Long: "density", Unit: "[kg/m^3]",
			Descr: "Liquid lead density",
			Tlo:   leadTM0, Thi: leadTB0, F: rhoF},

		&prop.Data{PropName: "alpha", Long: "thermal expansion coefficient",
			Unit:  "[1/K]",
			Descr: "Liquid lead thermal expansion coefficient",
			Tlo:   leadTM0, Thi: leadTB0, F: alphaF},

		&prop.Data{PropName: "u_s", CorrName: "sobolev2011",
			Long: "sound velocity", Unit: "[m/s]",
			Descr: "Sound velocity in liquid lead",
			Tlo:   leadTM0, Thi: 2000.0, F: usF},

		&prop.Data{PropName: "beta_s", Long: "isentropic compressibility",
			Unit:  "[1/Pa]",
			Descr: "Liquid lead isentropic compressibility",
			Tlo:   leadTM0, Thi: 2000.0, F: betaF},

		&prop.Data{PropName: "cp", CorrName: "gurvich1991",
			Long: "specific heat capacity", Unit: "[J/(kg*K)]",
			Descr: "Liquid lead specific heat capacity",
			Tlo:   leadTM0, Thi: 2000.0, NonInj: true, F: cpGurvichF},

		&prop.Data{PropName: "cp", CorrName: "sobolev2011",
			Long: "specific heat capacity", Unit: "[J/(kg*K)]",
			Descr: "Liquid lead specific heat capacity",
			Tlo:   leadTM0, Thi: 2000.0, NonInj: true, F: cpSobolevF},

		&prop.Data{PropName: "h", CorrName: "sobolev2011",
			Long: "specific enthalpy", Unit: "[J/kg]",
			Descr: "Liquid lead specific enthalpy (as difference with respect to the melting point enthalpy)",
			Tlo:   leadTM0, Thi: 2000.0, F: hF},

		&prop.Data{PropName: "mu", Long: "dynamic viscosity", Unit: "[Pa*s]",
			Descr: "Liquid lead dynamic viscosity",
			Tlo:   leadTM0, Thi: 1473.0,
			F: func(T, p float64) float64 { return 4.55e-4 * math.Exp(1069/T) }},

		&prop.Data{PropName: "r", Long: "electrical resistivity",
			Unit:  "[Ohm*m]",
			Descr: "Liquid lead electrical resistivity",
			Tlo:   leadTM0, Thi: 1273.0,
			F: func(T, p float64) float64 { return (67.0 + 0.0471*T) * 1e-8 }},

		&prop.Data{PropName: "k", Long: "thermal conductivity",
			Unit:  "[W/(m*K)]",
			Descr: "Liquid lead thermal conductivity",
			Tlo:   leadTM0, Thi: 1300.0,
			F: func(T, p float64) float64 { return 9.2 + 0.011*T }},

		// thermochemical
		&prop.Data{PropName: "fe_sol", CorrName: "gosse2014",
			Long: "iron solubility", Unit: "[wt.%]",
			Descr: "Iron solubility in liquid lead",
			Tlo:   600.0, Thi: 1173.0,
			F: func(T, p float64) float64 { return math.Pow(10, 2.11-5225/T) }},

		&prop.Data{PropName: "cr_sol", CorrName: "alden1958",
			Long: "chromium solubility", Unit: "[wt.%]",
			Descr: "Chromium solubility in liquid lead",
			Tlo:   1181.0, Thi: 1483.0,
			F: func(T, p float64) float64 { return math.Pow(10, 3.74-6750/T) }},

		&prop.Data{PropName: "cr_sol", CorrName: "venkatraman1988",
			Long: "chromium solubility", Unit: "[wt.%]",
			Descr: "Chromium solubility in liquid lead",
			Tlo:   1173.0, Thi: 1473.0,
			F: func(T, p float64) float64 { return math.Pow(10, 3.7-6720/T) }},

		&prop.Data{PropName: "cr_sol", CorrName: "gosse2014",
			Long: "chromium solubility", Unit: "[wt.%]",
			Descr: "Chromium solubility in liquid lead",
			Tlo:   601.0, Thi: 1773.0,
			F: func(T, p float64) float64 { return math.Pow(10, 3.62-6648/T) }},

		&prop.Data{PropName: "o_sol", Long: "oxygen solubility",
			Unit:  "[wt.%]",
			Descr: "Oxygen solubility in liquid lead",
			Tlo:   673.0, Thi: 1373.0,
			F: func(T, p float64) float64 { return math.Pow(10, 3.23-5043/T) }},

		&prop.Data{PropName: "o_dif", CorrName: "arcella1968",
			Long: "oxygen diffusivity", Unit: "[cm^2/s]",
			Descr: "Oxygen diffusivity in liquid lead",
			Tlo:   973.0, Thi: 1173.0,
			F: func(T, p float64) float64 { return 6.32e-5 * math.Exp(-14979/(gasR*T)) }},

		&prop.Data{PropName: "o_dif", CorrName: "swzarc1972",
			Long: "oxygen diffusivity", Unit: "[cm^2/s]",
			Descr: "Oxygen diffusivity in liquid lead",
			Tlo:   1013.0, Thi: 1353.0,
			F: func(T, p float64) float64 { return 1.44e-3 * math.Exp(-25942/(gasR*T)) }},
	}
}
