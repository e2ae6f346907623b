// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"math"

	"github.com/newcleo-dev-team/lbh15/prop"
)

// Liquid bismuth characteristic constants [1]
const (
	bismuthTM0 = 544.6   // melting temperature [K]
	bismuthQM0 = 53.3e3  // melting latent heat [J/kg]
	bismuthTB0 = 1831.0  // boiling temperature [K]
	bismuthQB0 = 856.2e3 // vaporisation heat [J/kg]
	bismuthM   = 208.98  // molar mass [g/mol]
)

// bismuthProps returns the built-in correlation set for liquid bismuth.
// The imbeni1998 specific heat has a minimum near 1342 K, inside the
// validity range, hence it is non-injective.
func bismuthProps() []prop.Property {

	usF := func(T, p float64) float64 { return 1616 + T*(0.187-2.2e-4*T) }
	alphaF := func(T, p float64) float64 { return 1 / (8791 - T) }
	cpF := func(T, p float64) float64 {
		return 118.2 + 5.934e-3*T + 7.183e6/T/T
	}
	rhoF := func(T, p float64) float64 {
		rho0 := 10725 - 1.22*T
		us := usF(T, p)
		al := alphaF(T, p)
		return rho0 + (1.0/(us*us)+T*al*al/cpF(T, p))*(p-prop.Atm)
	}
	betaF := func(T, p float64) float64 {
		us := usF(T, p)
		return 1 / (rhoF(T, p) * us * us)
	}
	hF := func(T, p float64) float64 {
		return T*(118.2+2.967e-3*T) -
			bismuthTM0*(118.2+2.967e-3*bismuthTM0) -
			7.183e6*(1/T-1/bismuthTM0)
	}

	return []prop.Property{

		// thermophysical
		&prop.Data{PropName: "p_s", CorrName: "sobolev2011",
			Long: "saturation vapour pressure", Unit: "[Pa]",
			Descr: "Liquid bismuth saturation vapour pressure",
			Tlo:   bismuthTM0, Thi: bismuthTB0,
			F: func(T, p float64) float64 { return 2.67e10 * math.Exp(-22858/T) }},

		&prop.Data{PropName: "sigma", CorrName: "sobolev2011",
			Long: "surface tension", Unit: "[N/m]",
			Descr: "Liquid bismuth surface tension",
			Tlo:   bismuthTM0, Thi: 1400.0,
			F: func(T, p float64) float64 { return (420.8 - 0.081*T) * 1e-3 }},

		&prop.Data{PropName: "rho", CorrName: "imbeni1998",
			Long: "density", Unit: "[kg/m^3]",
			Descr: "Liquid bismuth density",
			Tlo:   bismuthTM0, Thi: bismuthTB0, F: rhoF},

		&prop.Data{PropName: "alpha", Long: "thermal expansion coefficient",
			Unit:  "[1/K]",
			Descr: "Liquid bismuth thermal expansion coefficient",
			Tlo:   bismuthTM0, Thi: bismuthTB0, F: alphaF},

		&prop.Data{PropName: "u_s", CorrName: "sobolev2011",
			Long: "sound velocity", Unit: "[m/s]",
			Descr: "Sound velocity in liquid bismuth",
			Tlo:   bismuthTM0, Thi: 1800.0, F: usF},

		&prop.Data{PropName: "beta_s", Long: "isentropic compressibility",
			Unit:  "[1/Pa]",
			Descr: "Liquid bismuth isentropic compressibility",
			Tlo:   bismuthTM0, Thi: 1800.0, F: betaF},

		&prop.Data{PropName: "cp", CorrName: "imbeni1998",
			Long: "specific heat capacity", Unit: "[J/(kg*K)]",
			Descr: "Liquid bismuth specific heat capacity",
			Tlo:   bismuthTM0, Thi: bismuthTB0, NonInj: true, F: cpF},

		&prop.Data{PropName: "h", CorrName: "sobolev2011",
			Long: "specific enthalpy", Unit: "[J/kg]",
			Descr: "Liquid bismuth specific enthalpy (as difference with respect to the melting point enthalpy)",
			Tlo:   bismuthTM0, Thi: bismuthTB0, F: hF},

		&prop.Data{PropName: "mu", CorrName: "lucas1984b",
			Long: "dynamic viscosity", Unit: "[Pa*s]",
			Descr: "Liquid bismuth dynamic viscosity",
			Tlo:   bismuthTM0, Thi: 1300.0,
			F: func(T, p float64) float64 { return 4.456e-4 * math.Exp(780/T) }},

		&prop.Data{PropName: "r", Long: "electrical resistivity",
			Unit:  "[Ohm*m]",
			Descr: "Liquid bismuth electrical resistivity",
			Tlo:   545.0, Thi: 1423.0,
			F: func(T, p float64) float64 { return (98.96 + 0.0554*T) * 1e-8 }},

		&prop.Data{PropName: "k", CorrName: "touloukian1970b",
			Long: "thermal conductivity", Unit: "[W/(m*K)]",
			Descr: "Liquid bismuth thermal conductivity",
			Tlo:   bismuthTM0, Thi: 1000.0,
			F: func(T, p float64) float64 { return 7.34 + 9.5e-3*T }},

		// thermochemical
		&prop.Data{PropName: "fe_sol", CorrName: "weeks1998",
			Long: "iron solubility", Unit: "[wt.%]",
			Descr: "Iron solubility in liquid bismuth",
			Tlo:   713.0, Thi: 998.0,
			F: func(T, p float64) float64 { return math.Pow(10, 1.832-3589/T) }},

		&prop.Data{PropName: "fe_sol", CorrName: "massalski1990",
			Long: "iron solubility", Unit: "[wt.%]",
			Descr: "Iron solubility in liquid bismuth",
			Tlo:   973.0, Thi: 1173.0,
			F: func(T, p float64) float64 { return math.Pow(10, 2.18-3980/T) }},

		&prop.Data{PropName: "fe_sol", CorrName: "gosse2014",
			Long: "iron solubility", Unit: "[wt.%]",
			Descr: "Iron solubility in liquid bismuth",
			Tlo:   545.0, Thi: 1173.0,
			F: func(T, p float64) float64 { return math.Pow(10, 2.20-3930/T) }},

		&prop.Data{PropName: "o_sol", Long: "oxygen solubility",
			Unit:  "[wt.%]",
			Descr: "Oxygen solubility in liquid bismuth",
			Tlo:   573.0, Thi: 1573.0,
			F: func(T, p float64) float64 {
				if T <= 1002 {
					return math.Pow(10, 2.30-4066/T)
				}
				return math.Pow(10, 3.04-4810/T)
			}},
	}
}
