// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import "math"

// Test fixtures shared by the package tests. They mirror real handbook
// correlations so the numerical behaviour under test is the one the
// library sees in production.

// testLinear returns an increasing linear correlation (lead thermal
// conductivity shape)
func testLinear() *Data {
	return &Data{
		PropName: "k",
		CorrName: "linear",
		Long:     "thermal conductivity",
		Descr:    "test thermal conductivity",
		Unit:     "[W/(m*K)]",
		Tlo:      600.0, Thi: 1300.0,
		F: func(T, p float64) float64 { return 9.2 + 0.011*T },
	}
}

// testExpDecreasing returns a decreasing correlation (dynamic viscosity
// shape)
func testExpDecreasing() *Data {
	return &Data{
		PropName: "mu",
		CorrName: "arrhenius",
		Long:     "dynamic viscosity",
		Descr:    "test dynamic viscosity",
		Unit:     "[Pa*s]",
		Tlo:      600.6, Thi: 1473.0,
		F: func(T, p float64) float64 { return 4.55e-4 * math.Exp(1069/T) },
	}
}

// testCp returns a non-monotone correlation with one interior minimum
// near 1568 K (lead specific heat, sobolev2011)
func testCp() *Data {
	return &Data{
		PropName: "cp",
		CorrName: "sobolev2011",
		Long:     "specific heat capacity",
		Descr:    "test specific heat capacity",
		Unit:     "[J/(kg*K)]",
		Tlo:      600.6, Thi: 2000.0,
		NonInj:   true,
		F: func(T, p float64) float64 {
			return 176.2 - T*(4.923e-2-1.544e-5*T) - 1.524e6/T/T
		},
	}
}

// captureWarnings redirects Warn into a slice; the returned restore
// function must be deferred
func captureWarnings() (msgs *[]string, restore func()) {
	var captured []string
	old := Warn
	Warn = func(m string) { captured = append(captured, m) }
	return &captured, func() { Warn = old }
}
