// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/newcleo-dev-team/lbh15/prop"
)

func verbose() {
	chk.Verbose = true
}

// captureWarnings redirects the out-of-range warning sink into a slice;
// the returned restore function must be deferred
func captureWarnings() (msgs *[]string, restore func()) {
	var captured []string
	old := prop.Warn
	prop.Warn = func(m string) { captured = append(captured, m) }
	return &captured, func() { prop.Warn = old }
}

func Test_lead01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead01. liquid lead at 668.15 K")

	lm, err := NewLead(668.15)
	if err != nil {
		tst.Fatalf("constructor failed: %v\n", err)
	}
	chk.Float64(tst, "T", 1e-15, lm.T(), 668.15)
	chk.Float64(tst, "p", 1e-15, lm.P(), prop.Atm)
	chk.Float64(tst, "TM0", 1e-15, lm.TM0(), 600.6)
	chk.Float64(tst, "TB0", 1e-15, lm.TB0(), 2021.0)
	chk.Float64(tst, "QM0", 1e-15, lm.QM0(), 23.07e3)
	chk.Float64(tst, "QB0", 1e-15, lm.QB0(), 858.6e3)
	chk.Float64(tst, "M", 1e-15, lm.M(), 207.20)

	// at atmospheric pressure the density pressure term vanishes
	rho, err := lm.Get("rho")
	if err != nil {
		tst.Fatalf("rho failed: %v\n", err)
	}
	chk.Float64(tst, "rho", 1e-9, rho, 11441-1.2795*668.15)

	k, err := lm.Get("k")
	if err != nil {
		tst.Fatalf("k failed: %v\n", err)
	}
	chk.Float64(tst, "k", 1e-12, k, 9.2+0.011*668.15)

	mu, err := lm.Get("mu")
	if err != nil {
		tst.Fatalf("mu failed: %v\n", err)
	}
	chk.Float64(tst, "mu", 1e-15, mu, 4.55e-4*math.Exp(1069/668.15))

	// Prandtl number for liquid lead near the melting point is about 0.02
	pr, err := lm.Pr()
	if err != nil {
		tst.Fatalf("Pr failed: %v\n", err)
	}
	cp, _ := lm.Get("cp")
	chk.Float64(tst, "Pr", 1e-15, pr, cp*mu/k)
	if pr < 0.01 || pr > 0.05 {
		tst.Errorf("Pr = %g out of the physical window\n", pr)
	}
}

func Test_lead02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead02. property information bundle")

	lm, err := NewLead(800.0)
	if err != nil {
		tst.Fatalf("constructor failed: %v\n", err)
	}

	// cp defaults to the handbook-preferred sobolev2011 correlation even
	// though gurvich1991 was registered after it
	info, err := lm.Info("cp")
	if err != nil {
		tst.Fatalf("info failed: %v\n", err)
	}
	if info.CorrelationName != "sobolev2011" {
		tst.Errorf("default cp correlation must be sobolev2011, got %q\n", info.CorrelationName)
	}
	chk.Float64(tst, "cp(800)", 1e-12, info.Value, 144.31635)
	chk.Float64(tst, "RangeLo", 1e-15, info.RangeLo, 600.6)
	chk.Float64(tst, "RangeHi", 1e-15, info.RangeHi, 2000.0)
	if info.Units != "[J/(kg*K)]" {
		tst.Errorf("wrong units: %q\n", info.Units)
	}
	if info.LongName != "specific heat capacity" {
		tst.Errorf("wrong long name: %q\n", info.LongName)
	}

	// correlations registered without a source tag report the library tag
	info, err = lm.Info("k")
	if err != nil {
		tst.Fatalf("info failed: %v\n", err)
	}
	if info.CorrelationName != prop.DefaultCorrName {
		tst.Errorf("untagged correlation must report %q, got %q\n",
			prop.DefaultCorrName, info.CorrelationName)
	}

	s := info.String()
	for _, part := range []string{"Value:", "Validity range:", "Correlation name:", "Units:"} {
		if !strings.Contains(s, part) {
			tst.Errorf("info string must contain %q\n", part)
		}
	}
}

func Test_lead03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead03. out-of-range access warns but still answers")

	msgs, restore := captureWarnings()
	defer restore()

	// 1500 K is liquid lead, but outside the viscosity validity range
	lm, err := NewLead(1500.0)
	if err != nil {
		tst.Fatalf("constructor failed: %v\n", err)
	}
	mu, err := lm.Get("mu")
	if err != nil {
		tst.Fatalf("mu failed: %v\n", err)
	}
	chk.Float64(tst, "mu", 1e-15, mu, 4.55e-4*math.Exp(1069/1500.0))
	if len(*msgs) != 1 {
		tst.Fatalf("one warning expected, got %d\n", len(*msgs))
	}
	if !strings.Contains((*msgs)[0], "dynamic viscosity") {
		tst.Errorf("warning must name the property: %q\n", (*msgs)[0])
	}

	if _, err := lm.Get("nosuch"); err == nil {
		tst.Errorf("unknown property must fail\n")
	}
}

func Test_lead04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lead04. thermochemical correlations")

	lm, err := NewLead(700.0)
	if err != nil {
		tst.Fatalf("constructor failed: %v\n", err)
	}

	osol, err := lm.Get("o_sol")
	if err != nil {
		tst.Fatalf("o_sol failed: %v\n", err)
	}
	chk.Float64(tst, "o_sol", 1e-15, osol, math.Pow(10, 3.23-5043/700.0))

	fesol, err := lm.Get("fe_sol")
	if err != nil {
		tst.Fatalf("fe_sol failed: %v\n", err)
	}
	chk.Float64(tst, "fe_sol", 1e-15, fesol, math.Pow(10, 2.11-5225/700.0))

	// three chromium solubility correlations are published; the last
	// registered one is the default
	av, err := AvailableCorrelations(Lead, "cr_sol")
	if err != nil {
		tst.Fatalf("available failed: %v\n", err)
	}
	chk.Strings(tst, "cr_sol", av["cr_sol"],
		[]string{"alden1958", "venkatraman1988", "gosse2014"})
	info, err := lm.Info("cr_sol")
	if err != nil {
		tst.Fatalf("info failed: %v\n", err)
	}
	if info.CorrelationName != "gosse2014" {
		tst.Errorf("default cr_sol correlation must be gosse2014, got %q\n", info.CorrelationName)
	}
}
