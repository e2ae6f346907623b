// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_bounds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds01. monotone increasing correlation")

	k := testLinear()
	b, err := ComputeBounds(k, Atm)
	if err != nil {
		tst.Fatalf("bounds failed: %v\n", err)
	}
	if !b.Mono {
		tst.Fatalf("linear correlation must be monotone\n")
	}
	chk.Float64(tst, "TAtMin", 1e-15, b.TAtMin, 600.0)
	chk.Float64(tst, "TAtMax", 1e-15, b.TAtMax, 1300.0)
	chk.Float64(tst, "Min", 1e-15, b.Min, 9.2+0.011*600.0)
	chk.Float64(tst, "Max", 1e-15, b.Max, 9.2+0.011*1300.0)
}

func Test_bounds02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds02. monotone decreasing correlation")

	mu := testExpDecreasing()
	b, err := ComputeBounds(mu, Atm)
	if err != nil {
		tst.Fatalf("bounds failed: %v\n", err)
	}
	if !b.Mono {
		tst.Fatalf("decreasing correlation must be monotone\n")
	}

	// decreasing: minimum at the upper end, maximum at the lower end
	chk.Float64(tst, "TAtMin", 1e-15, b.TAtMin, 1473.0)
	chk.Float64(tst, "TAtMax", 1e-15, b.TAtMax, 600.6)
}

func Test_bounds03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds03. non-monotone cp: one interior minimum")

	cp := testCp()
	b, err := ComputeBounds(cp, Atm)
	if err != nil {
		tst.Fatalf("bounds failed: %v\n", err)
	}
	if b.Mono {
		tst.Fatalf("cp must not be monotone\n")
	}

	// the minimum of the sobolev2011 lead cp sits near 1568 K
	if b.TAtMin < 1500 || b.TAtMin > 1650 {
		tst.Errorf("interior minimum at %g K out of the expected window\n", b.TAtMin)
	}
	lo, hi := cp.Range()
	if b.Min >= cp.Correlation(lo, Atm) || b.Min >= cp.Correlation(hi, Atm) {
		tst.Errorf("interior minimum must be strictly below both endpoint values\n")
	}

	// maximum at the lower endpoint: cp decreases from T_min to the
	// extremum and does not recover the initial value by T_max
	chk.Float64(tst, "TAtMax", 1e-15, b.TAtMax, lo)

	// the extremum is the split point of the two monotone branches
	chk.Float64(tst, "TExtremum", 1e-15, b.TExtremum(lo, hi), b.TAtMin)
}

func Test_bounds04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds04. bounds analysis is deterministic")

	cp := testCp()
	b1, err := ComputeBounds(cp, Atm)
	if err != nil {
		tst.Fatalf("bounds failed: %v\n", err)
	}
	b2, err := ComputeBounds(cp, Atm)
	if err != nil {
		tst.Fatalf("bounds failed: %v\n", err)
	}
	chk.Float64(tst, "Min", 0, b1.Min, b2.Min)
	chk.Float64(tst, "Max", 0, b1.Max, b2.Max)
	chk.Float64(tst, "TAtMin", 0, b1.TAtMin, b2.TAtMin)
	chk.Float64(tst, "TAtMax", 0, b1.TAtMax, b2.TAtMax)
	if b1.Mono != b2.Mono {
		tst.Errorf("monotonicity classification must be stable\n")
	}
}

func Test_bounds05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bounds05. minimizer failure surfaces as recoverable error")

	bad := &Data{
		PropName: "bad",
		Long:     "failing correlation",
		Unit:     "[-]",
		Tlo:      600.0, Thi: 1300.0,
		F: func(T, p float64) float64 { panic("synthetic failure") },
	}
	_, err := ComputeBounds(bad, Atm)
	if !errors.Is(err, ErrBoundsAnalysis) {
		tst.Errorf("ErrBoundsAnalysis expected, got %v\n", err)
	}
}
