// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/newcleo-dev-team/lbh15/prop"
)

func Test_custom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("custom01. custom density correlation for lead")

	defer ResetRegistry(Lead)

	lm, err := NewLead(668.15)
	if err != nil {
		tst.Fatalf("constructor failed: %v\n", err)
	}
	bi, err := NewBismuth(668.15)
	if err != nil {
		tst.Fatalf("constructor failed: %v\n", err)
	}
	rhoBefore, _ := lm.Get("rho")
	rhoBiBefore, _ := bi.Get("rho")

	custom := &prop.Data{
		PropName: "rho", CorrName: "custom2022",
		Long: "density", Unit: "[kg/m^3]",
		Descr: "Liquid lead custom density",
		Tlo:   600.6, Thi: 2000.0,
		F: func(T, p float64) float64 { return 11400 - 1.2*T },
	}
	if err := RegisterCustomProperties(Lead, custom); err != nil {
		tst.Fatalf("register failed: %v\n", err)
	}

	// registration is shared: the pre-existing instance switches to the
	// newly active custom correlation at once
	rho, _ := lm.Get("rho")
	chk.Float64(tst, "rho custom", 1e-12, rho, 11400-1.2*668.15)
	info, _ := lm.Info("rho")
	if info.CorrelationName != "custom2022" {
		tst.Errorf("custom correlation must be active, got %q\n", info.CorrelationName)
	}

	// other species are untouched
	rhoBi, _ := bi.Get("rho")
	chk.Float64(tst, "rho bismuth", 0, rhoBi, rhoBiBefore)

	// both correlations stay available and the built-in can be restored
	av, err := AvailableCorrelations(Lead, "rho")
	if err != nil {
		tst.Fatalf("available failed: %v\n", err)
	}
	chk.Strings(tst, "rho", av["rho"], []string{"sobolev2008a", "custom2022"})
	if err := SetCorrelationToUse(Lead, "rho", "sobolev2008a"); err != nil {
		tst.Fatalf("set correlation failed: %v\n", err)
	}
	rho, _ = lm.Get("rho")
	chk.Float64(tst, "rho restored", 0, rho, rhoBefore)
}

func Test_custom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("custom02. custom definitions pass the same validation")

	defer ResetRegistry(Lead)

	reserved := &prop.Data{
		PropName: "__rho", CorrName: "custom2022",
		Long: "density", Unit: "[kg/m^3]",
		Tlo:  600.6, Thi: 2000.0,
		F:    func(T, p float64) float64 { return 11400 - 1.2*T },
	}
	if err := RegisterCustomProperties(Lead, reserved); !errors.Is(err, prop.ErrReservedName) {
		tst.Errorf("ErrReservedName expected, got %v\n", err)
	}

	flipped := &prop.Data{
		PropName: "rho", CorrName: "custom2022",
		Long: "density", Unit: "[kg/m^3]",
		Tlo:  2000.0, Thi: 600.6,
		F:    func(T, p float64) float64 { return 11400 - 1.2*T },
	}
	if err := RegisterCustomProperties(Lead, flipped); !errors.Is(err, prop.ErrInvalidProperty) {
		tst.Errorf("ErrInvalidProperty expected, got %v\n", err)
	}
}

func Test_custom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("custom03. plugin path must exist")

	err := SetCustomPropertiesPath(Lead, "/nonexistent/custom_properties.so")
	if !errors.Is(err, prop.ErrInvalidCustomPath) {
		tst.Errorf("ErrInvalidCustomPath expected, got %v\n", err)
	}
}
