// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// lbh15 prints the handbook property table of a liquid heavy metal
// (lead, bismuth or lead-bismuth eutectic) at a given thermodynamic
// state.
package main

import (
	"github.com/cpmech/gosl/io"

	"github.com/newcleo-dev-team/lbh15/metal"
	"github.com/newcleo-dev-team/lbh15/prop"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	species := io.ArgToString(0, "lead")
	T := io.ArgToFloat(1, 668.15)
	p := io.ArgToFloat(2, prop.Atm)

	// message
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"species: lead, bismuth or lbe", "species", species,
		"temperature [K]", "T", T,
		"pressure [Pa]", "p", p,
	))

	// build liquid metal object
	lm, err := metal.NewAt(metal.Species(species), T, p)
	if err != nil {
		io.PfRed("cannot build %q: %v\n", species, err)
		return
	}

	// print property table
	io.Pf("%v\n", lm)
}
