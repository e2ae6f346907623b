// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import "github.com/cpmech/gosl/io"

// Warn is the sink for out-of-range warnings. Warnings are advisory: a
// nuclear-engineering user may legitimately extrapolate a correlation and
// wants to see the value together with the warning, not a failure. Tests
// replace Warn to capture messages.
var Warn = func(msg string) {
	io.Pfyel("%s\n", msg)
}

// InRange tells whether T belongs to the validity range of p. Bounds are
// inclusive: evaluating exactly at Tlo or Thi is in range.
func InRange(p Property, T float64) bool {
	lo, hi := p.Range()
	return T >= lo && T <= hi
}

// Eval computes the value of p at temperature T [K] and pressure press
// [Pa]. If T falls strictly outside the validity range, exactly one
// warning is emitted through Warn and ok is false; the value is returned
// in any case. Every property access in the library goes through Eval so
// that range violations are reported with a single uniform format.
func Eval(p Property, T, press float64) (val float64, ok bool) {
	val = p.Correlation(T, press)
	ok = InRange(p, T)
	if !ok {
		lo, hi := p.Range()
		Warn(io.Sf("the %s is requested at temperature %.2f K which is "+
			"outside its validity range [%.2f, %.2f] K",
			p.LongName(), T, lo, hi))
	}
	return
}
