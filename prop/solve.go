// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"fmt"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
)

// SolveT inverts the correlation p: it finds the temperature T [K] within
// the validity range such that p.Correlation(T, press) equals target.
// Bounds analysis runs first to decompose the range into monotone
// branches; see SolveTBranch for the branch semantics.
func SolveT(p Property, target float64, branch int, press float64) (float64, error) {
	b, err := ComputeBounds(p, press)
	if err != nil {
		return 0, err
	}
	return SolveTBranch(p, b, target, branch, press)
}

// SolveTBranch inverts p using the precomputed bounds b. The branch index
// selects the monotone branch to search: 0 is the lower-temperature one,
// 1 the higher-temperature one. Monotone correlations have a single
// branch and ignore the index. The target must be bracketed by the branch
// endpoint values, otherwise an error wrapping ErrNoBracketingRoot is
// returned; a wrong silent answer is never produced. Within a truly
// monotone branch the returned temperature is unique and round-trips
// through the forward correlation within the solver tolerance.
func SolveTBranch(p Property, b Bounds, target float64, branch int, press float64) (T float64, err error) {
	if branch != 0 && branch != 1 {
		return 0, fmt.Errorf("branch index must be 0 or 1, got %d", branch)
	}
	lo, hi := p.Range()
	if !b.Mono {
		text := b.TExtremum(lo, hi)
		if branch == 0 {
			hi = text
		} else {
			lo = text
		}
	}

	f := func(T float64) float64 { return p.Correlation(T, press) - target }
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if flo*fhi > 0 {
		return 0, fmt.Errorf("%w: %s (%s) branch %d spans [%v, %v] over "+
			"[%.2f, %.2f] K and cannot reach %v",
			ErrNoBracketingRoot, p.Name(), p.CorrelationName(), branch,
			p.Correlation(lo, press), p.Correlation(hi, press), lo, hi, target)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: correlation %q of %q: %v",
				ErrNoConvergence, p.CorrelationName(), p.Name(), r)
		}
	}()
	solver := num.NewBrent(fun.Ss(f), nil)
	T = solver.Root(lo, hi)
	return
}
