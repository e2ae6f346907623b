// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"fmt"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
)

// endTolFactor scales the validity range width to decide whether an
// extremum found by the minimizer sits on an endpoint
const endTolFactor = 1e-6

// Bounds holds the extrema of a correlation within its validity range.
// Bounds is a pure function of an immutable correlation; once computed it
// never needs recomputing (see Registry.Bounds for the cache).
type Bounds struct {
	Min    float64 // minimum value of the correlation within the range
	Max    float64 // maximum value of the correlation within the range
	TAtMin float64 // temperature [K] at which the minimum is attained
	TAtMax float64 // temperature [K] at which the maximum is attained
	Mono   bool    // monotone over the whole range: both extrema at the endpoints
}

// TExtremum returns the interior extremum temperature splitting the
// validity range of the correlation into its two monotone branches.
// Must not be called when Mono is true.
func (o Bounds) TExtremum(Tlo, Thi float64) float64 {
	tol := endTolFactor * (Thi - Tlo)
	if o.TAtMin-Tlo > tol && Thi-o.TAtMin > tol {
		return o.TAtMin
	}
	return o.TAtMax
}

// ComputeBounds locates the extrema of p over its validity range at
// pressure press [Pa], trying both the minimize and the maximize
// directions with Brent's bounded minimization. If neither direction
// finds an extremum strictly inside the open interval, the correlation is
// monotone; otherwise the single interior extremum splits the range into
// exactly two monotone branches. Handbook correlations are assumed to
// have at most one interior extremum: shapes with more are not supported
// and yield undefined branch decomposition.
//
// A non-converging minimizer is reported as a recoverable error wrapping
// ErrBoundsAnalysis; forward evaluation never calls ComputeBounds, so
// such correlations remain usable as long as they are not inverted.
func ComputeBounds(p Property, press float64) (b Bounds, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: correlation %q of %q: %v",
				ErrBoundsAnalysis, p.CorrelationName(), p.Name(), r)
		}
	}()

	lo, hi := p.Range()
	f := func(T float64) float64 { return p.Correlation(T, press) }
	tol := endTolFactor * (hi - lo)
	atEnd := func(T float64) bool { return T-lo < tol || hi-T < tol }

	// minimum of f
	smin := num.NewBrent(fun.Ss(f), nil)
	b.TAtMin = smin.Min(lo, hi)

	// maximum of f as the minimum of -f
	smax := num.NewBrent(fun.Ss(func(T float64) float64 { return -f(T) }), nil)
	b.TAtMax = smax.Min(lo, hi)

	// extrema coinciding with an endpoint (within tolerance) are snapped
	// onto it and the correlation is classified monotone
	if atEnd(b.TAtMin) {
		if f(lo) <= f(hi) {
			b.TAtMin = lo
		} else {
			b.TAtMin = hi
		}
	}
	if atEnd(b.TAtMax) {
		if f(lo) >= f(hi) {
			b.TAtMax = lo
		} else {
			b.TAtMax = hi
		}
	}
	b.Min = f(b.TAtMin)
	b.Max = f(b.TAtMax)
	b.Mono = atEnd(b.TAtMin) && atEnd(b.TAtMax)
	return
}
