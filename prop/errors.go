// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import "errors"

// Sentinel errors returned (wrapped) by the prop package. Callers match
// them with errors.Is. Out-of-range evaluation is not an error: it is a
// warning only (see Eval).
var (
	// ErrUnknownProperty indicates a property name with no registered correlation
	ErrUnknownProperty = errors.New("unknown property")

	// ErrUnknownCorrelation indicates a correlation name not registered for the property
	ErrUnknownCorrelation = errors.New("unknown correlation name")

	// ErrReservedName indicates a property name colliding with the reserved "__" prefix
	ErrReservedName = errors.New("reserved property name")

	// ErrInvalidProperty indicates a correlation definition that cannot be registered
	ErrInvalidProperty = errors.New("invalid property definition")

	// ErrInvalidCustomPath indicates a custom-properties path that does not exist or cannot be loaded
	ErrInvalidCustomPath = errors.New("invalid custom properties path")

	// ErrNoBracketingRoot indicates a target value outside the achievable range of the selected branch
	ErrNoBracketingRoot = errors.New("no root in selected branch")

	// ErrBoundsAnalysis indicates that the minimizer failed while analysing a correlation
	ErrBoundsAnalysis = errors.New("bounds analysis failed")

	// ErrNoConvergence indicates that the root finder did not converge
	ErrNoConvergence = errors.New("root finding did not converge")
)
