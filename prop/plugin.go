// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"fmt"
	"os"
	"plugin"
)

// PluginSymbol is the symbol looked up in custom-property plugin files.
// A plugin must export it either as
//
//	func LBH15Properties() []prop.Property
//
// or as a package-level
//
//	var LBH15Properties []prop.Property
//
// Each returned definition must supply the full Property contract:
// the correlation function of (T, p), the validity range and the name,
// long name, units, description and correlation name metadata. This is
// the stable extension point for user-supplied correlations.
const PluginSymbol = "LBH15Properties"

// LoadPath loads custom property definitions from a compiled plugin
// (buildmode=plugin shared object) at the given filesystem path. The
// path is checked for existence before any load is attempted; every
// failure mode wraps ErrInvalidCustomPath. Loaded definitions are NOT
// registered here: callers pass them through Registry.Register so that
// the same validation (reserved names, validity ranges) applies to
// custom and built-in correlations alike.
func LoadPath(path string) ([]Property, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCustomPath, path, err)
	}
	pl, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %q: %v", ErrInvalidCustomPath, path, err)
	}
	sym, err := pl.Lookup(PluginSymbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %q does not export %q: %v",
			ErrInvalidCustomPath, path, PluginSymbol, err)
	}
	switch s := sym.(type) {
	case func() []Property:
		return s(), nil
	case *[]Property:
		return *s, nil
	}
	return nil, fmt.Errorf("%w: %q exports %q with the wrong type",
		ErrInvalidCustomPath, path, PluginSymbol)
}
