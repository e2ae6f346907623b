// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package metal implements liquid heavy metal objects (lead, bismuth and
// lead-bismuth eutectic) exposing the handbook property correlations
// registered in the prop package, with construction either from a
// temperature or from a target property value.
//  References:
//   [1] OECD/NEA (2015) Handbook on Lead-bismuth Eutectic Alloy and Lead
//       Properties, Materials Compatibility, Thermal-hydraulics and
//       Technologies, NEA No. 7268
package metal

import (
	"fmt"

	"github.com/newcleo-dev-team/lbh15/prop"
)

// Species identifies one of the liquid metals covered by the library
type Species string

// Available species
const (
	Lead    Species = "lead"
	Bismuth Species = "bismuth"
	LBE     Species = "lbe"
)

// constants collects the characteristic constants of a species
type constants struct {
	TM0 float64 // melting temperature [K]
	QM0 float64 // melting latent heat [J/kg]
	TB0 float64 // boiling temperature [K]
	QB0 float64 // vaporisation heat [J/kg]
	M   float64 // molar mass [g/mol]
}

var constantsOf = map[Species]constants{
	Lead:    {TM0: leadTM0, QM0: leadQM0, TB0: leadTB0, QB0: leadQB0, M: leadM},
	Bismuth: {TM0: bismuthTM0, QM0: bismuthQM0, TB0: bismuthTB0, QB0: bismuthQB0, M: bismuthM},
	LBE:     {TM0: lbeTM0, QM0: lbeQM0, TB0: lbeTB0, QB0: lbeQB0, M: 0.55*bismuthM + 0.45*leadM},
}

// builtinsOf allocates the built-in correlation set of each species
var builtinsOf = map[Species]func() []prop.Property{
	Lead:    leadProps,
	Bismuth: bismuthProps,
	LBE:     lbeProps,
}

// defaultCorrOf pins the default active correlation of properties for
// which the handbook prefers one among several published options
var defaultCorrOf = map[Species]map[string]string{
	Lead: {"cp": "sobolev2011"},
}

// Shared per-species state. Registries are built lazily on first use;
// mutating one (custom properties, active correlations, root indices)
// affects every current and future instance of that species, and no
// other. Single-threaded usage is assumed, as in the rest of the
// library.
var (
	registries = map[Species]*prop.Registry{}
	rootsOf    = map[Species]map[string]int{}
)

// registryOf returns the shared registry of a species, building it from
// the built-in correlation set on first access
func registryOf(sp Species) (*prop.Registry, error) {
	if reg, ok := registries[sp]; ok {
		return reg, nil
	}
	alloc, ok := builtinsOf[sp]
	if !ok {
		return nil, fmt.Errorf("species %q is not available", sp)
	}
	reg := prop.NewRegistry()
	if err := reg.Register(alloc()...); err != nil {
		return nil, err
	}
	for name, corr := range defaultCorrOf[sp] {
		if err := reg.SetActive(name, corr); err != nil {
			return nil, err
		}
	}
	registries[sp] = reg
	return reg, nil
}

// ResetRegistry restores the registry of a species to its built-in-only
// state, dropping custom correlations, active-correlation choices and
// root-index settings. Intended for test isolation.
func ResetRegistry(sp Species) {
	delete(registries, sp)
	delete(rootsOf, sp)
}

// AvailableCorrelations returns, for each requested property name (or
// all, if none is given), the ordered list of correlation names
// currently registered for the species.
func AvailableCorrelations(sp Species, names ...string) (map[string][]string, error) {
	reg, err := registryOf(sp)
	if err != nil {
		return nil, err
	}
	return reg.Available(names...), nil
}

// PropertiesForInitialization returns the names an instance of the
// species can be initialized from: the temperature plus every registered
// property.
func PropertiesForInitialization(sp Species) ([]string, error) {
	reg, err := registryOf(sp)
	if err != nil {
		return nil, err
	}
	return append([]string{"T"}, reg.Names()...), nil
}

// SetCorrelationToUse marks the named correlation as the active one for
// a property of the species. The choice is shared: it applies to every
// existing and future instance of the species.
func SetCorrelationToUse(sp Species, propName, corrName string) error {
	reg, err := registryOf(sp)
	if err != nil {
		return err
	}
	return reg.SetActive(propName, corrName)
}

// SetRootToUse selects which monotone branch the inverse solver searches
// when instances of the species are constructed from the given property:
// 0 for the lower-temperature branch, 1 for the higher-temperature one.
// Only meaningful for non-injective correlations.
func SetRootToUse(sp Species, propName string, branch int) error {
	if branch != 0 && branch != 1 {
		return fmt.Errorf("branch index must be 0 or 1, got %d", branch)
	}
	reg, err := registryOf(sp)
	if err != nil {
		return err
	}
	if !reg.Has(propName) {
		return fmt.Errorf("%w: %q", prop.ErrUnknownProperty, propName)
	}
	roots, ok := rootsOf[sp]
	if !ok {
		roots = make(map[string]int)
		rootsOf[sp] = roots
	}
	roots[propName] = branch
	return nil
}

// rootToUse returns the configured branch index of a property (default 0)
func rootToUse(sp Species, propName string) int {
	return rootsOf[sp][propName]
}

// RegisterCustomProperties registers user-supplied correlations for the
// species. This is the explicit plugin-registration interface: any value
// implementing prop.Property may be passed. Registration is shared
// across all instances of the species and the newly registered
// correlation becomes the active one for its property.
func RegisterCustomProperties(sp Species, props ...prop.Property) error {
	reg, err := registryOf(sp)
	if err != nil {
		return err
	}
	return reg.Register(props...)
}

// SetCustomPropertiesPath loads custom correlations from a compiled
// plugin at the given absolute path and registers them for the species
// (see prop.LoadPath for the plugin contract). The path must exist and
// the loaded definitions pass the same validation as built-ins.
func SetCustomPropertiesPath(sp Species, path string) error {
	props, err := prop.LoadPath(path)
	if err != nil {
		return err
	}
	return RegisterCustomProperties(sp, props...)
}
