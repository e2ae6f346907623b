// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prop

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/io"
)

// reservedPrefix collides with internal dispatch and is rejected at
// registration time
const reservedPrefix = "__"

// Registry holds all the correlations known for one liquid metal species,
// grouped by property name in registration order: built-ins first, custom
// ones appended. The active correlation of a property defaults to the
// most recently registered one, so custom correlations override built-ins
// unless an explicit choice is made with SetActive.
//
// A Registry is shared, mutable state scoped per species: mutating it
// affects every current and future instance of that species. The design
// assumes single-threaded, script-like usage and provides no locking;
// concurrent mutators must synchronise at the boundary.
type Registry struct {
	groups map[string][]Property // property name => correlations, registration order
	order  []string              // property names in first-registration order
	active map[string]int        // property name => index into groups
	bcache map[string]Bounds     // "<name>__<correlation>" => bounds at atmospheric pressure
}

// NewRegistry returns a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string][]Property),
		active: make(map[string]int),
		bcache: make(map[string]Bounds),
	}
}

// Register appends correlations to the registry, creating new property
// groups as needed, and marks each one active for its property. A
// property name beginning with the reserved "__" prefix is rejected with
// ErrReservedName before anything is registered (fail fast). Registering
// a correlation with the name and correlation name of an existing entry
// replaces that entry in place.
func (o *Registry) Register(props ...Property) error {
	for _, p := range props {
		if err := validate(p); err != nil {
			return err
		}
	}
	for _, p := range props {
		name := p.Name()
		group, ok := o.groups[name]
		if !ok {
			o.order = append(o.order, name)
		}
		replaced := false
		for i, q := range group {
			if q.CorrelationName() == p.CorrelationName() {
				group[i] = p
				o.active[name] = i
				replaced = true
				break
			}
		}
		if !replaced {
			o.groups[name] = append(group, p)
			o.active[name] = len(o.groups[name]) - 1
		}
		delete(o.bcache, key(p))
	}
	return nil
}

// validate checks a correlation definition before registration
func validate(p Property) error {
	if strings.HasPrefix(p.Name(), reservedPrefix) {
		return fmt.Errorf("%w: %q collides with internal dispatch", ErrReservedName, p.Name())
	}
	lo, hi := p.Range()
	if !(lo < hi) {
		return fmt.Errorf("%w: %q (%s) has validity range [%v, %v]",
			ErrInvalidProperty, p.Name(), p.CorrelationName(), lo, hi)
	}
	return nil
}

// Names returns the property names in first-registration order
func (o *Registry) Names() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

// Has tells whether a property name is registered
func (o *Registry) Has(name string) bool {
	_, ok := o.groups[name]
	return ok
}

// Available returns, for each requested property name, the ordered list
// of registered correlation names. With no arguments all properties are
// reported. Requested names that are unknown are skipped after emitting a
// warning.
func (o *Registry) Available(names ...string) map[string][]string {
	if len(names) == 0 {
		names = o.order
	}
	out := make(map[string][]string)
	var missing []string
	for _, name := range names {
		group, ok := o.groups[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		corrs := make([]string, len(group))
		for i, p := range group {
			corrs[i] = p.CorrelationName()
		}
		out[name] = corrs
	}
	if len(missing) > 0 {
		Warn(io.Sf("requested properties %v not found; check the "+
			"property names and try again", missing))
	}
	return out
}

// SetActive marks the named correlation as the active one for a property
func (o *Registry) SetActive(name, corrName string) error {
	group, ok := o.groups[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	for i, p := range group {
		if p.CorrelationName() == corrName {
			o.active[name] = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not registered for property %q",
		ErrUnknownCorrelation, corrName, name)
}

// Active returns the currently selected correlation for a property
func (o *Registry) Active(name string) (Property, error) {
	group, ok := o.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	return group[o.active[name]], nil
}

// Get returns the correlation registered for a property under a
// specific correlation name
func (o *Registry) Get(name, corrName string) (Property, error) {
	group, ok := o.groups[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}
	for _, p := range group {
		if p.CorrelationName() == corrName {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not registered for property %q",
		ErrUnknownCorrelation, corrName, name)
}

// Bounds returns the extrema of a correlation over its validity range,
// computing them on first use and caching the result. Bounds are
// evaluated at atmospheric pressure; the handbook correlations carry
// their pressure dependence as a small perturbation that does not move
// the extrema.
func (o *Registry) Bounds(p Property) (Bounds, error) {
	k := key(p)
	if b, ok := o.bcache[k]; ok {
		return b, nil
	}
	b, err := ComputeBounds(p, Atm)
	if err != nil {
		return Bounds{}, err
	}
	o.bcache[k] = b
	return b, nil
}

func key(p Property) string {
	return p.Name() + "__" + p.CorrelationName()
}
