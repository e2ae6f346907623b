// Copyright 2024 The lbh15 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metal

import (
	"fmt"

	"github.com/cpmech/gosl/io"

	"github.com/newcleo-dev-team/lbh15/prop"
)

// LiquidMetal models one liquid metal at a thermodynamic state (T, p).
// Properties are recomputed on every access through the active
// correlation of the shared species registry; nothing is cached on the
// instance, so changing the temperature, or the registry itself,
// immediately affects subsequent reads.
type LiquidMetal struct {
	species Species
	cons    constants
	reg     *prop.Registry
	temp    float64           // temperature [K]
	press   float64           // pressure [Pa]
	corrs   map[string]string // instance-level correlation choices
	roots   map[string]int    // instance-level root branch choices
}

// New returns a liquid metal of the given species at temperature T [K]
// and atmospheric pressure
func New(sp Species, T float64) (*LiquidMetal, error) {
	return NewAt(sp, T, prop.Atm)
}

// NewAt returns a liquid metal of the given species at temperature T [K]
// and pressure p [Pa]
func NewAt(sp Species, T, p float64) (*LiquidMetal, error) {
	o, err := newBare(sp, p)
	if err != nil {
		return nil, err
	}
	if err := o.SetT(T); err != nil {
		return nil, err
	}
	return o, nil
}

// NewFromProperty returns a liquid metal of the given species whose
// temperature reproduces the target value of the named property, at
// atmospheric pressure. The property's active correlation is inverted
// numerically on the monotone branch configured with SetRootToUse
// (default: the lower-temperature branch).
func NewFromProperty(sp Species, propName string, value float64) (*LiquidMetal, error) {
	return NewFromPropertyAt(sp, propName, value, prop.Atm)
}

// NewFromPropertyAt is like NewFromProperty at pressure p [Pa]
func NewFromPropertyAt(sp Species, propName string, value, p float64) (*LiquidMetal, error) {
	o, err := newBare(sp, p)
	if err != nil {
		return nil, err
	}
	if propName == "T" {
		if err := o.SetT(value); err != nil {
			return nil, err
		}
		return o, nil
	}
	pr, err := o.reg.Active(propName)
	if err != nil {
		return nil, err
	}
	b, err := o.reg.Bounds(pr)
	if err != nil {
		return nil, err
	}
	T, err := prop.SolveTBranch(pr, b, value, rootToUse(sp, propName), o.press)
	if err != nil {
		return nil, err
	}
	if err := o.SetT(T); err != nil {
		return nil, err
	}
	return o, nil
}

// Convenience constructors per species

// NewLead returns liquid lead at temperature T [K]
func NewLead(T float64) (*LiquidMetal, error) { return New(Lead, T) }

// NewBismuth returns liquid bismuth at temperature T [K]
func NewBismuth(T float64) (*LiquidMetal, error) { return New(Bismuth, T) }

// NewLBE returns liquid lead-bismuth eutectic at temperature T [K]
func NewLBE(T float64) (*LiquidMetal, error) { return New(LBE, T) }

// LeadFromProperty returns liquid lead from a target property value
func LeadFromProperty(propName string, value float64) (*LiquidMetal, error) {
	return NewFromProperty(Lead, propName, value)
}

// BismuthFromProperty returns liquid bismuth from a target property value
func BismuthFromProperty(propName string, value float64) (*LiquidMetal, error) {
	return NewFromProperty(Bismuth, propName, value)
}

// LBEFromProperty returns liquid lead-bismuth eutectic from a target property value
func LBEFromProperty(propName string, value float64) (*LiquidMetal, error) {
	return NewFromProperty(LBE, propName, value)
}

func newBare(sp Species, p float64) (*LiquidMetal, error) {
	reg, err := registryOf(sp)
	if err != nil {
		return nil, err
	}
	o := &LiquidMetal{
		species: sp,
		cons:    constantsOf[sp],
		reg:     reg,
		corrs:   make(map[string]string),
		roots:   make(map[string]int),
	}
	if err := o.SetP(p); err != nil {
		return nil, err
	}
	return o, nil
}

// Species returns the species of the liquid metal
func (o *LiquidMetal) Species() Species { return o.species }

// T returns the temperature [K] used to compute the properties
func (o *LiquidMetal) T() float64 { return o.temp }

// P returns the pressure [Pa] adopted for property calculation
func (o *LiquidMetal) P() float64 { return o.press }

// TM0 returns the melting temperature [K]
func (o *LiquidMetal) TM0() float64 { return o.cons.TM0 }

// QM0 returns the melting latent heat [J/kg]
func (o *LiquidMetal) QM0() float64 { return o.cons.QM0 }

// TB0 returns the boiling temperature [K]
func (o *LiquidMetal) TB0() float64 { return o.cons.TB0 }

// QB0 returns the vaporisation heat [J/kg]
func (o *LiquidMetal) QB0() float64 { return o.cons.QB0 }

// M returns the molar mass [g/mol]
func (o *LiquidMetal) M() float64 { return o.cons.M }

// CheckTemperature tells whether T belongs to the liquid range of the
// species, i.e. strictly between the melting and the boiling
// temperatures, returning the reason when it does not
func (o *LiquidMetal) CheckTemperature(T float64) (ok bool, msg string) {
	if o.cons.TM0 < T && T < o.cons.TB0 {
		return true, ""
	}
	switch {
	case T >= o.cons.TB0:
		msg = io.Sf("temperature must be smaller than boiling temperature "+
			"(%.2f K), %.2f K was provided", o.cons.TB0, T)
	case T > 0:
		msg = io.Sf("temperature must be larger than melting temperature "+
			"(%.2f K), %.2f K was provided", o.cons.TM0, T)
	default:
		msg = io.Sf("temperature must be strictly positive, %.2f K was provided", T)
	}
	return false, msg
}

// SetT sets the temperature, which must belong to the liquid range
func (o *LiquidMetal) SetT(T float64) error {
	if ok, msg := o.CheckTemperature(T); !ok {
		return fmt.Errorf("%s", msg)
	}
	o.temp = T
	return nil
}

// SetP sets the pressure, which must be strictly positive
func (o *LiquidMetal) SetP(p float64) error {
	if p <= 0 {
		return fmt.Errorf("pressure must be strictly positive, %.2f Pa was provided", p)
	}
	o.press = p
	return nil
}

// activeOf resolves the correlation to evaluate for a property: the
// instance-level choice when one was made, the registry's active
// correlation otherwise
func (o *LiquidMetal) activeOf(name string) (prop.Property, error) {
	if corrName, ok := o.corrs[name]; ok {
		return o.reg.Get(name, corrName)
	}
	return o.reg.Active(name)
}

// Get returns the value of the named property at the current state,
// emitting an out-of-range warning when the temperature falls outside
// the validity range of the correlation
func (o *LiquidMetal) Get(name string) (float64, error) {
	pr, err := o.activeOf(name)
	if err != nil {
		return 0, err
	}
	val, _ := prop.Eval(pr, o.temp, o.press)
	return val, nil
}

// Pr returns the Prandtl number cp*mu/k [-]
func (o *LiquidMetal) Pr() (float64, error) {
	cp, err := o.Get("cp")
	if err != nil {
		return 0, err
	}
	mu, err := o.Get("mu")
	if err != nil {
		return 0, err
	}
	k, err := o.Get("k")
	if err != nil {
		return 0, err
	}
	return cp * mu / k, nil
}

// Info bundles the value of a property with the metadata of the
// correlation that produced it
type Info struct {
	Name            string  // short property key
	Value           float64 // value at the current state
	Units           string  // property units
	RangeLo         float64 // validity range lower bound [K]
	RangeHi         float64 // validity range upper bound [K]
	CorrelationName string  // author/source tag
	LongName        string  // human readable property name
	Description     string  // property description
}

// Info returns the full information bundle of the named property at the
// current state
func (o *LiquidMetal) Info(name string) (*Info, error) {
	pr, err := o.activeOf(name)
	if err != nil {
		return nil, err
	}
	val, _ := prop.Eval(pr, o.temp, o.press)
	lo, hi := pr.Range()
	return &Info{
		Name:            pr.Name(),
		Value:           val,
		Units:           pr.Units(),
		RangeLo:         lo,
		RangeHi:         hi,
		CorrelationName: pr.CorrelationName(),
		LongName:        pr.LongName(),
		Description:     pr.Description(),
	}, nil
}

// String formats the information bundle
func (o Info) String() string {
	value := io.Sf("Value: %.2f %s", o.Value, o.Units)
	if o.Value < 1e-2 {
		value = io.Sf("Value: %.2e %s", o.Value, o.Units)
	}
	l := o.Name + ":\n"
	l += "\t" + value + "\n"
	l += io.Sf("\tValidity range: [%.2f, %.2f] K\n", o.RangeLo, o.RangeHi)
	l += io.Sf("\tCorrelation name: %q\n", o.CorrelationName)
	l += io.Sf("\tLong name: %s\n", o.LongName)
	l += io.Sf("\tUnits: %s\n", o.Units)
	l += io.Sf("\tDescription:\n\t\t%s", o.Description)
	return l
}

// ChangeCorrelationToUse changes the correlation evaluated for a
// property by this instance only; other instances of the species and the
// shared registry are unaffected
func (o *LiquidMetal) ChangeCorrelationToUse(propName, corrName string) error {
	if _, err := o.reg.Get(propName, corrName); err != nil {
		return err
	}
	o.corrs[propName] = corrName
	return nil
}

// UsedCorrelations returns the instance-level correlation choices
func (o *LiquidMetal) UsedCorrelations() map[string]string {
	out := make(map[string]string, len(o.corrs))
	for k, v := range o.corrs {
		out[k] = v
	}
	return out
}

// SetRootToUse selects, for this instance, the monotone branch searched
// by SolveFromProperty for the named property
func (o *LiquidMetal) SetRootToUse(propName string, branch int) error {
	if branch != 0 && branch != 1 {
		return fmt.Errorf("branch index must be 0 or 1, got %d", branch)
	}
	if !o.reg.Has(propName) {
		return fmt.Errorf("%w: %q", prop.ErrUnknownProperty, propName)
	}
	o.roots[propName] = branch
	return nil
}

// SolveFromProperty sets the instance temperature so that the named
// property reproduces the target value, inverting the correlation
// evaluated by this instance on the configured branch
func (o *LiquidMetal) SolveFromProperty(propName string, value float64) error {
	pr, err := o.activeOf(propName)
	if err != nil {
		return err
	}
	b, err := o.reg.Bounds(pr)
	if err != nil {
		return err
	}
	branch, ok := o.roots[propName]
	if !ok {
		branch = rootToUse(o.species, propName)
	}
	T, err := prop.SolveTBranch(pr, b, value, branch, o.press)
	if err != nil {
		return err
	}
	return o.SetT(T)
}

// String summarises the liquid metal state, constants and properties
func (o *LiquidMetal) String() string {
	l := io.Sf("%s liquid metal @(T=%.2f K, p=%.2f Pa)\n", o.species, o.temp, o.press)
	l += "\nConstants:\n"
	l += io.Sf("\tMelting Temperature: %.2f K\n", o.cons.TM0)
	l += io.Sf("\tBoiling Temperature: %.2f K\n", o.cons.TB0)
	l += io.Sf("\tMelting latent heat: %.2f J/kg\n", o.cons.QM0)
	l += io.Sf("\tVaporisation heat: %.2f J/kg\n", o.cons.QB0)
	l += io.Sf("\tMolar mass: %.2f g/mol\n", o.cons.M)
	l += "\nProperties:\n"
	for _, name := range o.reg.Names() {
		info, err := o.Info(name)
		if err != nil {
			continue
		}
		l += info.String() + "\n"
	}
	return l
}
