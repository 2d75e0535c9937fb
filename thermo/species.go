package thermo

import (
	"fmt"
	"strings"
)

type PolyType uint8

const (
	Constant PolyType = iota
	NASA7
)

var PolyTypeNameMap = map[string]PolyType{
	"const":    Constant,
	"constant": Constant,
	"nasa7":    NASA7,
}

func NewPolyType(label string) (pt PolyType, err error) {
	var ok bool
	if pt, ok = PolyTypeNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown heat capacity polynomial type: \"%s\"", label)
	}
	return
}

func (pt PolyType) String() string {
	switch pt {
	case Constant:
		return "Constant"
	case NASA7:
		return "NASA7"
	}
	return fmt.Sprintf("PolyType(%d)", pt)
}

// NumCoefficients is the coefficient count of each closure type.
func (pt PolyType) NumCoefficients() int {
	switch pt {
	case Constant:
		return 4
	case NASA7:
		return 14
	}
	return 0
}

// UniversalGasConstant in J/(kmol K), so that molecular weights are in kg/kmol and
// mass-specific quantities come out per kg.
const UniversalGasConstant = 8314.46261815324

/*
Species is one row of the thermo table.

Constant coefficients are [Tref, href, unused, cp], molar and per kmol.

NASA7 coefficients use the pre-scaled layout

	[0]      Tmid, the low/high breakpoint
	[1..5]   high range a1..a5
	[6]      high range enthalpy constant
	[7]      high range entropy constant, not read by these kernels
	[8..12]  low range a1..a5
	[13]     low range enthalpy constant

where each range gives the molar closures

	cp(T) = a1 + 2 a2 T + 6 a3 T^2 + 12 a4 T^3 + 20 a5 T^4
	h(T)  = a6 + a1 T + a2 T^2 + 2 a3 T^3 + 3 a4 T^4 + 4 a5 T^5

with the gas constant already multiplied in. NASA7FromStandard converts textbook
coefficients into this layout.
*/
type Species struct {
	Name               string
	Type               PolyType
	Coefficients       []float64
	MinT, MaxT         float64
	InvMolecularWeight float64
}

func (sp Species) MolecularWeight() float64 {
	return 1. / sp.InvMolecularWeight
}

func (sp Species) Validate() (err error) {
	if sp.InvMolecularWeight <= 0 {
		return fmt.Errorf("species \"%s\": inverse molecular weight must be positive, have %8.5e",
			sp.Name, sp.InvMolecularWeight)
	}
	nc := sp.Type.NumCoefficients()
	if nc == 0 {
		return fmt.Errorf("species \"%s\": unsupported polynomial type %v", sp.Name, sp.Type)
	}
	if len(sp.Coefficients) != nc {
		return fmt.Errorf("species \"%s\": %v closure needs %d coefficients, have %d",
			sp.Name, sp.Type, nc, len(sp.Coefficients))
	}
	if sp.Type == NASA7 {
		tmid := sp.Coefficients[0]
		if !(sp.MinT < tmid && tmid < sp.MaxT) {
			return fmt.Errorf("species \"%s\": NASA7 bounds must satisfy minT < Tmid < maxT, have %g, %g, %g",
				sp.Name, sp.MinT, tmid, sp.MaxT)
		}
	}
	return
}

// ConstantCp builds the coefficients of a constant heat capacity closure with molar
// enthalpy href at tref.
func ConstantCp(tref, href, cp float64) []float64 {
	return []float64{tref, href, 0, cp}
}

// NASA7FromStandard converts textbook NASA7 coefficients, for which
//
//	cp/R = a1 + a2 T + a3 T^2 + a4 T^3 + a5 T^4
//	h/R  = a1 T + a2 T^2/2 + a3 T^3/3 + a4 T^4/4 + a5 T^5/5 + a6
//	s/R  = a1 ln T + a2 T + a3 T^2/2 + a4 T^3/3 + a5 T^4/4 + a7
//
// into the pre-scaled layout documented on Species, using the gas constant ru.
func NASA7FromStandard(tmid float64, low, high [7]float64, ru float64) (c []float64) {
	scale := func(dst []float64, a [7]float64) {
		dst[0] = ru * a[0]
		dst[1] = ru * a[1] / 2.
		dst[2] = ru * a[2] / 6.
		dst[3] = ru * a[3] / 12.
		dst[4] = ru * a[4] / 20.
		dst[5] = ru * a[5]
	}
	c = make([]float64, 14)
	c[0] = tmid
	scale(c[1:7], high)
	c[7] = ru * high[6]
	scale(c[8:14], low)
	return
}
