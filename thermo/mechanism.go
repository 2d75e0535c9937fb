// Package thermo evaluates ideal gas mixture closures over a table of per-species
// heat capacity fits: molecular weight, mole fractions, cp, cv, their temperature
// sensitivity, enthalpies and internal energies.
//
// Every kernel is a pure function of the immutable table and caller-owned buffers. Buffer
// lengths are a caller obligation, checked only when built with -tags debugchecks; the
// Mechanism constructor is where input is validated.
package thermo

import (
	"fmt"
)

// record is the immutable, fixed size form of a Species used on the hot path.
type record struct {
	polyType   PolyType
	c          [14]float64
	minT, maxT float64
	invMW      float64
}

type Mechanism struct {
	Ru      float64
	names   []string
	index   map[string]int
	records []record
	invMW   []float64
}

// NewMechanism validates and copies the species table. The optional argument overrides
// the universal gas constant.
func NewMechanism(species []Species, ruO ...float64) (m *Mechanism, err error) {
	var (
		ns = len(species)
	)
	if ns == 0 {
		err = fmt.Errorf("thermo table must contain at least one species")
		return
	}
	m = &Mechanism{
		Ru:      UniversalGasConstant,
		names:   make([]string, ns),
		index:   make(map[string]int, ns),
		records: make([]record, ns),
		invMW:   make([]float64, ns),
	}
	if len(ruO) != 0 {
		m.Ru = ruO[0]
	}
	for i, sp := range species {
		if err = sp.Validate(); err != nil {
			return nil, err
		}
		if _, dup := m.index[sp.Name]; dup && sp.Name != "" {
			return nil, fmt.Errorf("duplicate species name \"%s\"", sp.Name)
		}
		m.names[i] = sp.Name
		m.index[sp.Name] = i
		rec := record{
			polyType: sp.Type,
			minT:     sp.MinT,
			maxT:     sp.MaxT,
			invMW:    sp.InvMolecularWeight,
		}
		copy(rec.c[:], sp.Coefficients)
		m.records[i] = rec
		m.invMW[i] = sp.InvMolecularWeight
	}
	return
}

func (m *Mechanism) NumSpecies() int { return len(m.records) }

func (m *Mechanism) SpeciesNames() []string {
	return append([]string{}, m.names...)
}

// SpeciesIndex returns -1 for an unknown name.
func (m *Mechanism) SpeciesIndex(name string) int {
	if i, ok := m.index[name]; ok {
		return i
	}
	return -1
}

func (m *Mechanism) InverseMolecularWeights() []float64 {
	return append([]float64{}, m.invMW...)
}

func (m *Mechanism) MolecularWeights() (mw []float64) {
	mw = make([]float64, len(m.invMW))
	for i, v := range m.invMW {
		mw[i] = 1. / v
	}
	return
}

// Species reconstructs the input record of species i.
func (m *Mechanism) Species(i int) Species {
	rec := m.records[i]
	return Species{
		Name:               m.names[i],
		Type:               rec.polyType,
		Coefficients:       append([]float64{}, rec.c[:rec.polyType.NumCoefficients()]...),
		MinT:               rec.minT,
		MaxT:               rec.maxT,
		InvMolecularWeight: rec.invMW,
	}
}
