package thermo

import (
	"gonum.org/v1/gonum/floats"
)

// MixtureMolecularWeight is 1/sum(y_i/MW_i). Mass fractions are used as given, without
// normalization.
func (m *Mechanism) MixtureMolecularWeight(y []float64) float64 {
	assertLen("y", y, len(m.records))
	return 1. / floats.Dot(y[:len(m.invMW)], m.invMW)
}

func (m *Mechanism) MoleFractions(y, x []float64) {
	assertLen("y", y, len(m.records))
	assertLen("x", x, len(m.records))
	mmw := m.MixtureMolecularWeight(y)
	for i, invMW := range m.invMW {
		x[i] = y[i] * invMW * mmw
	}
}

// IdealGasDensity solves p = rho Ru T / MW for rho.
func (m *Mechanism) IdealGasDensity(p, T float64, y []float64) float64 {
	return p * m.MixtureMolecularWeight(y) / (m.Ru * T)
}

// IdealGasPressure solves p = rho Ru T / MW for p.
func (m *Mechanism) IdealGasPressure(rho, T float64, y []float64) float64 {
	return rho * m.Ru * T / m.MixtureMolecularWeight(y)
}

// CpMixAndSpecies fills cp with the species heat capacities at T and returns their
// mass weighted sum.
func (m *Mechanism) CpMixAndSpecies(T float64, y, cp []float64) (cpMix float64) {
	assertLen("y", y, len(m.records))
	assertLen("cp", cp, len(m.records))
	for i := range m.records {
		cp[i] = m.records[i].cp(T)
		cpMix += y[i] * cp[i]
	}
	return
}

func (m *Mechanism) CpMix(T float64, y []float64) (cpMix float64) {
	assertLen("y", y, len(m.records))
	for i := range m.records {
		cpMix += y[i] * m.records[i].cp(T)
	}
	return
}

func (m *Mechanism) SpeciesCp(T float64, cp []float64) {
	assertLen("cp", cp, len(m.records))
	for i := range m.records {
		cp[i] = m.records[i].cp(T)
	}
}

// CvMixAndSpecies uses the caller's mixture molecular weight mmw for the mixture value,
// while each species cv uses its own molecular weight.
func (m *Mechanism) CvMixAndSpecies(T float64, y []float64, mmw float64, cv []float64) (cvMix float64) {
	cpMix := m.CpMixAndSpecies(T, y, cv)
	for i, invMW := range m.invMW {
		cv[i] -= m.Ru * invMW
	}
	return cpMix - m.Ru/mmw
}

func (m *Mechanism) CvMix(T float64, y []float64) float64 {
	return m.CpMix(T, y) - m.Ru/m.MixtureMolecularWeight(y)
}

func (m *Mechanism) SpeciesCv(T float64, cv []float64) {
	m.SpeciesCp(T, cv)
	for i, invMW := range m.invMW {
		cv[i] -= m.Ru * invMW
	}
}

// CpSensT fills dcp with dcp_i/dT and returns the mixture sensitivity. Species with a
// constant or frozen cp contribute zero.
func (m *Mechanism) CpSensT(T float64, y, dcp []float64) (dcpMix float64) {
	assertLen("y", y, len(m.records))
	assertLen("dcp", dcp, len(m.records))
	for i := range m.records {
		dcp[i] = m.records[i].dcpdT(T)
		dcpMix += y[i] * dcp[i]
	}
	return
}

func (m *Mechanism) SpeciesEnthalpies(T float64, h []float64) {
	assertLen("h", h, len(m.records))
	for i := range m.records {
		h[i] = m.records[i].enthalpy(T)
	}
}

// SpeciesEnergies is e_i = h_i - Ru T / MW_i.
func (m *Mechanism) SpeciesEnergies(T float64, e []float64) {
	m.SpeciesEnthalpies(T, e)
	for i, invMW := range m.invMW {
		e[i] -= m.Ru * T * invMW
	}
}

func (m *Mechanism) EnthalpyMix(T float64, y []float64) (hMix float64) {
	assertLen("y", y, len(m.records))
	for i := range m.records {
		hMix += y[i] * m.records[i].enthalpy(T)
	}
	return
}

func (m *Mechanism) EnergyMix(T float64, y []float64) (eMix float64) {
	assertLen("y", y, len(m.records))
	for i := range m.records {
		eMix += y[i] * (m.records[i].enthalpy(T) - m.Ru*T*m.invMW[i])
	}
	return
}
