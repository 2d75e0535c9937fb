package thermo

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	// GRI-Mech 3.0 fits
	n2Low  = [7]float64{3.298677, 1.4082404e-3, -3.963222e-6, 5.641515e-9, -2.444854e-12, -1020.8999, 3.950372}
	n2High = [7]float64{2.92664, 1.4879768e-3, -5.68476e-7, 1.0097038e-10, -6.753351e-15, -922.7977, 5.980528}
	o2Low  = [7]float64{3.78245636, -2.99673416e-3, 9.84730201e-6, -9.68129509e-9, 3.24372837e-12, -1063.94356, 3.65767573}
	o2High = [7]float64{3.28253784, 1.48308754e-3, -7.57966669e-7, 2.09470555e-10, -2.16717794e-14, -1088.45772, 5.45323129}
)

func airSpecies() []Species {
	return []Species{
		{Name: "N2", Type: NASA7, Coefficients: NASA7FromStandard(1000, n2Low, n2High, UniversalGasConstant),
			MinT: 300, MaxT: 5000, InvMolecularWeight: 1. / 28.0134},
		{Name: "O2", Type: NASA7, Coefficients: NASA7FromStandard(1000, o2Low, o2High, UniversalGasConstant),
			MinT: 200, MaxT: 3500, InvMolecularWeight: 1. / 31.998},
		{Name: "INERT", Type: Constant, Coefficients: ConstantCp(300, 1000, 2000),
			InvMolecularWeight: 0.1},
	}
}

func newAir(t *testing.T) *Mechanism {
	m, err := NewMechanism(airSpecies())
	assert.Nil(t, err)
	return m
}

// Textbook NASA7 closures, mass specific
func stdCp(a [7]float64, invMW, T float64) float64 {
	return UniversalGasConstant * invMW * (a[0] + T*(a[1]+T*(a[2]+T*(a[3]+T*a[4]))))
}

func stdH(a [7]float64, invMW, T float64) float64 {
	return UniversalGasConstant * invMW *
		(a[5] + T*(a[0]+T*(a[1]/2+T*(a[2]/3+T*(a[3]/4+T*a[4]/5)))))
}

func assertRel(t *testing.T, want, got, tol float64, msgAndArgs ...interface{}) {
	t.Helper()
	scale := math.Max(1, math.Abs(want))
	assert.LessOrEqual(t, math.Abs(want-got)/scale, tol, msgAndArgs...)
}

func TestPolyType(t *testing.T) {
	pt, err := NewPolyType(" NASA7 ")
	assert.Nil(t, err)
	assert.Equal(t, NASA7, pt)
	pt, err = NewPolyType("const")
	assert.Nil(t, err)
	assert.Equal(t, Constant, pt)
	_, err = NewPolyType("nasa9")
	assert.NotNil(t, err)
	assert.Equal(t, "NASA7", NASA7.String())
	assert.Equal(t, 14, NASA7.NumCoefficients())
	assert.Equal(t, 4, Constant.NumCoefficients())
}

func TestNewMechanism(t *testing.T) {
	{ // Validation
		_, err := NewMechanism(nil)
		assert.NotNil(t, err)

		sp := airSpecies()
		sp[0].Coefficients = sp[0].Coefficients[:13]
		_, err = NewMechanism(sp)
		assert.NotNil(t, err)

		sp = airSpecies()
		sp[1].MaxT = 900 // below Tmid
		_, err = NewMechanism(sp)
		assert.NotNil(t, err)

		sp = airSpecies()
		sp[2].InvMolecularWeight = 0
		_, err = NewMechanism(sp)
		assert.NotNil(t, err)

		sp = airSpecies()
		sp[2].Name = "N2"
		_, err = NewMechanism(sp)
		assert.NotNil(t, err)
	}
	{ // The table is copied on construction
		sp := airSpecies()
		m, err := NewMechanism(sp)
		assert.Nil(t, err)
		cp0 := m.CpMix(500, []float64{1, 0, 0})
		sp[0].Coefficients[8] *= 2
		sp[0].InvMolecularWeight = 1
		assert.Equal(t, cp0, m.CpMix(500, []float64{1, 0, 0}))
		assert.Equal(t, 3, m.NumSpecies())
		assert.Equal(t, 1, m.SpeciesIndex("O2"))
		assert.Equal(t, -1, m.SpeciesIndex("AR"))
		assertRel(t, 28.0134, m.MolecularWeights()[0], 1.e-14)
		assert.Equal(t, airSpecies()[2], m.Species(2))
		assert.Equal(t, UniversalGasConstant, m.Ru)
	}
	{ // Gas constant override
		m, err := NewMechanism(airSpecies(), 8314.)
		assert.Nil(t, err)
		assert.Equal(t, 8314., m.Ru)
	}
}

func TestConstantClosure(t *testing.T) {
	m, err := NewMechanism([]Species{
		{Name: "X", Type: Constant, Coefficients: []float64{300, 1000, 0, 2000}, InvMolecularWeight: 0.1},
	})
	assert.Nil(t, err)
	var (
		y   = []float64{1}
		buf = make([]float64, 1)
	)
	assertRel(t, 40100, m.EnthalpyMix(500, y), 1.e-15)
	assertRel(t, 200, m.CpMix(500, y), 1.e-15)
	// Constant closures have no validity range
	assertRel(t, 200, m.CpMix(1.e5, y), 1.e-15)
	assertRel(t, 0.1*(1000+2000*(10-300)), m.EnthalpyMix(10, y), 1.e-15)
	assert.Equal(t, 0., m.CpSensT(500, y, buf))
	assert.Equal(t, 0., buf[0])
	m.SpeciesCv(500, buf)
	assertRel(t, 200-UniversalGasConstant*0.1, buf[0], 1.e-15)
}

func TestNASA7Branches(t *testing.T) {
	var (
		m   = newAir(t)
		cp  = make([]float64, 3)
		h   = make([]float64, 3)
		inv = 1. / 28.0134
	)
	for _, T := range []float64{300, 650, 999.9, 1000} {
		m.SpeciesCp(T, cp)
		m.SpeciesEnthalpies(T, h)
		assertRel(t, stdCp(n2Low, inv, T), cp[0], 1.e-13, "low cp at %v", T)
		assertRel(t, stdH(n2Low, inv, T), h[0], 1.e-13, "low h at %v", T)
	}
	for _, T := range []float64{1000.0001, 2500, 5000} {
		m.SpeciesCp(T, cp)
		m.SpeciesEnthalpies(T, h)
		assertRel(t, stdCp(n2High, inv, T), cp[0], 1.e-13, "high cp at %v", T)
		assertRel(t, stdH(n2High, inv, T), h[0], 1.e-13, "high h at %v", T)
	}
	{ // Tmid belongs to the low range, exactly
		sp := airSpecies()[:1]
		var high [7]float64
		for i := range high {
			high[i] = 2 * n2Low[i]
		}
		sp[0].Coefficients = NASA7FromStandard(1000, n2Low, high, UniversalGasConstant)
		m2, err := NewMechanism(sp)
		assert.Nil(t, err)
		y := []float64{1}
		assertRel(t, stdCp(n2Low, inv, 1000), m2.CpMix(1000, y), 1.e-14)
		assertRel(t, 2*stdCp(n2Low, inv, 1000.5), m2.CpMix(1000.5, y), 1.e-14)
	}
}

func TestNASA7Extrapolation(t *testing.T) {
	var (
		m   = newAir(t)
		y   = []float64{1, 0, 0}
		dcp = make([]float64, 3)
	)
	// cp is frozen at the boundary value
	assertRel(t, m.CpMix(300, y), m.CpMix(250, y), 1.e-15)
	assertRel(t, m.CpMix(300, y), m.CpMix(10, y), 1.e-15)
	assertRel(t, m.CpMix(5000, y), m.CpMix(6000, y), 1.e-15)
	assert.Equal(t, 0., m.CpSensT(250, y, dcp))
	assert.Equal(t, 0., dcp[0])
	assert.Equal(t, 0., m.CpSensT(7000, y, dcp))

	// Enthalpy is continuous with slope cp(boundary) outside
	for _, tb := range []float64{300, 5000} {
		dir := -1.
		if tb == 5000 {
			dir = 1
		}
		var (
			cpb = m.CpMix(tb, y)
			hb  = m.EnthalpyMix(tb, y)
		)
		assert.InDelta(t, hb, m.EnthalpyMix(tb+dir*1.e-9, y), 2.e-6)
		assertRel(t, hb+cpb*dir*100, m.EnthalpyMix(tb+dir*100, y), 1.e-12)
		slope := (m.EnthalpyMix(tb+dir*20, y) - m.EnthalpyMix(tb+dir*10, y)) / (dir * 10)
		assertRel(t, cpb, slope, 1.e-8)
	}
}

func TestDerivatives(t *testing.T) {
	var (
		m   = newAir(t)
		y   = []float64{0.7, 0.2, 0.1}
		dcp = make([]float64, 3)
		eps = 1.e-3
	)
	for _, T := range []float64{400, 800, 1500, 3000} {
		fd := (m.CpMix(T+eps, y) - m.CpMix(T-eps, y)) / (2 * eps)
		assertRel(t, fd, m.CpSensT(T, y, dcp), 1.e-6, "dcp/dT at %v", T)
		fdh := (m.EnthalpyMix(T+eps, y) - m.EnthalpyMix(T-eps, y)) / (2 * eps)
		assertRel(t, m.CpMix(T, y), fdh, 1.e-7, "dh/dT at %v", T)
		// Constant species add nothing, NASA7 species keep their share
		assert.Equal(t, 0., dcp[2])
		assertRel(t, 0.7*dcp[0]+0.2*dcp[1], m.CpSensT(T, y, dcp), 1.e-15)
	}
	// O2 is frozen above 3500 while N2 is not
	m.CpSensT(4000, y, dcp)
	assert.NotEqual(t, 0., dcp[0])
	assert.Equal(t, 0., dcp[1])
}

func TestMixtureIdentities(t *testing.T) {
	var (
		m  = newAir(t)
		y  = []float64{0.7, 0.2, 0.1}
		x  = make([]float64, 3)
		cp = make([]float64, 3)
		cv = make([]float64, 3)
		h  = make([]float64, 3)
		e  = make([]float64, 3)
		Ru = m.Ru
	)
	mw := m.MixtureMolecularWeight(y)
	assertRel(t, 1./(0.7/28.0134+0.2/31.998+0.1*0.1), mw, 1.e-14)
	// No normalization
	assertRel(t, mw/2, m.MixtureMolecularWeight([]float64{1.4, 0.4, 0.2}), 1.e-15)

	m.MoleFractions(y, x)
	assertRel(t, 1, x[0]+x[1]+x[2], 1.e-14)
	assertRel(t, 0.1*0.1*mw, x[2], 1.e-15)

	rho := m.IdealGasDensity(101325, 300, y)
	assertRel(t, 101325*mw/(Ru*300), rho, 1.e-15)
	assertRel(t, 101325, m.IdealGasPressure(rho, 300, y), 1.e-14)

	for _, T := range []float64{150, 300, 1000, 2200, 4500} {
		cpMix := m.CpMixAndSpecies(T, y, cp)
		m.SpeciesCp(T, x)
		assert.Equal(t, cp, x)
		assertRel(t, m.CpMix(T, y), cpMix, 1.e-15)

		assertRel(t, cpMix-Ru/mw, m.CvMix(T, y), 1.e-14)
		cvMix := m.CvMixAndSpecies(T, y, mw, cv)
		assertRel(t, cpMix-Ru/mw, cvMix, 1.e-14)
		m.SpeciesCv(T, x)
		assert.Equal(t, cv, x)
		for i, invMW := range m.InverseMolecularWeights() {
			assertRel(t, cp[i]-Ru*invMW, cv[i], 1.e-15)
		}

		m.SpeciesEnthalpies(T, h)
		m.SpeciesEnergies(T, e)
		for i, invMW := range m.InverseMolecularWeights() {
			assertRel(t, h[i]-Ru*T*invMW, e[i], 1.e-14)
		}
		hMix := m.EnthalpyMix(T, y)
		assertRel(t, y[0]*h[0]+y[1]*h[1]+y[2]*h[2], hMix, 1.e-14)
		assertRel(t, hMix-Ru*T/mw, m.EnergyMix(T, y), 1.e-14)
	}
}

func TestTemperatureInversion(t *testing.T) {
	var (
		m = newAir(t)
		y = []float64{0.7, 0.2, 0.1}
	)
	for _, T := range []float64{100, 298.15, 999, 1001, 2345.6, 6000} {
		Th, err := m.TemperatureFromEnthalpy(m.EnthalpyMix(T, y), y, 300)
		assert.Nil(t, err)
		assertRel(t, T, Th, 1.e-10)
		Te, err := m.TemperatureFromEnergy(m.EnergyMix(T, y), y, 1500)
		assert.Nil(t, err)
		assertRel(t, T, Te, 1.e-10)
	}
	{ // The fits jump at Tmid, so the inverse there may land just above it on the high range
		var (
			h = m.EnthalpyMix(1000, y)
			e = m.EnergyMix(1000, y)
		)
		Th, err := m.TemperatureFromEnthalpy(h, y, 300)
		assert.Nil(t, err)
		assert.InDelta(t, 1000, Th, 1.e-3)
		assertRel(t, h, m.EnthalpyMix(Th, y), 1.e-10)
		Te, err := m.TemperatureFromEnergy(e, y, 1500)
		assert.Nil(t, err)
		assert.InDelta(t, 1000, Te, 1.e-3)
		assertRel(t, e, m.EnergyMix(Te, y), 1.e-10)
	}
	{ // Zero heat capacity has no inverse
		m2, err := NewMechanism([]Species{
			{Name: "Z", Type: Constant, Coefficients: ConstantCp(300, 0, 0), InvMolecularWeight: 1},
		})
		assert.Nil(t, err)
		_, err = m2.TemperatureFromEnthalpy(10, []float64{1}, 300)
		assert.True(t, errors.Is(err, ErrNotConverged))
	}
}

func TestNASA7FromStandard(t *testing.T) {
	c := NASA7FromStandard(1000, n2Low, n2High, 2)
	assert.Equal(t, 14, len(c))
	assert.Equal(t, 1000., c[0])
	assert.Equal(t, 2*n2High[0], c[1])
	assertRel(t, 2*n2High[4]/20, c[5], 1.e-15)
	assert.Equal(t, 2*n2High[5], c[6])
	assert.Equal(t, 2*n2High[6], c[7])
	assert.Equal(t, 2*n2Low[0], c[8])
	assertRel(t, 2*n2Low[2]/6, c[10], 1.e-15)
	assert.Equal(t, 2*n2Low[5], c[13])
}
