package cmd

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/goflame/InputParameters"
	"github.com/notargets/goflame/thermo"
)

var thermoTable = []byte(`
Species:
  - Name: N2
    Type: nasa7
    MW: 28.0134
    MinT: 300
    MaxT: 5000
    Tmid: 1000
    Low: [3.298677, 1.4082404e-3, -3.963222e-6, 5.641515e-9, -2.444854e-12, -1020.8999, 3.950372]
    High: [2.92664, 1.4879768e-3, -5.68476e-7, 1.0097038e-10, -6.753351e-15, -922.7977, 5.980528]
  - Name: INERT
    Type: constant
    MW: 10
    Tref: 300
    Href: 0
    Cp: 29000
`)

func newMechanism(t *testing.T) *thermo.Mechanism {
	var tt InputParameters.ThermoTable
	assert.Nil(t, tt.Parse(thermoTable))
	m, err := tt.Mechanism()
	assert.Nil(t, err)
	return m
}

func TestSweep(t *testing.T) {
	m := newMechanism(t)
	{ // Composition parsing
		y, err := ParseComposition(m, map[string]string{"N2": " 0.75", "INERT": "0.25"})
		assert.Nil(t, err)
		assert.Equal(t, []float64{0.75, 0.25}, y)
		y, err = ParseComposition(m, nil)
		assert.Nil(t, err)
		assert.Equal(t, []float64{0.5, 0.5}, y)
		_, err = ParseComposition(m, map[string]string{"AR": "1"})
		assert.NotNil(t, err)
		_, err = ParseComposition(m, map[string]string{"N2": "x"})
		assert.NotNil(t, err)
	}
	y := []float64{0.75, 0.25}
	for _, n := range []int{0, -1} {
		_, err := NewSweep(m, y, 200, 4000, n)
		assert.NotNil(t, err)
	}
	sw, err := NewSweep(m, y, 200, 4000, 20)
	assert.Nil(t, err)
	assert.Equal(t, 20, len(sw.T))
	assert.Equal(t, 4000., sw.T[19])
	for i, T := range sw.T {
		assert.Equal(t, m.CpMix(T, y), sw.Cp[i])
		assert.Equal(t, m.EnthalpyMix(T, y), sw.H[i])
		assert.InDelta(t, sw.Cp[i]-m.Ru/sw.MW, sw.Cv[i], 1.e-9)
		assert.InDelta(t, sw.H[i]-m.Ru*T/sw.MW, sw.E[i], 1.e-6)
	}
	// Below N2's range cp is frozen
	assert.Equal(t, 0., sw.DCp[0])
	sw.Print()
	assert.NotEmpty(t, sw.Plot())
}

func TestBench(t *testing.T) {
	for _, bs := range []int{1, 4} {
		br, err := RunBench(50, bs, 2, 7)
		assert.Nil(t, err)
		assert.Less(t, br.DirectResid, 1.e-12)
		assert.Less(t, br.GSResid, 1.e-9)
		assert.Greater(t, br.Iterations, 0)
		br.Print()
	}
	{ // Rows are diagonally dominant
		br, err := RunBench(1, 3, 1, 3)
		assert.Nil(t, err)
		assert.False(t, math.IsNaN(br.DirectResid))
	}
}

func TestRun1D(t *testing.T) {
	deck := append([]byte(`
Title: "cmd test"
K: 10
Diffusivity: 1.e-4
FinalTime: 1.
Left:
  T: 400
  MassFractions: {N2: 1}
Right:
  T: 800
  MassFractions: {N2: 0.5, INERT: 0.5}
Thermo:
`), indent(thermoTable)...)
	fileName := filepath.Join(t.TempDir(), "case.yaml")
	assert.Nil(t, os.WriteFile(fileName, deck, 0644))

	m1d := &Model1D{ICFile: fileName, MaxSteps: 3, ParallelDegree: 2}
	ip := processInput1D(m1d)
	assert.Equal(t, 10, ip.K)
	assert.Equal(t, 2, len(ip.Thermo.Species))
	assert.Nil(t, Run1D(m1d, ip))
	assert.Equal(t, 3, ip.MaxSteps)

	ip.Diffusivity = -1
	assert.NotNil(t, Run1D(m1d, ip))
}

// indent nests a YAML document one level deeper.
func indent(doc []byte) (out []byte) {
	out = append(out, ' ', ' ')
	for i, c := range doc {
		out = append(out, c)
		if c == '\n' && i != len(doc)-1 {
			out = append(out, ' ', ' ')
		}
	}
	return
}
