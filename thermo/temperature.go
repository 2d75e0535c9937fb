package thermo

import (
	"errors"
	"fmt"
	"math"
)

var ErrNotConverged = errors.New("temperature iteration did not converge")

const (
	MaxNewtonIterations = 50
	// NewtonTolerance is relative to the temperature
	NewtonTolerance = 1.e-12
)

// TemperatureFromEnthalpy inverts EnthalpyMix(T, y) = h by Newton iteration from tGuess,
// using the mixture cp as the slope.
func (m *Mechanism) TemperatureFromEnthalpy(h float64, y []float64, tGuess float64) (T float64, err error) {
	return newton(h, tGuess, func(t float64) (f, df float64) {
		return m.EnthalpyMix(t, y), m.CpMix(t, y)
	})
}

// TemperatureFromEnergy inverts EnergyMix(T, y) = e using the mixture cv as the slope.
func (m *Mechanism) TemperatureFromEnergy(e float64, y []float64, tGuess float64) (T float64, err error) {
	mmw := m.MixtureMolecularWeight(y)
	return newton(e, tGuess, func(t float64) (f, df float64) {
		return m.EnergyMix(t, y), m.CpMix(t, y) - m.Ru/mmw
	})
}

func newton(target, tGuess float64, eval func(t float64) (f, df float64)) (T float64, err error) {
	var (
		f, df, dT float64
	)
	T = tGuess
	for n := 0; n < MaxNewtonIterations; n++ {
		f, df = eval(T)
		if df <= 0 || math.IsNaN(df) {
			err = fmt.Errorf("non-positive heat capacity %8.5e at T = %8.5f: %w", df, T, ErrNotConverged)
			return
		}
		dT = (target - f) / df
		T += dT
		if math.Abs(dT) <= NewtonTolerance*math.Max(1, math.Abs(T)) {
			return
		}
	}
	err = fmt.Errorf("%d Newton iterations, last update %8.5e K: %w", MaxNewtonIterations, dT, ErrNotConverged)
	return
}
