package btddod

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var ErrNotConverged = errors.New("iteration did not converge")

// IterativeOptions controls the stationary splitting iterations. An iterate is accepted
// once |rhs - A x|_inf <= Tolerance * max(1, |rhs|_inf).
type IterativeOptions struct {
	Tolerance     float64
	MaxIterations int
}

func DefaultIterativeOptions() IterativeOptions {
	return IterativeOptions{
		Tolerance:     1.e-12,
		MaxIterations: 500,
	}
}

type splitStep func(rhs, x, scratch []float64)

// BlockJacobi iterates x <- inv(D) (rhs - (L+U) x) starting from the contents of x.
// pivots and factors come from BlockDiagFactorize on the same values.
func (lay Layout) BlockJacobi(values []float64, pivots []int, factors, rhs, x []float64,
	opts IterativeOptions) (iterations int, err error) {
	step := func(rhs, x, scratch []float64) {
		lay.OffDiagMatvec(values, x, scratch)
		floats.SubTo(scratch, rhs, scratch)
		lay.BlockDiagSolve(pivots, factors, scratch, x)
	}
	return lay.iterate(values, rhs, x, opts, step)
}

// GaussSeidel iterates the forward block Gauss-Seidel splitting
// (D + L) x <- rhs - U x starting from the contents of x.
func (lay Layout) GaussSeidel(values []float64, pivots []int, factors, rhs, x []float64,
	opts IterativeOptions) (iterations int, err error) {
	step := func(rhs, x, scratch []float64) {
		lay.UpperOffTriangleMatvec(values, x, scratch)
		floats.SubTo(scratch, rhs, scratch)
		lay.LowerFullTriangleSolve(pivots, factors, values, scratch, x)
	}
	return lay.iterate(values, rhs, x, opts, step)
}

func (lay Layout) iterate(values, rhs, x []float64, opts IterativeOptions,
	step splitStep) (iterations int, err error) {
	var (
		n       = lay.VecLen()
		scratch = make([]float64, n)
		target  = opts.Tolerance * math.Max(1, floats.Norm(rhs[:n], math.Inf(1)))
		resid   float64
	)
	rhs, x = rhs[:n], x[:n]
	for iterations = 1; iterations <= opts.MaxIterations; iterations++ {
		step(rhs, x, scratch)
		if resid = lay.Residual(values, x, rhs, scratch); resid <= target {
			return
		}
	}
	iterations = opts.MaxIterations
	err = fmt.Errorf("%w: residual %8.5e after %d iterations, target %8.5e",
		ErrNotConverged, resid, iterations, target)
	return
}
