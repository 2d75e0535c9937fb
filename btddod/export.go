package btddod

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// forEachEntry visits every stored entry of the packed matrix with its global position.
func (lay Layout) forEachEntry(values []float64, fn func(row, col int, val float64)) {
	var (
		bs = lay.BlockSize
		nb = lay.NumBlocks
	)
	visit := func(block []float64, bi, bj int) {
		for r := 0; r < bs; r++ {
			for c := 0; c < bs; c++ {
				fn(bi*bs+r, bj*bs+c, block[r*bs+c])
			}
		}
	}
	for i := 0; i < nb; i++ {
		visit(lay.Diag(values, i), i, i)
	}
	for i := 0; i < nb-1; i++ {
		visit(lay.Upper(values, i), i, i+1)
		visit(lay.Lower(values, i), i+1, i)
	}
}

// ToDOK expands the packed matrix into a sparse dictionary-of-keys matrix, skipping
// explicit zeros.
func (lay Layout) ToDOK(values []float64) (dok *sparse.DOK) {
	n := lay.VecLen()
	dok = sparse.NewDOK(n, n)
	lay.forEachEntry(values, func(row, col int, val float64) {
		if val != 0 {
			dok.Set(row, col, val)
		}
	})
	return
}

func (lay Layout) ToCSR(values []float64) *sparse.CSR {
	return lay.ToDOK(values).ToCSR()
}

// ToDense expands the packed matrix into the equivalent full matrix.
func (lay Layout) ToDense(values []float64) (A *mat.Dense) {
	n := lay.VecLen()
	A = mat.NewDense(n, n, nil)
	lay.forEachEntry(values, func(row, col int, val float64) {
		A.Set(row, col, val)
	})
	return
}

// Residual writes r = rhs - A x and returns its max norm.
func (lay Layout) Residual(values, x, rhs, r []float64) float64 {
	n := lay.VecLen()
	lay.FullMatvec(values, x, r)
	floats.SubTo(r[:n], rhs[:n], r[:n])
	return floats.Norm(r[:n], math.Inf(1))
}
