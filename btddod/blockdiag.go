package btddod

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// BlockDiagFactorize factors every diagonal block independently, ignoring the coupling
// blocks. pivots holds VecLen() ints and factors BlockDiagLen() values on return.
func (lay Layout) BlockDiagFactorize(values []float64, pivots []int, factors []float64) (err error) {
	var (
		bs = lay.BlockSize
		lu = newBlockLU(bs)
	)
	if debugChecks {
		assertLen("BlockDiagFactorize values", len(values), lay.BlockDiagLen())
		assertLen("BlockDiagFactorize pivots", len(pivots), lay.VecLen())
		assertLen("BlockDiagFactorize factors", len(factors), lay.BlockDiagLen())
	}
	copy(factors, values[:lay.BlockDiagLen()])
	for i := 0; i < lay.NumBlocks; i++ {
		if cond, ok := lu.factor(lay.general(lay.Diag(factors, i)), pivots[i*bs:(i+1)*bs]); !ok {
			err = &SingularBlockError{Block: i, Cond: cond}
			return
		}
	}
	return
}

// BlockDiagSolve applies the inverse of the block diagonal: x_i = inv(D_i) rhs_i.
// x may be the same slice as rhs.
func (lay Layout) BlockDiagSolve(pivots []int, factors, rhs, x []float64) {
	var (
		bs = lay.BlockSize
	)
	copy(x, rhs)
	for i := 0; i < lay.NumBlocks; i++ {
		luSolve(lay.general(lay.Diag(factors, i)), pivots[i*bs:(i+1)*bs], lay.column(x, i))
	}
}

// LowerFullTriangleSolve solves (D + L) x = rhs by forward substitution, with the diagonal
// blocks already factored by BlockDiagFactorize. x may be the same slice as rhs.
func (lay Layout) LowerFullTriangleSolve(pivots []int, factors, values, rhs, x []float64) {
	var (
		bs = lay.BlockSize
	)
	copy(x, rhs)
	for i := 0; i < lay.NumBlocks; i++ {
		if i > 0 {
			blas64.Gemv(blas.NoTrans, -1, lay.general(lay.Lower(values, i-1)), lay.vector(x, i-1), 1, lay.vector(x, i))
		}
		luSolve(lay.general(lay.Diag(factors, i)), pivots[i*bs:(i+1)*bs], lay.column(x, i))
	}
}

// UpperFullTriangleSolve solves (D + U) x = rhs by backward substitution.
func (lay Layout) UpperFullTriangleSolve(pivots []int, factors, values, rhs, x []float64) {
	var (
		bs = lay.BlockSize
		nb = lay.NumBlocks
	)
	copy(x, rhs)
	for i := nb - 1; i >= 0; i-- {
		if i < nb-1 {
			blas64.Gemv(blas.NoTrans, -1, lay.general(lay.Upper(values, i)), lay.vector(x, i+1), 1, lay.vector(x, i))
		}
		luSolve(lay.general(lay.Diag(factors, i)), pivots[i*bs:(i+1)*bs], lay.column(x, i))
	}
}
