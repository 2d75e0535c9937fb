package btddod

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Factors holds the block-Thomas factorization of a packed matrix:
//
//	L      NumBlocks-1 elimination multipliers M_i = L_i * inv(D'_i), row-major blocks
//	Pivots BlockSize row swaps per diagonal block, zero-indexed LAPACK convention
//	D      pivoted LU factors of the updated diagonal blocks D'_i
//
// Factors are valid only until the matrix values are modified.
type Factors struct {
	Layout
	L      []float64
	Pivots []int
	D      []float64
}

func NewFactors(lay Layout) (f *Factors) {
	var (
		nb = lay.NumBlocks
		bl = lay.blockLen()
	)
	f = &Factors{
		Layout: lay,
		L:      make([]float64, (nb-1)*bl),
		Pivots: make([]int, nb*lay.BlockSize),
		D:      make([]float64, nb*bl),
	}
	return
}

func (f *Factors) multiplier(i int) []float64 {
	bl := f.blockLen()
	return f.L[i*bl : (i+1)*bl]
}

func (f *Factors) diag(i int) []float64 {
	bl := f.blockLen()
	return f.D[i*bl : (i+1)*bl]
}

func (f *Factors) pivots(i int) []int {
	return f.Pivots[i*f.BlockSize : (i+1)*f.BlockSize]
}

// Factorize computes the block LU factorization of the packed matrix into f, sweeping
// blocks in increasing order:
//
//	D'_0     = D_0
//	M_i      = L_i * inv(D'_i)
//	D'_{i+1} = D_{i+1} - M_i * U_i
//
// with each D'_i factored by partial-pivoted LU. The sweep stops at the first block that
// is singular to working precision and returns a *SingularBlockError naming it.
func (lay Layout) Factorize(values []float64, f *Factors) (err error) {
	var (
		nb = lay.NumBlocks
		lu = newBlockLU(lay.BlockSize)
	)
	if debugChecks {
		assertLen("Factorize values", len(values), lay.Len())
		assertLen("Factorize multipliers", len(f.L), (nb-1)*lay.blockLen())
		assertLen("Factorize pivots", len(f.Pivots), lay.VecLen())
		assertLen("Factorize factors", len(f.D), lay.BlockDiagLen())
	}
	copy(f.diag(0), lay.Diag(values, 0))
	for i := 0; i < nb; i++ {
		dFac := lay.general(f.diag(i))
		if cond, ok := lu.factor(dFac, f.pivots(i)); !ok {
			err = &SingularBlockError{Block: i, Cond: cond}
			return
		}
		if i == nb-1 {
			break
		}
		m := lay.general(f.multiplier(i))
		copy(m.Data, lay.Lower(values, i))
		rightDivide(dFac, f.pivots(i), m)
		next := lay.general(f.diag(i + 1))
		copy(next.Data, lay.Diag(values, i+1))
		blas64.Gemm(blas.NoTrans, blas.NoTrans, -1, m, lay.general(lay.Upper(values, i)), 1, next)
	}
	return
}

// Solve computes x such that A x = rhs, using factors produced by Factorize on the same
// values. x may be the same slice as rhs.
func (lay Layout) Solve(values []float64, f *Factors, rhs, x []float64) {
	var (
		nb = lay.NumBlocks
	)
	if debugChecks {
		assertLen("Solve values", len(values), lay.Len())
		assertLen("Solve rhs", len(rhs), lay.VecLen())
		assertLen("Solve solution", len(x), lay.VecLen())
	}
	copy(x, rhs)
	// Forward sweep: z_{i+1} = b_{i+1} - M_i z_i
	for i := 0; i < nb-1; i++ {
		blas64.Gemv(blas.NoTrans, -1, lay.general(f.multiplier(i)), lay.vector(x, i), 1, lay.vector(x, i+1))
	}
	// Backward sweep: x_i = inv(D'_i) (z_i - U_i x_{i+1})
	for i := nb - 1; i >= 0; i-- {
		if i < nb-1 {
			blas64.Gemv(blas.NoTrans, -1, lay.general(lay.Upper(values, i)), lay.vector(x, i+1), 1, lay.vector(x, i))
		}
		luSolve(lay.general(f.diag(i)), f.pivots(i), lay.column(x, i))
	}
}

// FactorizeAndSolve is a convenience for one-shot solves that allocates its own factors.
func (lay Layout) FactorizeAndSolve(values, rhs []float64) (x []float64, f *Factors, err error) {
	f = NewFactors(lay)
	if err = lay.Factorize(values, f); err != nil {
		return
	}
	x = make([]float64, lay.VecLen())
	lay.Solve(values, f, rhs, x)
	return
}
