package btddod

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// ConditionTolerance is the largest block condition number accepted during factorization.
const ConditionTolerance = mat.ConditionTolerance

var ErrSingularBlock = errors.New("singular diagonal block")

// SingularBlockError reports the first diagonal block, after elimination updates, whose
// pivoted LU is exactly singular or whose estimated condition number exceeds
// ConditionTolerance.
type SingularBlockError struct {
	Block int
	Cond  float64
}

func (e *SingularBlockError) Error() string {
	if math.IsInf(e.Cond, 1) {
		return fmt.Sprintf("singular block at index %d: zero pivot", e.Block)
	}
	return fmt.Sprintf("singular block at index %d: condition number %8.5e exceeds %8.5e",
		e.Block, e.Cond, ConditionTolerance)
}

func (e *SingularBlockError) Is(target error) bool {
	return target == ErrSingularBlock
}

// blockLU holds the scratch space needed to factor one block and estimate its condition.
type blockLU struct {
	work  []float64
	iwork []int
}

func newBlockLU(bs int) *blockLU {
	return &blockLU{
		work:  make([]float64, 4*bs),
		iwork: make([]int, bs),
	}
}

// factor replaces a with its pivoted LU factors. It follows gonum's mat.LU: the 1-norm of
// the block is taken before Getrf and fed to Gecon afterwards.
func (lu *blockLU) factor(a blas64.General, ipiv []int) (cond float64, ok bool) {
	anorm := lapack64.Lange(lapack.MaxColumnSum, a, lu.work[:a.Cols])
	if !lapack64.Getrf(a, ipiv) {
		return math.Inf(1), false
	}
	rcond := lapack64.Gecon(lapack.MaxColumnSum, a, anorm, lu.work, lu.iwork)
	if rcond == 0 {
		return math.Inf(1), false
	}
	cond = 1 / rcond
	return cond, cond <= ConditionTolerance
}

func luSolve(a blas64.General, ipiv []int, b blas64.General) {
	lapack64.Getrs(blas.NoTrans, a, b, ipiv)
}

// rightDivide overwrites b with b * inv(A) where a holds the LU factors of A.
// (b A^-1)^T = A^-T b^T, so b is transposed, solved against A^T and transposed back.
func rightDivide(a blas64.General, ipiv []int, b blas64.General) {
	transposeInPlace(b)
	lapack64.Getrs(blas.Trans, a, b, ipiv)
	transposeInPlace(b)
}

func transposeInPlace(b blas64.General) {
	for r := 0; r < b.Rows; r++ {
		for c := r + 1; c < b.Cols; c++ {
			i, j := r*b.Stride+c, c*b.Stride+r
			b.Data[i], b.Data[j] = b.Data[j], b.Data[i]
		}
	}
}
