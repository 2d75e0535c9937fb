package btddod

import (
	"gonum.org/v1/gonum/floats"
)

// ScaleAndAddScaledBlockDiagonal performs A <- matrixScale*A + diagScale*blockDiag in place,
// where blockDiag holds NumBlocks dense row-major blocks added onto the diagonal blocks.
// Any prior factorization of values is stale afterwards.
func (lay Layout) ScaleAndAddScaledBlockDiagonal(values []float64, matrixScale float64,
	blockDiag []float64, diagScale float64) {
	if debugChecks {
		assertLen("ScaleAndAddScaledBlockDiagonal values", len(values), lay.Len())
		assertLen("ScaleAndAddScaledBlockDiagonal blockDiag", len(blockDiag), lay.BlockDiagLen())
	}
	values = values[:lay.Len()]
	floats.Scale(matrixScale, values)
	floats.AddScaled(values[:lay.BlockDiagLen()], diagScale, blockDiag[:lay.BlockDiagLen()])
}

// ScaleAndAddDiagonal performs A <- matrixScale*A + diagScale*diag(diagonal) in place, where
// diagonal holds one scalar per unknown placed on the true matrix diagonal.
func (lay Layout) ScaleAndAddDiagonal(values []float64, matrixScale float64,
	diagonal []float64, diagScale float64) {
	var (
		bs = lay.BlockSize
	)
	if debugChecks {
		assertLen("ScaleAndAddDiagonal values", len(values), lay.Len())
		assertLen("ScaleAndAddDiagonal diagonal", len(diagonal), lay.VecLen())
	}
	floats.Scale(matrixScale, values[:lay.Len()])
	for i := 0; i < lay.NumBlocks; i++ {
		d := lay.Diag(values, i)
		for j := 0; j < bs; j++ {
			d[j*bs+j] += diagScale * diagonal[i*bs+j]
		}
	}
}
