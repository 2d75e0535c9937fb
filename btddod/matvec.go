package btddod

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Band selects the structural parts of the matrix taking part in a product.
type Band uint8

const (
	BandDiag Band = 1 << iota
	BandUpper
	BandLower

	BandOff       = BandUpper | BandLower
	BandLowerFull = BandDiag | BandLower
	BandUpperFull = BandDiag | BandUpper
	BandFull      = BandDiag | BandUpper | BandLower
)

// Matvec computes y = M x where M is the restriction of the packed matrix to band.
// y must not share storage with x.
func (lay Layout) Matvec(band Band, values, x, y []float64) {
	var (
		nb = lay.NumBlocks
	)
	if debugChecks {
		assertLen("Matvec values", len(values), lay.Len())
		assertLen("Matvec x", len(x), lay.VecLen())
		assertLen("Matvec y", len(y), lay.VecLen())
	}
	for i := 0; i < nb; i++ {
		yi := lay.vector(y, i)
		beta := 0.
		if band&BandDiag != 0 {
			blas64.Gemv(blas.NoTrans, 1, lay.general(lay.Diag(values, i)), lay.vector(x, i), beta, yi)
			beta = 1
		}
		if band&BandUpper != 0 && i < nb-1 {
			blas64.Gemv(blas.NoTrans, 1, lay.general(lay.Upper(values, i)), lay.vector(x, i+1), beta, yi)
			beta = 1
		}
		if band&BandLower != 0 && i > 0 {
			blas64.Gemv(blas.NoTrans, 1, lay.general(lay.Lower(values, i-1)), lay.vector(x, i-1), beta, yi)
			beta = 1
		}
		if beta == 0 {
			for j := range yi.Data {
				yi.Data[j] = 0
			}
		}
	}
}

// FullMatvec computes y = A x over diagonal and both off-diagonal bands.
func (lay Layout) FullMatvec(values, x, y []float64) { lay.Matvec(BandFull, values, x, y) }

// BlockDiagMatvec uses only the diagonal blocks.
func (lay Layout) BlockDiagMatvec(values, x, y []float64) { lay.Matvec(BandDiag, values, x, y) }

// OffDiagMatvec uses only the super- and sub-diagonal blocks.
func (lay Layout) OffDiagMatvec(values, x, y []float64) { lay.Matvec(BandOff, values, x, y) }

func (lay Layout) LowerFullTriangleMatvec(values, x, y []float64) {
	lay.Matvec(BandLowerFull, values, x, y)
}

func (lay Layout) UpperFullTriangleMatvec(values, x, y []float64) {
	lay.Matvec(BandUpperFull, values, x, y)
}

func (lay Layout) LowerOffTriangleMatvec(values, x, y []float64) {
	lay.Matvec(BandLower, values, x, y)
}

func (lay Layout) UpperOffTriangleMatvec(values, x, y []float64) {
	lay.Matvec(BandUpper, values, x, y)
}
