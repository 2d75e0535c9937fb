// Package btddod implements factorization, solves and matrix-vector products for
// block-tridiagonal, diagonally dominant matrices stored in one packed buffer.
//
// Packing is diagonal-block-major. For NumBlocks = n and BlockSize = bs the buffer holds
//
//	D_0 .. D_{n-1}  diagonal blocks
//	U_0 .. U_{n-2}  super-diagonal blocks, U_i couples block row i to block column i+1
//	L_0 .. L_{n-2}  sub-diagonal blocks, L_i couples block row i+1 to block column i
//
// and every block is a row-major bs x bs run of contiguous float64 values, for a total
// length of bs*bs*(3n-2). Vectors are n*bs long, block i occupying [i*bs, (i+1)*bs).
//
// Buffer lengths are a caller obligation and are only asserted when built with
// -tags debugchecks. Diagonal dominance is assumed and never verified.
package btddod

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
)

type Layout struct {
	NumBlocks, BlockSize int
}

func NewLayout(numBlocks, blockSize int) (lay Layout) {
	if numBlocks < 1 || blockSize < 1 {
		panic(fmt.Errorf("invalid block-tridiagonal layout: num_blocks = %d, block_size = %d",
			numBlocks, blockSize))
	}
	return Layout{NumBlocks: numBlocks, BlockSize: blockSize}
}

// Len is the length of the packed matrix buffer.
func (lay Layout) Len() int {
	return lay.blockLen() * (3*lay.NumBlocks - 2)
}

// VecLen is the number of unknowns, the length of every vector argument.
func (lay Layout) VecLen() int {
	return lay.NumBlocks * lay.BlockSize
}

// BlockDiagLen is the length of a buffer holding only the NumBlocks dense diagonal blocks.
func (lay Layout) BlockDiagLen() int {
	return lay.NumBlocks * lay.blockLen()
}

func (lay Layout) blockLen() int { return lay.BlockSize * lay.BlockSize }

func (lay Layout) DiagOffset(i int) int {
	return i * lay.blockLen()
}

func (lay Layout) UpperOffset(i int) int {
	return (lay.NumBlocks + i) * lay.blockLen()
}

func (lay Layout) LowerOffset(i int) int {
	return (2*lay.NumBlocks - 1 + i) * lay.blockLen()
}

// Diag, Upper and Lower return row-major views sharing storage with values.
func (lay Layout) Diag(values []float64, i int) []float64 {
	off := lay.DiagOffset(i)
	return values[off : off+lay.blockLen()]
}

func (lay Layout) Upper(values []float64, i int) []float64 {
	off := lay.UpperOffset(i)
	return values[off : off+lay.blockLen()]
}

func (lay Layout) Lower(values []float64, i int) []float64 {
	off := lay.LowerOffset(i)
	return values[off : off+lay.blockLen()]
}

// Set places val at global row, col of the matrix. The position must lie inside the band.
func (lay Layout) Set(values []float64, row, col int, val float64) {
	values[lay.index(row, col)] = val
}

// At returns the value at global row, col, zero outside the band.
func (lay Layout) At(values []float64, row, col int) float64 {
	bi, bj := row/lay.BlockSize, col/lay.BlockSize
	if bj-bi > 1 || bi-bj > 1 {
		return 0
	}
	return values[lay.index(row, col)]
}

func (lay Layout) index(row, col int) int {
	var (
		bs     = lay.BlockSize
		bi, bj = row / bs, col / bs
		r, c   = row - bi*bs, col - bj*bs
		off    int
	)
	switch bj - bi {
	case 0:
		off = lay.DiagOffset(bi)
	case 1:
		off = lay.UpperOffset(bi)
	case -1:
		off = lay.LowerOffset(bj)
	default:
		panic(fmt.Errorf("position [%d,%d] is outside the block-tridiagonal band", row, col))
	}
	return off + r*bs + c
}

func (lay Layout) general(block []float64) blas64.General {
	return blas64.General{
		Rows:   lay.BlockSize,
		Cols:   lay.BlockSize,
		Stride: lay.BlockSize,
		Data:   block,
	}
}

func (lay Layout) segment(v []float64, i int) []float64 {
	return v[i*lay.BlockSize : (i+1)*lay.BlockSize]
}

func (lay Layout) vector(v []float64, i int) blas64.Vector {
	return blas64.Vector{N: lay.BlockSize, Inc: 1, Data: lay.segment(v, i)}
}

// column views a segment as a BlockSize x 1 right hand side for Getrs.
func (lay Layout) column(v []float64, i int) blas64.General {
	return blas64.General{Rows: lay.BlockSize, Cols: 1, Stride: 1, Data: lay.segment(v, i)}
}
