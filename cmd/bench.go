/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/goflame/btddod"
	"github.com/notargets/goflame/utils"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the block tridiagonal factorization and solvers",
	Long: `
Builds a random block diagonally dominant matrix, then times the direct block Thomas solve
and the Gauss-Seidel iteration, checking each answer against a sparse CSR product,

goflame bench -k 1000 -b 10 -r 5 --profile cpu`,
	Run: func(cmd *cobra.Command, args []string) {
		nb, _ := cmd.Flags().GetInt("k")
		bs, _ := cmd.Flags().GetInt("b")
		repeats, _ := cmd.Flags().GetInt("r")
		seed, _ := cmd.Flags().GetInt64("seed")
		defer startProfile().Stop()
		br, err := RunBench(nb, bs, repeats, seed)
		if err != nil {
			panic(err)
		}
		br.Print()
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().IntP("k", "k", 1000, "number of diagonal blocks")
	BenchCmd.Flags().IntP("b", "b", 8, "block size")
	BenchCmd.Flags().IntP("r", "r", 3, "repetitions")
	BenchCmd.Flags().Int64("seed", 1, "random seed")
}

type BenchResult struct {
	NumBlocks, BlockSize int
	Factorize, Solve     time.Duration
	GaussSeidel          time.Duration
	Iterations           int
	DirectResid, GSResid float64
}

// RandomDominant fills a packed matrix with uniform entries in [-1, 1] and makes every
// diagonal entry exceed its row's off diagonal sum.
func RandomDominant(rng *rand.Rand, lay btddod.Layout) (values []float64) {
	var (
		n = lay.VecLen()
	)
	values = make([]float64, lay.Len())
	for i := range values {
		values[i] = 2*rng.Float64() - 1
	}
	for row := 0; row < n; row++ {
		var sum float64
		for col := row - 2*lay.BlockSize; col < row+2*lay.BlockSize; col++ {
			if col >= 0 && col < n && col != row {
				sum += math.Abs(lay.At(values, row, col))
			}
		}
		lay.Set(values, row, row, sum+1)
	}
	return
}

// csrResidual is max|rhs - A x| using the sparse export of the matrix.
func csrResidual(lay btddod.Layout, values, x, rhs []float64) float64 {
	var (
		ax mat.VecDense
		n  = lay.VecLen()
	)
	ax.MulVec(lay.ToCSR(values), mat.NewVecDense(n, x))
	r := make([]float64, n)
	floats.SubTo(r, rhs, ax.RawVector().Data)
	return floats.Norm(r, math.Inf(1))
}

func RunBench(nb, bs, repeats int, seed int64) (br *BenchResult, err error) {
	var (
		rng    = rand.New(rand.NewSource(seed))
		lay    = btddod.NewLayout(nb, bs)
		values = RandomDominant(rng, lay)
		n      = lay.VecLen()
		rhs    = make([]float64, n)
		x      = make([]float64, n)
		f      = btddod.NewFactors(lay)
	)
	if repeats < 1 {
		repeats = 1
	}
	for i := range rhs {
		rhs[i] = 2*rng.Float64() - 1
	}
	br = &BenchResult{NumBlocks: nb, BlockSize: bs}
	for r := 0; r < repeats; r++ {
		start := time.Now()
		if err = lay.Factorize(values, f); err != nil {
			return
		}
		br.Factorize += time.Since(start)
		start = time.Now()
		lay.Solve(values, f, rhs, x)
		br.Solve += time.Since(start)
	}
	br.Factorize /= time.Duration(repeats)
	br.Solve /= time.Duration(repeats)
	br.DirectResid = csrResidual(lay, values, x, rhs)

	var (
		pivots  = make([]int, n)
		factors = make([]float64, lay.BlockDiagLen())
	)
	start := time.Now()
	if err = lay.BlockDiagFactorize(values, pivots, factors); err != nil {
		return
	}
	for i := range x {
		x[i] = 0
	}
	if br.Iterations, err = lay.GaussSeidel(values, pivots, factors, rhs, x, btddod.DefaultIterativeOptions()); err != nil {
		return
	}
	br.GaussSeidel = time.Since(start)
	br.GSResid = csrResidual(lay, values, x, rhs)
	return
}

func (br *BenchResult) Print() {
	fmt.Printf("%d blocks of %d x %d, %d unknowns\n", br.NumBlocks, br.BlockSize, br.BlockSize, br.NumBlocks*br.BlockSize)
	fmt.Printf("Factorize    = %v\n", br.Factorize)
	fmt.Printf("Solve        = %v, max_resid = %8.5e\n", br.Solve, br.DirectResid)
	fmt.Printf("Gauss-Seidel = %v, %d iterations, max_resid = %8.5e\n", br.GaussSeidel, br.Iterations, br.GSResid)
	fmt.Println(utils.GetMemUsage())
}
