package Diffusion1D

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goflame/InputParameters"
	"github.com/notargets/goflame/btddod"
	"github.com/notargets/goflame/thermo"
	"github.com/notargets/goflame/types"
	"github.com/notargets/goflame/utils"
)

type SolverType uint8

const (
	Direct SolverType = iota
	GaussSeidel
	BlockJacobi
)

var SolverNames = map[string]SolverType{
	"":             Direct,
	"direct":       Direct,
	"thomas":       Direct,
	"gauss-seidel": GaussSeidel,
	"gs":           GaussSeidel,
	"jacobi":       BlockJacobi,
}

func NewSolverType(label string) (st SolverType, err error) {
	var ok bool
	if st, ok = SolverNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unable to use solver named %s", label)
	}
	return
}

func (st SolverType) String() string {
	switch st {
	case GaussSeidel:
		return "Gauss-Seidel"
	case BlockJacobi:
		return "block Jacobi"
	}
	return "block Thomas"
}

/*
Diffusion advances enthalpy and mass fractions on a uniform grid of K cells with the
backward Euler step

	(I - dt D Lap) Q^{n+1} = Q^n

where the state of cell k is Q_k = [h, Y_1 .. Y_ns]. Every component diffuses with the
same coefficient, so the Laplacian couples neighbouring cells through sigma*I blocks and
the step matrix is block tridiagonal with block size ns+1.

A Dirichlet end keeps its initial state, a Neuman end has zero flux. With two Neuman ends
the discrete operator has zero column sums and the cell totals of every component are
conserved to solver precision.
*/
type Diffusion struct {
	Mech                 *thermo.Mechanism
	K, Ns                int
	Dx, D, DT, FinalTime float64
	Pressure             float64
	MaxSteps             int
	LogInterval          int
	Solver               SolverType
	Opts                 btddod.IterativeOptions
	BCs                  [2]types.BCFLAG
	Layout               btddod.Layout
	Q                    []float64 // Point major state
	T                    []float64
	Time                 float64
	Steps                int
	values               []float64
	rhs, resid           []float64
	factors              *btddod.Factors
	pivots               []int
	bdFactors            []float64
	profile              *thermo.ProfileEvaluator
	enthalpy             []float64
	massFractions        []float64
}

func NewDiffusion(ip *InputParameters.InputParameters1D, parallelDegreeO ...int) (c *Diffusion, err error) {
	var (
		mech   *thermo.Mechanism
		yl, yr []float64
	)
	if mech, err = ip.Thermo.Mechanism(); err != nil {
		return
	}
	c = &Diffusion{
		Mech:        mech,
		K:           ip.K,
		Ns:          mech.NumSpecies(),
		D:           ip.Diffusivity,
		DT:          ip.DT,
		FinalTime:   ip.FinalTime,
		Pressure:    ip.Pressure,
		MaxSteps:    ip.MaxSteps,
		LogInterval: ip.LogInterval,
		Opts:        btddod.DefaultIterativeOptions(),
		BCs:         [2]types.BCFLAG{types.BC_Neuman, types.BC_Neuman},
		profile:     thermo.NewProfileEvaluator(mech, parallelDegreeO...),
	}
	length := ip.Length
	if length == 0 {
		length = 1
	}
	if c.K == 0 {
		c.K = 100
	}
	if c.K < 2 {
		return nil, fmt.Errorf("need at least two cells, have K = %d", c.K)
	}
	c.Dx = length / float64(c.K)
	if c.D <= 0 {
		return nil, fmt.Errorf("diffusivity must be positive, have %8.5e", c.D)
	}
	if c.DT == 0 {
		// Ten times the explicit stability limit
		c.DT = 10 * 0.5 * c.Dx * c.Dx / c.D
	}
	if c.Pressure == 0 {
		c.Pressure = 101325
	}
	if c.LogInterval == 0 {
		c.LogInterval = 50
	}
	if ip.Tolerance != 0 {
		c.Opts.Tolerance = ip.Tolerance
	}
	if ip.MaxIterations != 0 {
		c.Opts.MaxIterations = ip.MaxIterations
	}
	if c.Solver, err = NewSolverType(ip.Solver); err != nil {
		return nil, err
	}
	for i, side := range []string{"Left", "Right"} {
		label, ok := ip.BCs[side]
		if !ok {
			continue
		}
		if c.BCs[i], err = types.NewBCFlag(label); err != nil {
			return nil, err
		}
	}
	if yl, err = ip.Left.MassFractions(mech); err != nil {
		return nil, err
	}
	if yr, err = ip.Right.MassFractions(mech); err != nil {
		return nil, err
	}
	c.Layout = btddod.NewLayout(c.K, c.Ns+1)
	c.initialize(ip.Left.T, yl, ip.Right.T, yr)
	if err = c.assemble(); err != nil {
		return nil, err
	}
	return
}

// initialize places the left state in the first half of the domain and the right state
// in the second.
func (c *Diffusion) initialize(tl float64, yl []float64, tr float64, yr []float64) {
	var (
		nb = c.Ns + 1
	)
	c.Q = make([]float64, c.Layout.VecLen())
	c.T = make([]float64, c.K)
	c.rhs = make([]float64, c.Layout.VecLen())
	c.resid = make([]float64, c.Layout.VecLen())
	c.enthalpy = make([]float64, c.K)
	c.massFractions = make([]float64, c.K*c.Ns)
	for k := 0; k < c.K; k++ {
		t, y := tl, yl
		if k >= c.K/2 {
			t, y = tr, yr
		}
		c.T[k] = t
		q := c.Q[k*nb : (k+1)*nb]
		q[0] = c.Mech.EnthalpyMix(t, y)
		copy(q[1:], y)
	}
	c.unpack()
}

// assemble builds and factors I - dt D Lap. The operator is constant, so this runs once.
func (c *Diffusion) assemble() (err error) {
	var (
		lay   = c.Layout
		nb    = lay.BlockSize
		sigma = c.D / (c.Dx * c.Dx)
		ones  = utils.ConstArray(lay.VecLen(), 1)
	)
	c.values = make([]float64, lay.Len())
	for k := 0; k < c.K; k++ {
		var (
			diag = -2 * sigma
		)
		switch {
		case k == 0 && c.BCs[0] == types.BC_Dirichlet, k == c.K-1 && c.BCs[1] == types.BC_Dirichlet:
			diag = 0
		case k == 0 || k == c.K-1:
			diag = -sigma
		}
		for r := 0; r < nb; r++ {
			lay.Diag(c.values, k)[r*nb+r] = diag
			if k == c.K-1 {
				continue
			}
			// Row k couples to k+1 unless k is a held end, row k+1 to k likewise
			if !(k == 0 && c.BCs[0] == types.BC_Dirichlet) {
				lay.Upper(c.values, k)[r*nb+r] = sigma
			}
			if !(k+1 == c.K-1 && c.BCs[1] == types.BC_Dirichlet) {
				lay.Lower(c.values, k)[r*nb+r] = sigma
			}
		}
	}
	lay.ScaleAndAddDiagonal(c.values, -c.DT, ones, 1)

	switch c.Solver {
	case Direct:
		c.factors = btddod.NewFactors(lay)
		err = lay.Factorize(c.values, c.factors)
	default:
		c.pivots = make([]int, lay.VecLen())
		c.bdFactors = make([]float64, lay.BlockDiagLen())
		err = lay.BlockDiagFactorize(c.values, c.pivots, c.bdFactors)
	}
	return
}

// Step advances one time step and recovers the temperature profile. It returns the
// number of iterations taken by an iterative solver, zero for the direct one.
func (c *Diffusion) Step() (iterations int, err error) {
	var (
		lay = c.Layout
	)
	copy(c.rhs, c.Q)
	switch c.Solver {
	case Direct:
		lay.Solve(c.values, c.factors, c.rhs, c.Q)
	case GaussSeidel:
		iterations, err = lay.GaussSeidel(c.values, c.pivots, c.bdFactors, c.rhs, c.Q, c.Opts)
	case BlockJacobi:
		iterations, err = lay.BlockJacobi(c.values, c.pivots, c.bdFactors, c.rhs, c.Q, c.Opts)
	}
	if err != nil {
		return
	}
	if i := utils.FirstNaN(c.Q); i != -1 {
		err = fmt.Errorf("non finite state at cell %d after step %d", i/lay.BlockSize, c.Steps)
		return
	}
	c.unpack()
	if err = c.profile.Temperatures(c.enthalpy, c.massFractions, c.T); err != nil {
		return
	}
	c.Time += c.DT
	c.Steps++
	return
}

func (c *Diffusion) unpack() {
	nb := c.Ns + 1
	for k := 0; k < c.K; k++ {
		c.enthalpy[k] = c.Q[k*nb]
		copy(c.massFractions[k*c.Ns:(k+1)*c.Ns], c.Q[k*nb+1:(k+1)*nb])
	}
}

// Residual is the max norm of the last step's linear system residual.
func (c *Diffusion) Residual() float64 {
	return c.Layout.Residual(c.values, c.Q, c.rhs, c.resid)
}

func (c *Diffusion) Run(showGraph bool) {
	var (
		start  = time.Now()
		nSteps = int(math.Ceil(c.FinalTime/c.DT - 1.e-9))
		iters  int
		err    error
	)
	if c.MaxSteps != 0 && nSteps > c.MaxSteps {
		nSteps = c.MaxSteps
	}
	fmt.Printf("K = %d, species = %d, dx = %8.5e, dt = %8.5e, solver = %s, BCs = %v\n",
		c.K, c.Ns, c.Dx, c.DT, c.Solver, c.BCs)
	for tstep := 0; tstep < nSteps; tstep++ {
		if iters, err = c.Step(); err != nil {
			panic(err)
		}
		if tstep%c.LogInterval == 0 || tstep == nSteps-1 {
			rho := c.Mech.IdealGasDensity(c.Pressure, c.T[0], c.MassFractions(0))
			fmt.Printf("Time = %8.5f, max_resid[%d] = %8.5e, iterations = %d, Tmin = %8.3f, Tmax = %8.3f, rho[0] = %8.5f\n",
				c.Time, tstep, c.Residual(), iters, floats.Min(c.T), floats.Max(c.T), rho)
		}
	}
	fmt.Printf("%d steps in %v, %s\n", c.Steps, time.Since(start), utils.GetMemUsage())
	if showGraph {
		fmt.Println(c.Plot())
	}
}

// Plot draws the temperature profile for the terminal.
func (c *Diffusion) Plot() string {
	return asciigraph.Plot(c.T,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("T(x), time = %8.5f", c.Time)))
}

func (c *Diffusion) Enthalpy() []float64 {
	return c.enthalpy
}

// MassFractions returns the mass fractions of cell k.
func (c *Diffusion) MassFractions(k int) []float64 {
	nb := c.Ns + 1
	return c.Q[k*nb+1 : (k+1)*nb]
}

// Total integrates component n of the state over the domain, n = 0 is enthalpy and
// n = i+1 species i.
func (c *Diffusion) Total(n int) (total float64) {
	nb := c.Ns + 1
	for k := 0; k < c.K; k++ {
		total += c.Q[k*nb+n]
	}
	return total * c.Dx
}
