package thermo

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/notargets/goflame/utils"
)

// ProfileEvaluator applies the mixture kernels to every point of a 1D profile. Points are
// split into ParallelDegree contiguous buckets, each handled by one goroutine.
// Mass fractions are point-major: Y[k*ns+i] is species i at point k.
type ProfileEvaluator struct {
	Mech           *Mechanism
	ParallelDegree int
}

func NewProfileEvaluator(m *Mechanism, parallelDegreeO ...int) (pe *ProfileEvaluator) {
	pe = &ProfileEvaluator{
		Mech:           m,
		ParallelDegree: runtime.NumCPU(),
	}
	if len(parallelDegreeO) != 0 && parallelDegreeO[0] > 0 {
		pe.ParallelDegree = parallelDegreeO[0]
	}
	return
}

func (pe *ProfileEvaluator) partition(K int) *utils.PartitionMap {
	NP := pe.ParallelDegree
	if NP > K {
		NP = K
	}
	if NP < 1 {
		NP = 1
	}
	return utils.NewPartitionMap(NP, K)
}

// EnthalpyAndCp fills h[k] and cp[k] with the mixture enthalpy and heat capacity at
// point k.
func (pe *ProfileEvaluator) EnthalpyAndCp(T, Y, h, cp []float64) {
	var (
		K  = len(T)
		ns = pe.Mech.NumSpecies()
		pm = pe.partition(K)
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				y := Y[k*ns : (k+1)*ns]
				h[k] = pe.Mech.EnthalpyMix(T[k], y)
				cp[k] = pe.Mech.CpMix(T[k], y)
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
}

// Temperatures inverts the mixture enthalpy at every point. T carries the initial guesses
// in and the temperatures out. The first failing point, in point order, is reported.
func (pe *ProfileEvaluator) Temperatures(h, Y, T []float64) (err error) {
	var (
		K    = len(T)
		ns   = pe.Mech.NumSpecies()
		pm   = pe.partition(K)
		wg   = sync.WaitGroup{}
		errs = make([]error, pm.ParallelDegree)
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				t, e := pe.Mech.TemperatureFromEnthalpy(h[k], Y[k*ns:(k+1)*ns], T[k])
				if e != nil {
					errs[np] = fmt.Errorf("point %d: %w", k, e)
					break
				}
				T[k] = t
			}
			wg.Done()
		}(np)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return
}
