package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/goflame/thermo"
)

// Parameters obtained from the YAML input file. Keys follow the json tags, which is what
// ghodss/yaml matches against after converting the document.
type InputParameters1D struct {
	Title         string            `json:"Title"`
	K             int               `json:"K"` // Grid points
	Length        float64           `json:"Length"`
	Diffusivity   float64           `json:"Diffusivity"`
	DT            float64           `json:"DT"`
	FinalTime     float64           `json:"FinalTime"`
	MaxSteps      int               `json:"MaxSteps"`
	LogInterval   int               `json:"LogInterval"`
	Solver        string            `json:"Solver"` // direct, gauss-seidel or jacobi
	Tolerance     float64           `json:"Tolerance"`
	MaxIterations int               `json:"MaxIterations"`
	BCs           map[string]string `json:"BCs"` // Left and Right
	Pressure      float64           `json:"Pressure"`
	Left          MixtureState      `json:"Left"`
	Right         MixtureState      `json:"Right"`
	Thermo        ThermoTable       `json:"Thermo"`
}

// MixtureState is an initial condition, species not named have zero mass fraction.
// The deck key is MassFractions: a bare Y is the boolean true to the YAML 1.1 decoder.
type MixtureState struct {
	T float64            `json:"T"`
	Y map[string]float64 `json:"MassFractions"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%d\t\t\t= K\n", ip.K)
	fmt.Printf("%8.5f\t\t= Length\n", ip.Length)
	fmt.Printf("%8.5e\t\t= Diffusivity\n", ip.Diffusivity)
	fmt.Printf("%8.5e\t\t= DT\n", ip.DT)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%s]\t\t= Solver\n", ip.Solver)
	keys := make([]string, 0, len(ip.BCs))
	for k := range ip.BCs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
	fmt.Printf("Left:  T = %8.3f, Y = %v\n", ip.Left.T, ip.Left.Y)
	fmt.Printf("Right: T = %8.3f, Y = %v\n", ip.Right.T, ip.Right.Y)
	ip.Thermo.Print()
}

/*
ThermoTable holds already fitted species closures. A NASA7 species is given either as the
14 pre-scaled coefficients, or as textbook Low/High sets of 7 with Tmid:

	Thermo:
	  Species:
	    - Name: N2
	      Type: nasa7
	      MW: 28.0134
	      MinT: 300
	      MaxT: 5000
	      Tmid: 1000
	      Low: [3.298677, 1.4082404e-3, -3.963222e-6, 5.641515e-9, -2.444854e-12, -1020.8999, 3.950372]
	      High: [2.92664, 1.4879768e-3, -5.68476e-7, 1.0097038e-10, -6.753351e-15, -922.7977, 5.980528]
	    - Name: INERT
	      Type: constant
	      MW: 10
	      Tref: 300
	      Href: 0
	      Cp: 29000
*/
type ThermoTable struct {
	Ru      float64        `json:"Ru"`
	Species []SpeciesEntry `json:"Species"`
}

type SpeciesEntry struct {
	Name         string    `json:"Name"`
	Type         string    `json:"Type"`
	MW           float64   `json:"MW"`
	MinT         float64   `json:"MinT"`
	MaxT         float64   `json:"MaxT"`
	Coefficients []float64 `json:"Coefficients"`
	Tmid         float64   `json:"Tmid"`
	Low          []float64 `json:"Low"`
	High         []float64 `json:"High"`
	Tref         float64   `json:"Tref"`
	Href         float64   `json:"Href"`
	Cp           float64   `json:"Cp"`
}

func (tt *ThermoTable) Parse(data []byte) error {
	return yaml.Unmarshal(data, tt)
}

func (tt *ThermoTable) GasConstant() float64 {
	if tt.Ru == 0 {
		return thermo.UniversalGasConstant
	}
	return tt.Ru
}

func (tt *ThermoTable) Print() {
	for _, se := range tt.Species {
		fmt.Printf("Species[%s]: %s, MW = %8.4f, T in [%8.2f, %8.2f]\n", se.Name, se.Type, se.MW, se.MinT, se.MaxT)
	}
}

func (se SpeciesEntry) ToSpecies(ru float64) (sp thermo.Species, err error) {
	var (
		pt thermo.PolyType
	)
	if pt, err = thermo.NewPolyType(se.Type); err != nil {
		return
	}
	if se.MW <= 0 {
		err = fmt.Errorf("species \"%s\": molecular weight must be positive, have %g", se.Name, se.MW)
		return
	}
	sp = thermo.Species{
		Name:               se.Name,
		Type:               pt,
		MinT:               se.MinT,
		MaxT:               se.MaxT,
		InvMolecularWeight: 1. / se.MW,
	}
	switch {
	case len(se.Coefficients) != 0:
		sp.Coefficients = append([]float64{}, se.Coefficients...)
	case pt == thermo.Constant:
		sp.Coefficients = thermo.ConstantCp(se.Tref, se.Href, se.Cp)
	case pt == thermo.NASA7:
		if len(se.Low) != 7 || len(se.High) != 7 {
			err = fmt.Errorf("species \"%s\": NASA7 needs 7 Low and 7 High coefficients, have %d and %d",
				se.Name, len(se.Low), len(se.High))
			return
		}
		var low, high [7]float64
		copy(low[:], se.Low)
		copy(high[:], se.High)
		sp.Coefficients = thermo.NASA7FromStandard(se.Tmid, low, high, ru)
	}
	return
}

func (tt *ThermoTable) Mechanism() (m *thermo.Mechanism, err error) {
	var (
		ru      = tt.GasConstant()
		species = make([]thermo.Species, len(tt.Species))
	)
	for i, se := range tt.Species {
		if species[i], err = se.ToSpecies(ru); err != nil {
			return
		}
	}
	return thermo.NewMechanism(species, ru)
}

// MassFractions orders a named composition by the mechanism's species.
func (ms MixtureState) MassFractions(m *thermo.Mechanism) (y []float64, err error) {
	y = make([]float64, m.NumSpecies())
	for name, val := range ms.Y {
		i := m.SpeciesIndex(name)
		if i < 0 {
			err = fmt.Errorf("unknown species \"%s\" in initial state", name)
			return
		}
		y[i] = val
	}
	return
}
