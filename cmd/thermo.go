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
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/notargets/goflame/InputParameters"
	"github.com/notargets/goflame/thermo"
	"github.com/notargets/goflame/utils"
)

// ThermoCmd represents the thermo command
var ThermoCmd = &cobra.Command{
	Use:   "thermo",
	Short: "Tabulate mixture properties over a temperature range",
	Long: `
Reads a thermo table and prints cp, cv, h, e and dcp/dT of a mixture over a temperature sweep,

goflame thermo -I air.yaml -y N2=0.767,O2=0.233 --tMin 200 --tMax 4000`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err  error
			data []byte
			tt   InputParameters.ThermoTable
			m    *thermo.Mechanism
			y    []float64
		)
		fileName, _ := cmd.Flags().GetString("inputConditionsFile")
		if len(fileName) == 0 {
			fmt.Println("error: must supply a thermo table file (-I, --inputConditionsFile)")
			os.Exit(1)
		}
		if data, err = os.ReadFile(fileName); err != nil {
			panic(err)
		}
		if err = tt.Parse(data); err != nil {
			panic(err)
		}
		if m, err = tt.Mechanism(); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		comp, _ := cmd.Flags().GetStringToString("composition")
		if y, err = ParseComposition(m, comp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		tMin, _ := cmd.Flags().GetFloat64("tMin")
		tMax, _ := cmd.Flags().GetFloat64("tMax")
		n, _ := cmd.Flags().GetInt("n")
		graph, _ := cmd.Flags().GetBool("graph")
		sw, err := NewSweep(m, y, tMin, tMax, n)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		sw.Print()
		if graph {
			fmt.Println(sw.Plot())
		}
	},
}

func init() {
	rootCmd.AddCommand(ThermoCmd)
	ThermoCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML thermo table")
	ThermoCmd.Flags().StringToStringP("composition", "y", nil, "mass fractions by species name, default is equal parts")
	ThermoCmd.Flags().Float64("tMin", 200, "lowest temperature of the sweep")
	ThermoCmd.Flags().Float64("tMax", 3000, "highest temperature of the sweep")
	ThermoCmd.Flags().IntP("n", "n", 15, "number of temperatures")
	ThermoCmd.Flags().BoolP("graph", "g", false, "plot cp over the sweep")
}

// ParseComposition orders named mass fractions by species. An empty composition gives
// equal mass fractions.
func ParseComposition(m *thermo.Mechanism, comp map[string]string) (y []float64, err error) {
	var (
		ns = m.NumSpecies()
	)
	if len(comp) == 0 {
		return utils.ConstArray(ns, 1./float64(ns)), nil
	}
	y = make([]float64, ns)
	for name, val := range comp {
		i := m.SpeciesIndex(strings.TrimSpace(name))
		if i < 0 {
			return nil, fmt.Errorf("unknown species \"%s\"", name)
		}
		if y[i], err = strconv.ParseFloat(strings.TrimSpace(val), 64); err != nil {
			return nil, fmt.Errorf("species \"%s\": %w", name, err)
		}
	}
	return
}

type Sweep struct {
	T, Cp, Cv, H, E, DCp []float64
	MW                   float64
}

func NewSweep(m *thermo.Mechanism, y []float64, tMin, tMax float64, n int) (sw *Sweep, err error) {
	if n < 1 {
		err = fmt.Errorf("need at least one temperature, have n = %d", n)
		return
	}
	var (
		dcp = make([]float64, m.NumSpecies())
		pe  = thermo.NewProfileEvaluator(m)
		Y   = make([]float64, 0, n*len(y))
	)
	sw = &Sweep{
		T:   utils.Linspace(tMin, tMax, n),
		Cp:  make([]float64, n),
		Cv:  make([]float64, n),
		H:   make([]float64, n),
		E:   make([]float64, n),
		DCp: make([]float64, n),
		MW:  m.MixtureMolecularWeight(y),
	}
	for i := 0; i < n; i++ {
		Y = append(Y, y...)
	}
	pe.EnthalpyAndCp(sw.T, Y, sw.H, sw.Cp)
	for i, T := range sw.T {
		sw.Cv[i] = m.CvMix(T, y)
		sw.E[i] = m.EnergyMix(T, y)
		sw.DCp[i] = m.CpSensT(T, y, dcp)
	}
	return
}

func (sw *Sweep) Print() {
	fmt.Printf("Mixture molecular weight = %8.4f\n", sw.MW)
	fmt.Printf("%10s %14s %14s %14s %14s %14s\n", "T", "cp", "cv", "h", "e", "dcp/dT")
	for i := range sw.T {
		fmt.Printf("%10.2f %14.6e %14.6e %14.6e %14.6e %14.6e\n",
			sw.T[i], sw.Cp[i], sw.Cv[i], sw.H[i], sw.E[i], sw.DCp[i])
	}
}

func (sw *Sweep) Plot() string {
	return asciigraph.Plot(sw.Cp,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("cp [J/kg/K], T from %.0f to %.0f K", sw.T[0], sw.T[len(sw.T)-1])))
}
