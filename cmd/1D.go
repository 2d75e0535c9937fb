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

	"github.com/spf13/cobra"

	"github.com/notargets/goflame/InputParameters"
	"github.com/notargets/goflame/model_problems/Diffusion1D"
)

type Model1D struct {
	ICFile         string
	Graph          bool
	MaxSteps       int
	ParallelDegree int
}

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "Implicit 1D diffusion of enthalpy and species",
	Long: `
Advances a two-state mixing layer with backward Euler steps, solving the block tridiagonal
system each step and recovering temperature from the transported enthalpy,

goflame 1D -I mixing.yaml -g`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		if m1d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		m1d.Graph, _ = cmd.Flags().GetBool("graph")
		m1d.MaxSteps, _ = cmd.Flags().GetInt("steps")
		m1d.ParallelDegree, _ = cmd.Flags().GetInt("parallel")
		ip := processInput1D(m1d)
		defer startProfile().Stop()
		if err = Run1D(m1d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file with the case and its thermo table")
	OneDCmd.Flags().BoolP("graph", "g", false, "plot the final temperature profile")
	OneDCmd.Flags().IntP("steps", "s", 0, "maximum number of steps, overrides MaxSteps in the input file")
	OneDCmd.Flags().IntP("parallel", "p", 0, "goroutines used for temperature recovery, default is the CPU count")
}

const example1D = `
########################################
Title: "Mixing layer"
K: 200
Length: 0.01
Diffusivity: 2.e-5
FinalTime: 0.1
Solver: direct # or gauss-seidel, jacobi
BCs:
  Left: neuman
  Right: dirichlet
Left:
  T: 300
  MassFractions: {N2: 0.767, O2: 0.233}
Right:
  T: 1500
  MassFractions: {N2: 1}
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
    - ...
########################################
`

func processInput1D(m1d *Model1D) (ip *InputParameters.InputParameters1D) {
	var (
		err  error
		data []byte
	)
	if len(m1d.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		fmt.Printf("error: %s\n", err.Error())
		fmt.Printf("Example File:%s\n", example1D)
		os.Exit(1)
	}
	if data, err = os.ReadFile(m1d.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParameters1D{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	return
}

func Run1D(m1d *Model1D, ip *InputParameters.InputParameters1D) (err error) {
	var (
		c *Diffusion1D.Diffusion
	)
	if m1d.MaxSteps != 0 {
		ip.MaxSteps = m1d.MaxSteps
	}
	ip.Print()
	if c, err = Diffusion1D.NewDiffusion(ip, m1d.ParallelDegree); err != nil {
		return
	}
	c.Run(m1d.Graph)
	return
}
