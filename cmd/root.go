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

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goflame",
	Short: "Thermochemistry closures and block tridiagonal solvers for 1D reacting flow",
	Long: `
Evaluates ideal gas mixture thermodynamics from NASA7 or constant heat capacity fits, and
solves the block tridiagonal systems of implicit 1D transport.

goflame thermo -I air.yaml
goflame 1D -I mixing.yaml -g
goflame bench -k 1000 -b 10`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.goflame.yaml)")
	rootCmd.PersistentFlags().String("profile", "", "write a cpu or mem profile to the working directory")
	if err := viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile")); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".goflame")
	}
	viper.SetEnvPrefix("goflame")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// startProfile honors --profile, from the flag, GOFLAME_PROFILE or the config file.
// The returned stopper is a no-op when profiling is off.
func startProfile() interface{ Stop() } {
	switch viper.GetString("profile") {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."))
	}
	return noProfile{}
}

type noProfile struct{}

func (noProfile) Stop() {}
