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
	"io/ioutil"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/oceanwaves/mlclaw/InputParameters"
	"github.com/oceanwaves/mlclaw/scenarios"
)

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run [eigen methods...]",
	Short: "Run the two layer wave family scenario",
	Long: `
Runs the sloped shelf wave family perturbation scenario once per eigenvalue
method given as trailing integer arguments (default: method 2 only), then
renders the saved frames.

mlclaw run 1 2 3 4`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := processParameters(cmd)
		methods := []int{ip.EigenMethod}
		if len(args) > 0 {
			methods = methods[:0]
			for _, arg := range args {
				m, err := strconv.Atoi(arg)
				if err != nil {
					panic(fmt.Errorf("eigen method argument %q: %w", arg, err))
				}
				methods = append(methods, m)
			}
		}
		graph, _ := cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		for _, method := range methods {
			cfg := configFromParameters(ip)
			cfg.EigenMethod = method
			h, err := scenarios.NewHump(cfg)
			if err != nil {
				panic(err)
			}
			if err = h.Run(graph, time.Duration(dr)*time.Millisecond); err != nil {
				panic(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	ip := InputParameters.Defaults()
	RunCmd.Flags().StringP("parameterFile", "I", "", "YAML file overriding the scenario parameters")
	RunCmd.Flags().IntP("numCells", "n", ip.NumCells, "number of finite volume cells")
	RunCmd.Flags().IntP("waveFamily", "w", ip.WaveFamily, "wave family for the initial perturbation (1-4, other = surface hump)")
	RunCmd.Flags().Bool("dry", ip.DryState, "start with the bottom layer dry over the shelf")
	RunCmd.Flags().Float64("finalTime", ip.FinalTime, "target end time for the simulation")
	RunCmd.Flags().Int("numOutputTimes", ip.NumOutputTimes, "number of output frames")
	RunCmd.Flags().StringP("outDir", "o", ip.OutDir, "frame output directory")
	RunCmd.Flags().StringP("plotDir", "p", ip.PlotDir, "figure output directory")
	RunCmd.Flags().BoolP("graph", "g", false, "display a live graph while computing the solution")
	RunCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for live plotting")
}

// processParameters merges the defaults, the optional parameter file and
// the command line flags
func processParameters(cmd *cobra.Command) (ip *InputParameters.InputParameters) {
	ip = InputParameters.Defaults()
	if pf, _ := cmd.Flags().GetString("parameterFile"); len(pf) != 0 {
		data, err := ioutil.ReadFile(pf)
		if err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
	}
	if cmd.Flags().Changed("numCells") {
		ip.NumCells, _ = cmd.Flags().GetInt("numCells")
	}
	if cmd.Flags().Changed("waveFamily") {
		ip.WaveFamily, _ = cmd.Flags().GetInt("waveFamily")
	}
	if cmd.Flags().Changed("dry") {
		ip.DryState, _ = cmd.Flags().GetBool("dry")
	}
	if cmd.Flags().Changed("finalTime") {
		ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	}
	if cmd.Flags().Changed("numOutputTimes") {
		ip.NumOutputTimes, _ = cmd.Flags().GetInt("numOutputTimes")
	}
	if cmd.Flags().Changed("outDir") {
		ip.OutDir, _ = cmd.Flags().GetString("outDir")
	}
	if cmd.Flags().Changed("plotDir") {
		ip.PlotDir, _ = cmd.Flags().GetString("plotDir")
	}
	ip.Print()
	return
}

func configFromParameters(ip *InputParameters.InputParameters) (cfg scenarios.Config) {
	cfg = scenarios.DefaultConfig()
	cfg.NumCells = ip.NumCells
	cfg.EigenMethod = ip.EigenMethod
	cfg.WaveFamily = ip.WaveFamily
	cfg.DryState = ip.DryState
	cfg.SolverType = ip.SolverType
	cfg.TFinal = ip.FinalTime
	cfg.NumOutputTimes = ip.NumOutputTimes
	cfg.OutDir = ip.OutDir
	cfg.PlotDir = ip.PlotDir
	cfg.HTMLPlots = ip.HTMLPlots
	cfg.LatexPlots = ip.LatexPlots
	cfg.Gravity = ip.Gravity
	cfg.Rho = ip.Rho
	cfg.Manning = ip.Manning
	cfg.RhoAir = ip.RhoAir
	cfg.DryTolerance = ip.DryTolerance
	cfg.CFLDesired = ip.CFLDesired
	cfg.CFLMax = ip.CFLMax
	cfg.MaxSteps = ip.MaxSteps
	return
}
