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
	"github.com/spf13/cobra"

	"github.com/oceanwaves/mlclaw/frametools"
	"github.com/oceanwaves/mlclaw/multilayer"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render figures from an existing frame output directory",
	Long: `
Reads previously written solution frames and renders the layered figure set
without re-running the simulation.

mlclaw plot -o _output -p _plots`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			outDir, _  = cmd.Flags().GetString("outDir")
			plotDir, _ = cmd.Flags().GetString("plotDir")
			family, _  = cmd.Flags().GetInt("waveFamily")
			html, _    = cmd.Flags().GetBool("html")
			latex, _   = cmd.Flags().GetBool("latex")
			params     = multilayer.NewParams()
		)
		pd := frametools.NewPlotData(outDir, plotDir)
		pd.HTML = html
		pd.Latex = latex
		frametools.SetPlot(pd, family, params.Rho, params.DryTolerance)
		if err := pd.PrintFrames(); err != nil {
			panic(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("outDir", "o", "_output", "frame output directory to read")
	PlotCmd.Flags().StringP("plotDir", "p", "_plots", "figure output directory")
	PlotCmd.Flags().IntP("waveFamily", "w", 5, "wave family of the run being plotted")
	PlotCmd.Flags().Bool("html", true, "create html index files of the plots")
	PlotCmd.Flags().Bool("latex", true, "create a latex file of the plots")
}
