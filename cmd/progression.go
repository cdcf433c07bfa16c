package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pitchplot/chord"
	"pitchplot/model"
	"pitchplot/plot"
)

var progressionOut string

func init() {
	rootCmd.AddCommand(progressionCmd)
	progressionCmd.Flags().StringVarP(&progressionOut, "out", "o", "", "chart file (default generated under chart dir)")
}

var progressionCmd = &cobra.Command{
	Use:   "progression [root:chord...]",
	Short: "Charts a chord progression",
	Long:  `Charts the frequency content of a chord progression, e.g. "C4 G4 A4:m F4". Defaults to I-V-vi-IV in C major.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"C4", "G4", "A4:m", "F4"}
		}
		pairs, err := parseRootChords(args)
		cobra.CheckErr(err)

		t := LoadTable()
		var voicings []model.Voicing
		for _, pc := range pairs {
			freqs, err := chord.Resolve(t, pc.root, pc.def.Intervals)
			cobra.CheckErr(err)
			voicings = append(voicings, model.Voicing{Root: pc.root, Chord: pc.def.Name, Frequencies: freqs})
		}

		p, err := plot.ChordChart(voicings, "Chord Progression", "Frequency (hz)", nil)
		cobra.CheckErr(err)

		path := chartPath(progressionOut)
		cobra.CheckErr(plot.Save(p, path))
		fmt.Printf("Wrote %v\n", path)
	},
}
