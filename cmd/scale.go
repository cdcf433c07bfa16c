package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pitchplot/chord"
	"pitchplot/plot"
)

var (
	scaleRoot  string
	scaleCount int
	scaleLog   bool
	scaleOut   string
)

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().StringVar(&scaleRoot, "root", "C4", "note to start from")
	scaleCmd.Flags().IntVar(&scaleCount, "notes", 13, "how many semitones to chart")
	scaleCmd.Flags().BoolVar(&scaleLog, "log", false, "logarithmic frequency axis")
	scaleCmd.Flags().StringVarP(&scaleOut, "out", "o", "", "chart file (default generated under chart dir)")
}

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Charts the chromatic scale from a root",
	Long:  `Charts the chromatic scale upward from a root note, one point per semitone.`,
	Run: func(cmd *cobra.Command, args []string) {
		t := LoadTable()

		intervals := make([]int, scaleCount)
		for i := range intervals {
			intervals[i] = i
		}
		freqs, err := chord.Resolve(t, scaleRoot, intervals)
		cobra.CheckErr(err)

		pos, _ := t.Position(scaleRoot)
		names := make([]string, scaleCount)
		for i := range names {
			names[i] = t.Note(pos + i).Name
		}

		p, err := plot.ScaleChart(names, freqs, fmt.Sprintf("Chromatic %v Scale", scaleRoot), scaleLog)
		cobra.CheckErr(err)

		path := chartPath(scaleOut)
		cobra.CheckErr(plot.Save(p, path))
		fmt.Printf("Wrote %v\n", path)
	},
}
