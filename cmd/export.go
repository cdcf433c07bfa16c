package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pitchplot/midi"
)

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "progression.mid", "midi file to write")
}

var exportCmd = &cobra.Command{
	Use:   "export <root:chord...>",
	Short: "Writes chords as a midi file",
	Long:  `Writes the given chords as a single-track midi file, one chord per quarter note.`,
	Run: func(cmd *cobra.Command, args []string) {
		pairs, err := parseRootChords(args)
		cobra.CheckErr(err)

		t := LoadTable()
		var progression [][]uint8
		for _, pc := range pairs {
			keys, err := midi.Keys(t, pc.root, pc.def.Intervals)
			cobra.CheckErr(err)
			progression = append(progression, keys)
		}

		cobra.CheckErr(midi.WriteProgression(exportOut, progression))
		fmt.Printf("Wrote %v chords to %v\n", len(progression), exportOut)
	},
}
