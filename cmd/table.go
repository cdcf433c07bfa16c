package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Prints the note frequency table",
	Long:  `Prints every tabulated note and its frequency, lowest first.`,
	Run: func(cmd *cobra.Command, args []string) {
		t := LoadTable()
		for i := 0; i < t.Len(); i++ {
			n := t.Note(i)
			fmt.Printf("%3d  %-4s %12.4f\n", i, n.Name, n.Frequency)
		}
	},
}
