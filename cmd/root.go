package cmd

import (
	"sync"

	"github.com/spf13/cobra"

	"pitchplot/scale"
)

var rootCmd = &cobra.Command{
	Use:   "pitchplot",
	Short: "Equal-tempered pitch and chord frequency charts",
	Long:  `Computes twelve-tone equal temperament frequencies, resolves chords against them and renders the results as charts.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

var (
	table     *scale.Table
	tableOnce sync.Once
)

// LoadTable builds the note table every command resolves against. Built
// once behind a sync.Once since the serve handlers call this from
// concurrent goroutines. Exported for tests.
func LoadTable() *scale.Table {
	tableOnce.Do(func() {
		t, err := scale.BuildDefaultTable()
		cobra.CheckErr(err)
		table = t
	})
	return table
}
