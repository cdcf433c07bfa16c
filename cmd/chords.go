package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"pitchplot/chord"
	"pitchplot/model"
	"pitchplot/plot"
	"pitchplot/scale"
	"pitchplot/util"
)

var (
	chordsChart bool
	chordsTicks string
	chordsOut   string
)

func init() {
	rootCmd.AddCommand(chordsCmd)
	chordsCmd.Flags().BoolVar(&chordsChart, "chart", false, "also render a scatter chart")
	chordsCmd.Flags().StringVar(&chordsTicks, "yticks", "freq", "chart y-axis labels: freq, semitone or note")
	chordsCmd.Flags().StringVarP(&chordsOut, "out", "o", "", "chart file (default generated under chart dir)")
}

var chordsCmd = &cobra.Command{
	Use:   "chords <root> [chord...]",
	Short: "Resolves chords for a root note",
	Long:  `Resolves the named chords (or the whole catalog) for a root note and prints their frequencies.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			cobra.CheckErr(errors.New("need a root note, e.g. C4"))
		}
		t := LoadTable()

		defs := chord.Catalog
		if len(args) > 1 {
			var err error
			defs, err = lookupDefs(args[1:])
			cobra.CheckErr(err)
		}

		voicings, err := chord.ResolveAll(t, args[:1], defs)
		cobra.CheckErr(err)

		for _, v := range voicings {
			fmt.Printf("%-10v %v\n", chord.VoicingKey(v.Root, v.Chord), formatFreqs(v.Frequencies))
		}

		if chordsChart {
			yLabel, ticks, err := chordYTicks(t, args[0], chordsTicks)
			cobra.CheckErr(err)

			title := fmt.Sprintf("%v Chord Frequencies", args[0])
			switch chordsTicks {
			case "semitone":
				title = fmt.Sprintf("%v Chord Intervals", args[0])
			case "note":
				title = fmt.Sprintf("%v Chord Note Contents", args[0])
			}

			p, err := plot.ChordChart(voicings, title, yLabel, ticks)
			cobra.CheckErr(err)
			path := chartPath(chordsOut)
			cobra.CheckErr(plot.Save(p, path))
			fmt.Printf("Wrote %v\n", path)
		}
	},
}

// chordYTicks pins chart Y ticks to the table's own note frequencies above
// the root, labeled by semitone offset or note name. "freq" keeps the
// default numeric axis.
func chordYTicks(t *scale.Table, rootName string, mode string) (string, []plot.Tick, error) {
	switch mode {
	case "freq":
		return "Frequency (hz)", nil, nil
	case "semitone", "note":
	default:
		return "", nil, errors.Errorf("unknown yticks mode %q, valid: freq, semitone, note", mode)
	}

	pos, ok := t.Position(rootName)
	if !ok {
		return "", nil, errors.Wrapf(chord.ErrUnknownRoot, "%q", rootName)
	}

	// cover the widest interval in the catalog (the 13th)
	span := 0
	for _, def := range chord.Catalog {
		for _, k := range def.Intervals {
			if k > span {
				span = k
			}
		}
	}

	var ticks []plot.Tick
	for k := 0; k <= span && pos+k < t.Len(); k++ {
		n := t.Note(pos + k)
		label := strconv.Itoa(k)
		if mode == "note" {
			label = n.Name
		}
		ticks = append(ticks, plot.Tick{Value: n.Frequency, Label: label})
	}
	if mode == "note" {
		return "Note Name", ticks, nil
	}
	return "Intervals (semitones)", ticks, nil
}

func lookupDefs(names []string) ([]model.ChordDefinition, error) {
	var defs []model.ChordDefinition
	bad := make(map[string]bool)
	for _, name := range names {
		def, ok := chord.ByName(name)
		if !ok {
			bad[name] = true
			continue
		}
		defs = append(defs, def)
	}
	if len(bad) > 0 {
		return nil, errors.Errorf("unknown chord names: %v", strings.Join(util.GetKeysSorted(bad), ", "))
	}
	return defs, nil
}

func formatFreqs(freqs []float64) string {
	parts := make([]string, len(freqs))
	for i, f := range freqs {
		parts[i] = fmt.Sprintf("%.2f", f)
	}
	return strings.Join(parts, " ")
}
