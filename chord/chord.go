// Package chord holds the static chord catalog and resolves chords to
// frequencies against a scale.Table.
package chord

import (
	"github.com/pkg/errors"

	"pitchplot/model"
	"pitchplot/scale"
)

var (
	// ErrUnknownRoot means the requested root note is not in the table.
	ErrUnknownRoot = errors.New("unknown root note")
	// ErrIntervalOutOfRange means an interval lands above the highest
	// tabulated octave. Reported, never wrapped around or truncated.
	ErrIntervalOutOfRange = errors.New("interval out of table range")
)

// Semitone counts for the intervals the catalog is built from.
const (
	root            = 0
	majorSecond     = 2
	minorThird      = 3
	majorThird      = 4
	perfectFourth   = 5
	diminishedFifth = 6
	perfectFifth    = 7
	minorSixth      = 8
	majorSixth      = 9
	minorSeventh    = 10
	majorSeventh    = 11
	majorNinth      = 14
	eleventh        = 17
	thirteenth      = 21
)

// Catalog is the fixed set of chord definitions, in display order. The
// extended chords (9/11/13) keep their sevenths exactly as the source
// material had them.
var Catalog = []model.ChordDefinition{
	{Name: "maj", Intervals: []int{root, majorThird, perfectFifth}},
	{Name: "m", Intervals: []int{root, minorThird, perfectFifth}},
	{Name: "7", Intervals: []int{root, majorThird, perfectFifth, minorSeventh}},
	{Name: "m7", Intervals: []int{root, minorThird, perfectFifth, minorSeventh}},
	{Name: "maj7", Intervals: []int{root, majorThird, perfectFifth, majorSeventh}},
	{Name: "6", Intervals: []int{root, majorThird, perfectFifth, majorSixth}},
	{Name: "m6", Intervals: []int{root, minorThird, perfectFifth, majorSixth}},
	{Name: "6/9", Intervals: []int{root, majorThird, perfectFifth, majorSixth, majorNinth}},
	{Name: "5", Intervals: []int{root, perfectFifth}},
	{Name: "9", Intervals: []int{root, majorThird, perfectFifth, minorSeventh, majorNinth}},
	{Name: "m9", Intervals: []int{root, minorThird, perfectFifth, minorSeventh, majorNinth}},
	{Name: "maj9", Intervals: []int{root, majorThird, perfectFifth, majorSeventh, majorNinth}},
	{Name: "11", Intervals: []int{root, majorThird, perfectFifth, minorSeventh, majorNinth, eleventh}},
	{Name: "m11", Intervals: []int{root, minorThird, perfectFifth, minorSeventh, majorNinth, eleventh}},
	{Name: "13", Intervals: []int{root, majorThird, perfectFifth, minorSeventh, majorNinth, eleventh, thirteenth}},
	{Name: "m13", Intervals: []int{root, minorThird, perfectFifth, minorSeventh, majorNinth, eleventh, thirteenth}},
	{Name: "add9", Intervals: []int{root, majorThird, perfectFifth, majorNinth}},
	{Name: "add2", Intervals: []int{root, majorSecond, majorThird, perfectFifth}},
	{Name: "7-5", Intervals: []int{root, majorThird, diminishedFifth, minorSeventh}},
	{Name: "7+5", Intervals: []int{root, majorThird, minorSixth, minorSeventh}},
	{Name: "sus4", Intervals: []int{root, perfectFourth, perfectFifth}},
	{Name: "sus2", Intervals: []int{root, majorSecond, perfectFifth}},
	{Name: "dim", Intervals: []int{root, minorThird, diminishedFifth}},
	{Name: "m7b5", Intervals: []int{root, minorThird, diminishedFifth, minorSeventh}},
	{Name: "aug", Intervals: []int{root, majorThird, minorSixth}},
}

var byName = func() map[string]model.ChordDefinition {
	m := make(map[string]model.ChordDefinition, len(Catalog))
	for _, def := range Catalog {
		m[def.Name] = def
	}
	return m
}()

// ByName looks a definition up by catalog name, e.g. "m7b5".
func ByName(name string) (model.ChordDefinition, bool) {
	def, ok := byName[name]
	return def, ok
}

// VoicingKey identifies a (root, chord) pair, e.g. "C4-maj".
func VoicingKey(rootName string, chordName string) string {
	return rootName + "-" + chordName
}

// Resolve returns the frequencies of the notes the given semitone intervals
// above the root, in interval order. Pure function of its inputs.
func Resolve(t *scale.Table, rootName string, intervals []int) ([]float64, error) {
	pos, ok := t.Position(rootName)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRoot, "%q", rootName)
	}
	res := make([]float64, 0, len(intervals))
	for _, k := range intervals {
		p := pos + k
		if p < 0 || p >= t.Len() {
			return nil, errors.Wrapf(ErrIntervalOutOfRange, "%v semitones above %q", k, rootName)
		}
		res = append(res, t.Note(p).Frequency)
	}
	return res, nil
}

// ResolveAll resolves every definition for every root, definitions nested
// within roots, preserving both orders.
func ResolveAll(t *scale.Table, roots []string, defs []model.ChordDefinition) ([]model.Voicing, error) {
	res := make([]model.Voicing, 0, len(roots)*len(defs))
	for _, r := range roots {
		for _, def := range defs {
			freqs, err := Resolve(t, r, def.Intervals)
			if err != nil {
				return nil, err
			}
			res = append(res, model.Voicing{Root: r, Chord: def.Name, Frequencies: freqs})
		}
	}
	return res, nil
}
