// Package scale builds the equal-tempered frequency table that everything
// else resolves against.
package scale

import (
	"strconv"

	"github.com/pkg/errors"

	"pitchplot/constants"
	"pitchplot/model"
)

// ErrInvalidInput means the base-frequency set was malformed.
var ErrInvalidInput = errors.New("invalid base frequencies")

// Table maps note names to frequencies across all supported octaves, in
// strictly increasing frequency order. Positions are semitone counts from
// the lowest note, so position+k is always the note k semitones up,
// regardless of octave boundaries. Immutable once built.
type Table struct {
	notes []model.Note
	pos   map[string]int
}

// BuildTable produces the full table from the 12 base frequencies of the
// lowest octave. Octave i gets frequencies base*2^i; the base octave is
// displayed with the "-1" suffix, so octave index 5 of pitch class C is
// "C4" (middle C).
func BuildTable(base []float64, octaves int) (*Table, error) {
	if len(base) != len(constants.PitchClasses) {
		return nil, errors.Wrapf(ErrInvalidInput, "need %v base frequencies, got %v", len(constants.PitchClasses), len(base))
	}
	if octaves < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "octave count must be positive, got %v", octaves)
	}
	for i, f := range base {
		if f <= 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "base frequency for %v is %v", constants.PitchClasses[i], f)
		}
	}

	t := Table{
		notes: make([]model.Note, 0, octaves*len(base)),
		pos:   make(map[string]int, octaves*len(base)),
	}
	factor := 1.0
	for i := 0; i < octaves; i++ {
		suffix := strconv.Itoa(i - 1)
		for j, f := range base {
			name := constants.PitchClasses[j] + suffix
			t.pos[name] = len(t.notes)
			t.notes = append(t.notes, model.Note{Name: name, Frequency: f * factor})
		}
		factor *= 2
	}
	return &t, nil
}

// BuildDefaultTable seeds BuildTable with the standard C-1 = 8.1758 hz set.
func BuildDefaultTable() (*Table, error) {
	return BuildTable(constants.BaseFrequencies, constants.DefaultOctaves)
}

func (t *Table) Len() int {
	return len(t.notes)
}

// Position returns the note's 0-based rank in ascending frequency order.
func (t *Table) Position(name string) (int, bool) {
	p, ok := t.pos[name]
	return p, ok
}

func (t *Table) Frequency(name string) (float64, bool) {
	p, ok := t.pos[name]
	if !ok {
		return 0, false
	}
	return t.notes[p].Frequency, true
}

// Note returns the entry at a position, which is also the note that many
// semitones above the lowest tabulated note.
func (t *Table) Note(pos int) model.Note {
	return t.notes[pos]
}

// Names returns all note names in ascending frequency order.
func (t *Table) Names() []string {
	res := make([]string, len(t.notes))
	for i, n := range t.notes {
		res[i] = n.Name
	}
	return res
}

// Frequencies returns all frequencies in ascending order, parallel to Names.
func (t *Table) Frequencies() []float64 {
	res := make([]float64, len(t.notes))
	for i, n := range t.notes {
		res[i] = n.Frequency
	}
	return res
}
