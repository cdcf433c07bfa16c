// Package midi turns resolved chords into standard MIDI files.
package midi

import (
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"pitchplot/chord"
	"pitchplot/scale"
)

const maxKey = 127

// Keys returns the MIDI key numbers of the notes the given intervals above
// a root. The table is seeded so that its lowest note C-1 is key 0, which
// makes a note's table position its key number.
func Keys(t *scale.Table, rootName string, intervals []int) ([]uint8, error) {
	pos, ok := t.Position(rootName)
	if !ok {
		return nil, errors.Wrapf(chord.ErrUnknownRoot, "%q", rootName)
	}
	res := make([]uint8, 0, len(intervals))
	for _, k := range intervals {
		p := pos + k
		if p < 0 || p > maxKey {
			return nil, errors.Wrapf(chord.ErrIntervalOutOfRange, "%v semitones above %q is not a midi key", k, rootName)
		}
		res = append(res, uint8(p))
	}
	return res, nil
}

// WriteProgression writes a single-track SMF playing each chord in order,
// a quarter note apiece at 120bpm.
func WriteProgression(path string, progression [][]uint8) error {
	ticks := smf.MetricTicks(960)
	s := smf.New()
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	for _, keys := range progression {
		for _, key := range keys {
			tr.Add(0, midi.NoteOn(0, key, 100))
		}
		// note-offs land together on the next quarter-note boundary
		for i, key := range keys {
			var delta uint32
			if i == 0 {
				delta = ticks.Ticks4th()
			}
			tr.Add(delta, midi.NoteOff(0, key))
		}
	}
	tr.Close(0)
	s.Tracks = append(s.Tracks, tr)

	return errors.Wrapf(s.WriteFile(path), "could not write %v", path)
}
