package constants

import "os"

func GetChartDir() string {
	path := os.Getenv("CHART_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// PitchClasses is the chromatic order used everywhere. Positional arithmetic
// in the resolver depends on it never being reordered.
var PitchClasses = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// BaseFrequencies are the fundamental frequencies (hz) of the octave below
// the piano sub-contra octave, displayed with the "-1" suffix. C-1 here is
// also MIDI key 0, which is what makes table positions line up with MIDI
// key numbers.
var BaseFrequencies = []float64{
	8.1758, 8.6620, 9.1770, 9.7227, 10.301, 10.914,
	11.563, 12.250, 12.979, 13.750, 14.568, 15.434,
}

// 11 octaves covers -1 through 9, comfortably past the 88-key piano range.
const DefaultOctaves = 11
