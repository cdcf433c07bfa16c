package model

type Note struct {
	Name      string
	Frequency float64
}

// ChordDefinition names an ordered list of semitone offsets above a root.
// Interval 0 (the root itself) is always first.
type ChordDefinition struct {
	Name      string
	Intervals []int
}

// Voicing is a chord definition resolved against a concrete root: one
// frequency per interval, in interval order.
type Voicing struct {
	Root        string
	Chord       string
	Frequencies []float64
}
