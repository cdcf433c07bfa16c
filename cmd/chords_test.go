package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChordYTicksSemitoneLabels(t *testing.T) {
	tbl := LoadTable()

	yLabel, ticks, err := chordYTicks(tbl, "C4", "semitone")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Intervals (semitones)", yLabel)
	// 0 through the 13th inclusive
	assert.Len(ticks, 22)
	assert.Equal("0", ticks[0].Label)
	assert.Equal("21", ticks[21].Label)
	assert.InEpsilon(261.63, ticks[0].Value, 1e-3)
}

func TestChordYTicksNoteLabels(t *testing.T) {
	tbl := LoadTable()

	yLabel, ticks, err := chordYTicks(tbl, "C4", "note")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Note Name", yLabel)
	assert.Equal("C4", ticks[0].Label)
	assert.Equal("C5", ticks[12].Label)
}

func TestChordYTicksFreqModeKeepsDefaultAxis(t *testing.T) {
	tbl := LoadTable()

	yLabel, ticks, err := chordYTicks(tbl, "C4", "freq")

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("Frequency (hz)", yLabel)
	assert.Nil(ticks)
}

func TestChordYTicksRejectsUnknownMode(t *testing.T) {
	tbl := LoadTable()

	_, _, err := chordYTicks(tbl, "C4", "bogus")
	assert.Error(t, err)
}
