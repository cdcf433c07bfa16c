package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRootChords(t *testing.T) {
	pairs, err := parseRootChords([]string{"C4", "A4:m", "G4:maj7"})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(pairs, 3)
	assert.Equal("C4", pairs[0].root)
	assert.Equal("maj", pairs[0].def.Name)
	assert.Equal("A4", pairs[1].root)
	assert.Equal("m", pairs[1].def.Name)
	assert.Equal("G4", pairs[2].root)
	assert.Equal([]int{0, 4, 7, 11}, pairs[2].def.Intervals)
}

func TestParseRootChordsReportsUnknownNamesOnce(t *testing.T) {
	_, err := parseRootChords([]string{"C4:zzz", "D4:aaa", "E4:zzz"})

	assert := assert.New(t)
	assert.Error(err)
	assert.Contains(err.Error(), "aaa, zzz")
}
