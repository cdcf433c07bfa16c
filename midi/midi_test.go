package midi

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"pitchplot/chord"
	"pitchplot/scale"
)

func buildTable(t *testing.T) *scale.Table {
	tbl, err := scale.BuildDefaultTable()
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestKeysMatchMidiNumbers(t *testing.T) {
	tbl := buildTable(t)

	assert := assert.New(t)

	keys, err := Keys(tbl, "C4", []int{0, 4, 7})
	assert.NoError(err)
	assert.Equal([]uint8{60, 64, 67}, keys)

	// lowest key on an 88-key piano
	keys, err = Keys(tbl, "A0", []int{0})
	assert.NoError(err)
	assert.Equal([]uint8{21}, keys)
}

func TestKeysErrors(t *testing.T) {
	tbl := buildTable(t)

	assert := assert.New(t)

	_, err := Keys(tbl, "Z9", []int{0})
	assert.True(errors.Is(err, chord.ErrUnknownRoot))

	// G9 is key 127; anything above has no midi key
	_, err = Keys(tbl, "G9", []int{0, 1})
	assert.True(errors.Is(err, chord.ErrIntervalOutOfRange))
}

func TestWriteProgressionRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.mid")
	progression := [][]uint8{{60, 64, 67}, {67, 71, 74}}

	assert := assert.New(t)
	assert.NoError(WriteProgression(path, progression))

	s, err := smf.ReadFile(path)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)
}
