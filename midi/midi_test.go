package midi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/chordcraft/chart"
	"github.com/jsphweid/chordcraft/constants"
	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/voicing"
)

func resolveChart(t *testing.T, text string) []chart.Slot {
	t.Helper()
	c, err := chart.ParseText(text)
	if err != nil {
		t.Fatal(err)
	}
	slots, err := chart.Resolve(c, constants.DefaultTicksPerBeat)
	if err != nil {
		t.Fatal(err)
	}
	return slots
}

// write then re-read the file in memory, the way a consumer would
func writeRead(t *testing.T, s *smf.SMF) *smf.SMF {
	t.Helper()
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := smf.ReadFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	return back
}

func TestExportSMFRoundTrip(t *testing.T) {
	assert := assert.New(t)

	slots := resolveChart(t, "| C | G7/B | Cblk | % |")
	s := ExportSMF(slots, constants.DefaultTicksPerBeat, constants.DefaultBPM, voicing.Options{})

	sets := NoteSets(writeRead(t, s))
	assert.Len(sets, 4)

	bar := int64(constants.BeatsPerBar * constants.DefaultTicksPerBeat)
	for i, set := range sets {
		assert.Equal(bar*int64(i), set.Tick)
	}

	assert.Equal(model.Notes{36, 48, 52, 55}, sets[0].Notes)
	assert.Equal(model.Notes{47, 55, 59, 62, 65}, sets[1].Notes)
	assert.Equal(model.Notes{36, 38, 42, 46}, sets[2].Notes)
	// the repeat strikes the previous chord again
	assert.Equal(sets[2].Notes, sets[3].Notes)
}

// silence and unparseable tokens only advance the clock
func TestExportSMFGaps(t *testing.T) {
	assert := assert.New(t)

	slots := resolveChart(t, "| C |  | ?? | G |")
	s := ExportSMF(slots, constants.DefaultTicksPerBeat, constants.DefaultBPM, voicing.Options{})

	sets := NoteSets(writeRead(t, s))
	assert.Len(sets, 2)

	bar := int64(constants.BeatsPerBar * constants.DefaultTicksPerBeat)
	assert.Equal(int64(0), sets[0].Tick)
	assert.Equal(3*bar, sets[1].Tick)
	assert.Equal(model.Notes{43, 55, 59, 62}, sets[1].Notes)
}

func TestExportSMFSplitMeasure(t *testing.T) {
	assert := assert.New(t)

	slots := resolveChart(t, "| C G | Am F G | C |")
	s := ExportSMF(slots, constants.DefaultTicksPerBeat, constants.DefaultBPM, voicing.Options{})

	sets := NoteSets(writeRead(t, s))
	assert.Len(sets, 6)

	ticks := []int64{0, 960, 1920, 2880, 3360, 3840}
	for i, set := range sets {
		assert.Equal(ticks[i], set.Tick)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("does-not-exist.mid")
	assert.Error(t, err)
}
