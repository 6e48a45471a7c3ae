package voicing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/pitch"
	"github.com/jsphweid/chordcraft/symbol"
)

func mustParse(t *testing.T, token string) model.ParsedChord {
	t.Helper()
	parsed, err := symbol.Parse(token, pitch.DefaultKey)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}

func TestBuildBasicVoicings(t *testing.T) {
	cases := []struct {
		token string
		opts  Options
		want  model.Notes
	}{
		// full voicings, no omissions
		{"C", Options{}, model.Notes{36, 48, 52, 55}},
		{"Cm", Options{}, model.Notes{36, 48, 51, 55}},
		{"Cdim", Options{}, model.Notes{36, 48, 51, 54}},
		{"Caug", Options{}, model.Notes{36, 48, 52, 56}},
		{"Csus2", Options{}, model.Notes{36, 48, 50, 55}},
		{"Csus4", Options{}, model.Notes{36, 48, 53, 55}},
		{"C7", Options{}, model.Notes{36, 48, 52, 55, 58}},
		{"CM7", Options{}, model.Notes{36, 48, 52, 55, 59}},
		{"Cm7", Options{}, model.Notes{36, 48, 51, 55, 58}},
		{"Cdim7", Options{}, model.Notes{36, 48, 51, 54, 57}},
		{"C6", Options{}, model.Notes{36, 48, 52, 55, 57}},

		// doubled bass dropped from the chord tones
		{"C", Options{OmitDoubledBass: true}, model.Notes{36, 52, 55}},
		{"Cm7", Options{OmitDoubledBass: true}, model.Notes{36, 51, 55, 58}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("voice %v", c.token), func(t *testing.T) {
			notes, err := Build(mustParse(t, c.token), c.opts)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.want, notes)
		})
	}
}

func TestBuildBlk(t *testing.T) {
	assert := assert.New(t)

	notes, err := Build(mustParse(t, "Cblk"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{36, 38, 42, 46}, notes)

	// intervals follow the stated root, ascending off the bass
	notes, err = Build(mustParse(t, "Dblk"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{38, 40, 44, 48}, notes)
}

func TestBuildSlashBass(t *testing.T) {
	assert := assert.New(t)

	notes, err := Build(mustParse(t, "G7/B"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{47, 55, 59, 62, 65}, notes)

	// with the doubled bass dropped the third leaves the upper structure
	notes, err = Build(mustParse(t, "G7/B"), Options{OmitDoubledBass: true})
	assert.NoError(err)
	assert.Equal(model.Notes{47, 55, 62, 65}, notes)
}

func TestBuildAlterations(t *testing.T) {
	assert := assert.New(t)

	notes, err := Build(mustParse(t, "G7b5"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{43, 55, 59, 61, 65}, notes)

	notes, err = Build(mustParse(t, "C7#5"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{36, 48, 52, 56, 58}, notes)
}

func TestBuildOmissions(t *testing.T) {
	assert := assert.New(t)

	notes, err := Build(mustParse(t, "C7omit3"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{36, 48, 55, 58}, notes)

	notes, err = Build(mustParse(t, "Comit5"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{36, 48, 52}, notes)
}

func TestBuildConflictFifth(t *testing.T) {
	assert := assert.New(t)

	opts := Options{OmitConflictFifth: true, OmitDoubledBass: true}
	notes, err := Build(mustParse(t, "C7(#11)"), opts)
	assert.NoError(err)
	assert.Equal(model.Notes{36, 52, 58, 66}, notes)

	// with the option off the natural fifth stays
	notes, err = Build(mustParse(t, "C7(#11)"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{36, 48, 52, 55, 58, 66}, notes)
}

func TestBuildTensions(t *testing.T) {
	assert := assert.New(t)

	notes, err := Build(mustParse(t, "C9"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{36, 48, 52, 55, 58, 62}, notes)

	notes, err = Build(mustParse(t, "C13"), Options{})
	assert.NoError(err)
	assert.Equal(model.Notes{36, 48, 52, 55, 58, 69}, notes)
}

// Every voicing is strictly ascending with the bass as its lowest note.
func TestBuildShapeInvariants(t *testing.T) {
	tokens := []string{
		"C", "Cm7", "G7/B", "Cblk", "F#m7b5", "Dm7(b9,#11)",
		"Eb13", "Caug7", "Bb7sus4", "C6", "AM7/E",
	}

	for _, token := range tokens {
		for _, opts := range []Options{
			{},
			{OmitConflictFifth: true, OmitDoubledBass: true},
		} {
			t.Run(fmt.Sprintf("shape %v %+v", token, opts), func(t *testing.T) {
				notes, err := Build(mustParse(t, token), opts)
				assert := assert.New(t)
				assert.NoError(err)
				assert.NotEmpty(notes)
				for i := 1; i < len(notes); i++ {
					assert.Greater(notes[i], notes[i-1])
				}
			})
		}
	}
}

func TestBuildUnvoiceableRoot(t *testing.T) {
	_, err := Build(model.ParsedChord{Root: "X"}, Options{})
	assert.Error(t, err)
}
