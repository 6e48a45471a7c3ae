package symbol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/pitch"
)

func mustKey(t *testing.T, name string) pitch.Key {
	t.Helper()
	key, err := pitch.KeyFromName(name)
	if err != nil {
		t.Fatal(err)
	}
	return key
}

func TestParseBasicQualities(t *testing.T) {
	cases := []struct {
		token   string
		root    string
		quality model.Quality
		seventh model.Seventh
	}{
		{"C", "C", model.Major, model.SeventhNone},
		{"Cm", "C", model.Minor, model.SeventhNone},
		{"Cdim", "C", model.Dim, model.SeventhNone},
		{"Caug", "C", model.Aug, model.SeventhNone},
		{"C+", "C", model.Aug, model.SeventhNone},
		{"Csus2", "C", model.Sus2, model.SeventhNone},
		{"Csus4", "C", model.Sus4, model.SeventhNone},
		{"C7", "C", model.Major, model.Min7},
		{"CM7", "C", model.Major, model.Maj7},
		{"Cm7", "C", model.Minor, model.Min7},
		{"Cdim7", "C", model.Dim, model.Dim7},
		{"CmM7", "C", model.Minor, model.Maj7},
		{"C7sus4", "C", model.Sus4, model.Min7},
		{"F#m7", "F#", model.Minor, model.Min7},
		{"Bb7", "Bb", model.Major, model.Min7},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("parse %v", c.token), func(t *testing.T) {
			parsed, err := Parse(c.token, pitch.DefaultKey)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.root, parsed.Root)
			assert.Equal(c.quality, parsed.Quality)
			assert.Equal(c.seventh, parsed.Seventh)
		})
	}
}

func TestParseSynonyms(t *testing.T) {
	cases := []struct {
		token   string
		quality model.Quality
		seventh model.Seventh
	}{
		{"Cmaj7", model.Major, model.Maj7},
		{"CMaj7", model.Major, model.Maj7},
		{"Cmin7", model.Minor, model.Min7},
		{"C-7", model.Minor, model.Min7},
		{"C°", model.Dim, model.SeventhNone},
		{"C°7", model.Dim, model.Dim7},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("parse %v", c.token), func(t *testing.T) {
			parsed, err := Parse(c.token, pitch.DefaultKey)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.quality, parsed.Quality)
			assert.Equal(c.seventh, parsed.Seventh)
		})
	}
}

// C7-5 is a flat five, C-7 is a minor seventh. The signed forms must
// normalize before the bare minus collapses to m.
func TestParseSignedDisambiguation(t *testing.T) {
	assert := assert.New(t)

	flatFive, err := Parse("C7-5", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal(model.Major, flatFive.Quality)
	assert.Equal(model.Min7, flatFive.Seventh)
	assert.Equal([]string{"b5"}, flatFive.Alterations)

	minorSeventh, err := Parse("C-7", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal(model.Minor, minorSeventh.Quality)
	assert.Equal(model.Min7, minorSeventh.Seventh)
	assert.Empty(minorSeventh.Alterations)
}

func TestParseHalfDiminished(t *testing.T) {
	for _, token := range []string{"Cm7b5", "Cø", "Cm7-5"} {
		t.Run(fmt.Sprintf("parse %v", token), func(t *testing.T) {
			parsed, err := Parse(token, pitch.DefaultKey)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(model.Dim, parsed.Quality)
			assert.Equal(model.Min7, parsed.Seventh)
			assert.Empty(parsed.Alterations)
		})
	}
}

func TestParseUnicodeAccidentals(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("B♭7", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("Bb", parsed.Root)

	parsed, err = Parse("F♯m7", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("F#", parsed.Root)
	assert.Equal(model.Minor, parsed.Quality)
}

func TestParseBlk(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("Cblk", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("C", parsed.Root)
	assert.Equal(model.Blk, parsed.Quality)

	// case-insensitive, anywhere in the token
	parsed, err = Parse("EbBLK", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("Eb", parsed.Root)
	assert.Equal(model.Blk, parsed.Quality)
}

func TestParseBass(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("G7/B", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("G", parsed.Root)
	assert.Equal(model.Min7, parsed.Seventh)
	assert.Equal("B", parsed.Bass)

	// unresolvable bass is dropped, not fatal
	parsed, err = Parse("C/X", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("C", parsed.Root)
	assert.Equal("", parsed.Bass)
}

func TestParseRoman(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("IIIm/G", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("E", parsed.Root)
	assert.Equal(model.Minor, parsed.Quality)
	assert.Equal("G", parsed.Bass)
	assert.True(parsed.IsRoman)
	assert.Equal("III", parsed.RomanSymbol)

	// the same degree lands elsewhere in another key
	parsed, err = Parse("IIIm", mustKey(t, "G"))
	assert.NoError(err)
	assert.Equal("B", parsed.Root)

	parsed, err = Parse("bVII7", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("A#", parsed.Root)
	assert.Equal(model.Min7, parsed.Seventh)
}

func TestParseLowercaseRomanDefaults(t *testing.T) {
	cases := []struct {
		token   string
		root    string
		quality model.Quality
	}{
		{"ii", "D", model.Minor},
		{"iii", "E", model.Minor},
		{"vi", "A", model.Minor},
		{"vii", "B", model.Dim},
		{"iv", "F", model.Major},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("parse %v", c.token), func(t *testing.T) {
			parsed, err := Parse(c.token, pitch.DefaultKey)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.root, parsed.Root)
			assert.Equal(c.quality, parsed.Quality)
		})
	}
}

func TestParseTensions(t *testing.T) {
	assert := assert.New(t)

	// explicit tensions imply a minor seventh
	parsed, err := Parse("C13", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]string{"13"}, parsed.Tensions)
	assert.Equal(model.Min7, parsed.Seventh)

	parsed, err = Parse("Cm11", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal(model.Minor, parsed.Quality)
	assert.Equal([]string{"11"}, parsed.Tensions)
	assert.Equal(model.Min7, parsed.Seventh)

	// the legacy bare sixth carries no seventh
	parsed, err = Parse("C6", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]string{"6"}, parsed.Tensions)
	assert.Equal(model.SeventhNone, parsed.Seventh)
}

func TestParseParens(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("Dm7(b9,#11)", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal("D", parsed.Root)
	assert.Equal(model.Minor, parsed.Quality)
	assert.Equal(model.Min7, parsed.Seventh)
	assert.Equal([]string{"b9", "#11"}, parsed.Parens)

	// one spelling per degree survives
	parsed, err = Parse("C7(b9,#9,9)", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]string{"b9"}, parsed.Parens)

	// +/- normalize inside the group
	parsed, err = Parse("C7(+11,-13)", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]string{"#11", "b13"}, parsed.Parens)

	// a paren fifth is an alteration
	parsed, err = Parse("C7(b5)", pitch.DefaultKey)
	assert.NoError(err)
	assert.Empty(parsed.Parens)
	assert.Equal([]string{"b5"}, parsed.Alterations)

	// paren content alone implies the seventh
	parsed, err = Parse("C(b9)", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal(model.Min7, parsed.Seventh)
}

func TestParseTopLevelAlteredTensions(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("C7b13", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal(model.Min7, parsed.Seventh)
	assert.Empty(parsed.Tensions)
	assert.Equal([]string{"b13"}, parsed.Parens)

	parsed, err = Parse("C7#9", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]string{"#9"}, parsed.Parens)
}

func TestParseOmissions(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("C7omit3", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]int{3}, parsed.Omissions)

	parsed, err = Parse("Comit3omit5", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]int{3, 5}, parsed.Omissions)
}

func TestParseAlterations(t *testing.T) {
	assert := assert.New(t)

	parsed, err := Parse("G7b5", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal(model.Major, parsed.Quality)
	assert.Equal([]string{"b5"}, parsed.Alterations)

	parsed, err = Parse("C7#5", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal([]string{"#5"}, parsed.Alterations)
}

func TestParseEmptyTokenIsDefaultC(t *testing.T) {
	assert := assert.New(t)
	parsed, err := Parse("", pitch.DefaultKey)
	assert.NoError(err)
	assert.Equal(model.ParsedChord{Root: "C"}, parsed)
}

func TestParseMalformedRoot(t *testing.T) {
	assert := assert.New(t)
	for _, token := range []string{"H7", "xyz", "?", "blk"} {
		_, err := Parse(token, pitch.DefaultKey)
		assert.ErrorIs(err, model.ErrMalformedRoot, "token %v", token)
	}
}
