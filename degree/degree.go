// Package degree converts chord roots between pitch classes and
// Roman-numeral scale degrees relative to a key.
package degree

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordcraft/pitch"
)

// ErrInvalidDegree means the numeral was outside I-VII or the accidental
// combination was malformed.
var ErrInvalidDegree = errors.New("invalid scale degree")

var majorDegreeSemitones = map[string]int{
	"I": 0, "II": 2, "III": 4, "IV": 5, "V": 7, "VI": 9, "VII": 11,
}

// Longest numerals first so the leftmost alternative wins.
var romanRe = regexp.MustCompile(`(?i)^([b#]?)(VII|VI|IV|V|III|II|I)$`)

// ToPitchClass resolves an optionally accidentaled Roman numeral (e.g.
// "bIII") to a pitch class in the given key.
func ToPitchClass(k pitch.Key, token string) (pitch.Class, error) {
	m := romanRe.FindStringSubmatch(strings.TrimSpace(token))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDegree, token)
	}
	semis, ok := majorDegreeSemitones[strings.ToUpper(m[2])]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDegree, token)
	}
	switch m[1] {
	case "#":
		semis++
	case "b":
		semis--
	}
	return pitch.Mod(int(k.Tonic) + semis), nil
}

var naturalDegrees = map[pitch.Class]string{
	0: "I", 2: "II", 4: "III", 5: "IV", 7: "V", 9: "VI", 11: "VII",
}

// sharp-of-the-degree-below vs flat-of-the-degree-above, matching the
// note-name spelling convention of the same key.
var accidentalDegrees = map[pitch.Class][2]string{
	1:  {"#I", "bII"},
	3:  {"#II", "bIII"},
	6:  {"#IV", "bV"},
	8:  {"#V", "bVI"},
	10: {"#VI", "bVII"},
}

// FromPitchClass spells a pitch class as a scale degree of the key.
func FromPitchClass(k pitch.Key, c pitch.Class) string {
	rel := pitch.Mod(int(c) - int(k.Tonic))
	if name, ok := naturalDegrees[rel]; ok {
		return name
	}
	pair := accidentalDegrees[rel]
	if k.PrefersSharps {
		return pair[0]
	}
	return pair[1]
}
