package pitch

import (
	"fmt"
	"strings"
)

// Class is a pitch class, 0 (C) through 11 (B).
type Class int

var namesSharp = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var namesFlat = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var letterClass = map[byte]Class{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// Mod wraps any semitone count into 0..11.
func Mod(n int) Class {
	return Class(((n % 12) + 12) % 12)
}

// NameToClass resolves a note name of the form [A-G][#b]? to its pitch
// class. The letter is case-tolerant; anything else is an error.
func NameToClass(name string) (Class, error) {
	if len(name) == 0 || len(name) > 2 {
		return 0, fmt.Errorf("unknown note name %q", name)
	}
	letter := strings.ToUpper(name)[0]
	c, ok := letterClass[letter]
	if !ok {
		return 0, fmt.Errorf("unknown note name %q", name)
	}
	if len(name) == 2 {
		switch name[1] {
		case '#':
			c = Mod(int(c) + 1)
		case 'b':
			c = Mod(int(c) - 1)
		default:
			return 0, fmt.Errorf("unknown note name %q", name)
		}
	}
	return c, nil
}

// NormalizeName upper-cases the letter of a valid note name, leaving the
// accidental alone, so typed input like "bb" becomes "Bb".
func NormalizeName(name string) (string, error) {
	if _, err := NameToClass(name); err != nil {
		return "", err
	}
	return strings.ToUpper(name[:1]) + name[1:], nil
}

// ClassName spells a pitch class using the sharp or flat table.
func ClassName(c Class, preferSharps bool) string {
	c = Mod(int(c))
	if preferSharps {
		return namesSharp[c]
	}
	return namesFlat[c]
}

// Key is a tonic plus the spelling preference its signature implies.
type Key struct {
	Name          string
	Tonic         Class
	PrefersSharps bool
}

// The 15 supported tonics, enharmonic pairs included. Order matches the
// circle of fifths, sharps before flats.
var keyOrder = []string{
	"C", "G", "D", "A", "E", "B", "F#", "C#",
	"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb",
}

var keyPrefersSharps = map[string]bool{
	"C": true, "G": true, "D": true, "A": true,
	"E": true, "B": true, "F#": true, "C#": true,
	"F": false, "Bb": false, "Eb": false, "Ab": false,
	"Db": false, "Gb": false, "Cb": false,
}

var DefaultKey = Key{Name: "C", Tonic: 0, PrefersSharps: true}

// KeyFromName looks a key up in the fixed tonic table. The empty string
// yields the default key of C.
func KeyFromName(name string) (Key, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultKey, nil
	}
	normalized, err := NormalizeName(name)
	if err != nil {
		return Key{}, fmt.Errorf("unsupported key %q", name)
	}
	prefersSharps, ok := keyPrefersSharps[normalized]
	if !ok {
		return Key{}, fmt.Errorf("unsupported key %q", name)
	}
	tonic, err := NameToClass(normalized)
	if err != nil {
		return Key{}, fmt.Errorf("unsupported key %q", name)
	}
	return Key{Name: normalized, Tonic: tonic, PrefersSharps: prefersSharps}, nil
}

// KeyNames returns the supported key names alongside their preference,
// in circle-of-fifths order.
func KeyNames() []string {
	res := make([]string, len(keyOrder))
	copy(res, keyOrder)
	return res
}

// Spell renders a pitch class in the key's preferred spelling.
func (k Key) Spell(c Class) string {
	return ClassName(c, k.PrefersSharps)
}
