package model

import "errors"

type Notes = []uint8

// ErrMalformedRoot means neither a Roman nor an alphabetic root could be
// found. Fatal to the token only; callers skip the slot and keep going.
var ErrMalformedRoot = errors.New("malformed chord root")

type Quality int

const (
	Major Quality = iota
	Minor
	Dim
	Aug
	Sus2
	Sus4
	// Blk sounds as an augmented triad rooted a whole step below the
	// stated root, over the stated root as bass.
	Blk
)

func (q Quality) String() string {
	switch q {
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	case Dim:
		return "dim"
	case Aug:
		return "aug"
	case Sus2:
		return "sus2"
	case Sus4:
		return "sus4"
	case Blk:
		return "blk"
	}
	return "Major"
}

type Seventh int

const (
	SeventhNone Seventh = iota
	Min7
	Maj7
	Dim7
)

func (s Seventh) String() string {
	switch s {
	case Min7:
		return "m7"
	case Maj7:
		return "M7"
	case Dim7:
		return "dim7"
	}
	return ""
}

// ParsedChord is the canonical parse result. Root is always a concrete
// note name, even for Roman input. Immutable once constructed.
type ParsedChord struct {
	Root        string   `json:"root"`
	Quality     Quality  `json:"quality"`
	Seventh     Seventh  `json:"seventh"`
	Tensions    []string `json:"tensions,omitempty"`    // unaltered: 9, 11, 13, legacy 6
	Alterations []string `json:"alterations,omitempty"` // b5, #5
	Parens      []string `json:"parens,omitempty"`      // altered tensions: b9, #9, #11, b13
	Omissions   []int    `json:"omissions,omitempty"`   // 3, 5
	Bass        string   `json:"bass,omitempty"`
	IsRoman     bool     `json:"is_roman,omitempty"`
	RomanSymbol string   `json:"roman_symbol,omitempty"`
}

// HasTension reports whether the name appears in the tension or paren sets.
func (p ParsedChord) HasTension(name string) bool {
	for _, t := range p.Tensions {
		if t == name {
			return true
		}
	}
	for _, t := range p.Parens {
		if t == name {
			return true
		}
	}
	return false
}

// Omits reports whether the chord tone degree (3 or 5) is omitted.
func (p ParsedChord) Omits(degree int) bool {
	for _, o := range p.Omissions {
		if o == degree {
			return true
		}
	}
	return false
}
