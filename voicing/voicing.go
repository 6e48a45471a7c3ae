// Package voicing turns parsed chords into concrete ascending MIDI note
// sets: a low bass note plus octave-placed chord tones.
package voicing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordcraft/constants"
	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/pitch"
)

type Options struct {
	// OmitConflictFifth strips the natural fifth when a #11 or b13
	// tension would clash a semitone against it.
	OmitConflictFifth bool
	// OmitDoubledBass removes chord tones sharing the bass pitch class.
	OmitDoubledBass bool
}

var triads = map[model.Quality][]int{
	model.Major: {0, 4, 7},
	model.Minor: {0, 3, 7},
	model.Dim:   {0, 3, 6},
	model.Aug:   {0, 4, 8},
	model.Sus2:  {0, 2, 7},
	model.Sus4:  {0, 5, 7},
}

var seventhIntervals = map[model.Seventh]int{
	model.Min7: 10,
	model.Maj7: 11,
	model.Dim7: 9,
}

var tensionOffsets = map[string]int{
	"9": 14, "b9": 13, "#9": 15,
	"11": 17, "#11": 18,
	"13": 21, "b13": 20,
	"6": 9,
}

// blk sounds the augmented triad rooted a whole step below the stated
// root: these intervals are relative to the stated root itself.
var blkIntervals = []int{2, 6, 10}

// Build returns the chord's MIDI notes, lowest to highest, no duplicate
// pitches, minimum note always the bass.
func Build(p model.ParsedChord, opts Options) (model.Notes, error) {
	rootPC, err := pitch.NameToClass(p.Root)
	if err != nil {
		return nil, fmt.Errorf("unvoiceable root %q: %v", p.Root, err)
	}
	bassPC := rootPC
	if p.Bass != "" {
		if pc, err := pitch.NameToClass(p.Bass); err == nil {
			bassPC = pc
		}
	}
	bassNote := constants.BaseOctave - 12 + int(bassPC)

	var tones []int
	if p.Quality == model.Blk {
		// no literal root tone to anchor on, ascend straight off the bass
		prev := bassNote
		for _, iv := range blkIntervals {
			n := placeAbove(prev, pitch.Mod(int(rootPC)+iv))
			tones = append(tones, n)
			prev = n
		}
	} else {
		rootBase := constants.BaseOctave + int(rootPC)
		prev := rootBase - 1
		for _, iv := range intervals(p, opts) {
			n := placeAbove(prev, pitch.Mod(int(rootPC)+iv))
			// the 13th degree must not overshoot an octave plus a
			// sixth above the root
			if iv >= 20 && n > rootBase+iv {
				n -= 12
			}
			tones = append(tones, n)
			prev = n
		}
	}

	if opts.OmitDoubledBass {
		kept := tones[:0]
		for _, n := range tones {
			if pitch.Mod(n) != bassPC {
				kept = append(kept, n)
			}
		}
		tones = kept
	}

	sort.Ints(tones)
	notes := model.Notes{uint8(bassNote)}
	for _, n := range tones {
		if n < 0 || n > 127 {
			continue
		}
		if len(notes) > 0 && uint8(n) == notes[len(notes)-1] {
			continue
		}
		notes = append(notes, uint8(n))
	}
	return notes, nil
}

// intervals assembles the semitone offsets above the root for every
// quality except blk.
func intervals(p model.ParsedChord, opts Options) []int {
	ivs := append([]int(nil), triads[p.Quality]...)
	if iv, ok := seventhIntervals[p.Seventh]; ok {
		ivs = append(ivs, iv)
	}
	for _, a := range p.Alterations {
		switch a {
		case "b5":
			ivs = replaceFifth(ivs, 6)
		case "#5":
			ivs = replaceFifth(ivs, 8)
		}
	}
	if p.Omits(3) {
		ivs = removeRange(ivs, 2, 5)
	}
	if p.Omits(5) {
		ivs = removeRange(ivs, 6, 8)
	}
	if opts.OmitConflictFifth && (p.HasTension("#11") || p.HasTension("b13")) {
		kept := ivs[:0]
		for _, iv := range ivs {
			if iv%12 != 7 {
				kept = append(kept, iv)
			}
		}
		ivs = kept
	}
	sort.Ints(ivs)
	for _, t := range p.Tensions {
		if off, ok := tensionOffsets[strings.TrimSpace(t)]; ok {
			ivs = append(ivs, off)
		}
	}
	for _, t := range p.Parens {
		if off, ok := tensionOffsets[strings.TrimSpace(t)]; ok {
			ivs = append(ivs, off)
		}
	}
	return dedupe(ivs)
}

func replaceFifth(ivs []int, alt int) []int {
	out := ivs[:0]
	for _, iv := range ivs {
		if iv != 7 {
			out = append(out, iv)
		}
	}
	return append(out, alt)
}

func removeRange(ivs []int, lo, hi int) []int {
	out := ivs[:0]
	for _, iv := range ivs {
		if iv < lo || iv > hi {
			out = append(out, iv)
		}
	}
	return out
}

func dedupe(ivs []int) []int {
	seen := make(map[int]bool, len(ivs))
	out := ivs[:0]
	for _, iv := range ivs {
		if !seen[iv] {
			seen[iv] = true
			out = append(out, iv)
		}
	}
	return out
}

// placeAbove finds the lowest note strictly above prev with the wanted
// pitch class.
func placeAbove(prev int, pc pitch.Class) int {
	n := prev + 1
	diff := (int(pc) - n) % 12
	if diff < 0 {
		diff += 12
	}
	return n + diff
}
