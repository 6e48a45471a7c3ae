package symbol

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordcraft/degree"
	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/pitch"
)

// Render turns a ParsedChord back into chord text, alphabetic or Roman.
// Canonical forms round-trip through Parse; non-canonical input spellings
// (Maj7, ø, -7) come back in their canonical form.
func Render(p model.ParsedChord, asRoman bool, key pitch.Key) string {
	var b strings.Builder
	b.WriteString(baseLabel(p, asRoman, key))

	if p.Quality == model.Dim && p.Seventh == model.Min7 {
		// half-diminished canonical form, other suffix slots cleared
		b.WriteString("m7b5")
		b.WriteString(bassSuffix(p))
		return b.String()
	}

	ext, leftovers := splitExtension(p)
	digit := seventhDigit(p.Seventh, ext)

	switch p.Quality {
	case model.Minor:
		if !suppressRomanQuality(p, asRoman) {
			b.WriteString("m")
		}
		b.WriteString(digit)
	case model.Dim:
		if p.Seventh == model.Dim7 {
			b.WriteString("dim7")
			if ext > 0 {
				leftovers = append([]string{strconv.Itoa(ext)}, leftovers...)
			}
		} else {
			if !suppressRomanQuality(p, asRoman) {
				b.WriteString("dim")
			}
			b.WriteString(digit)
		}
	case model.Aug:
		b.WriteString("aug")
		b.WriteString(digit)
	case model.Sus2:
		b.WriteString(digit)
		b.WriteString("sus2")
	case model.Sus4:
		b.WriteString(digit)
		b.WriteString("sus4")
	case model.Blk:
		b.WriteString(digit)
		b.WriteString("blk")
	default:
		b.WriteString(digit)
	}

	for _, a := range p.Alterations {
		b.WriteString(a)
	}
	omissions := append([]int(nil), p.Omissions...)
	sort.Ints(omissions)
	for _, o := range omissions {
		b.WriteString("omit")
		b.WriteString(strconv.Itoa(o))
	}
	if len(leftovers) > 0 {
		b.WriteString("(")
		b.WriteString(strings.Join(leftovers, ","))
		b.WriteString(")")
	}
	b.WriteString(bassSuffix(p))
	return b.String()
}

func baseLabel(p model.ParsedChord, asRoman bool, key pitch.Key) string {
	if !asRoman {
		return p.Root
	}
	if p.IsRoman && p.RomanSymbol != "" {
		return p.RomanSymbol
	}
	pc, err := pitch.NameToClass(p.Root)
	if err != nil {
		return p.Root
	}
	return degree.FromPitchClass(key, pc)
}

// A preserved lowercase Roman symbol already encodes its default quality;
// re-marking it would double-encode on round trip.
func suppressRomanQuality(p model.ParsedChord, asRoman bool) bool {
	if !asRoman || !p.IsRoman || p.RomanSymbol == "" {
		return false
	}
	numeral := strings.TrimLeft(p.RomanSymbol, "b#")
	if numeral != strings.ToLower(numeral) {
		return false
	}
	switch strings.ToUpper(numeral) {
	case "II", "III", "VI":
		return p.Quality == model.Minor
	case "VII":
		return p.Quality == model.Dim
	}
	return false
}

// splitExtension picks the highest tension as the chord's extension digit;
// the rest joins the parenthetical leftovers.
func splitExtension(p model.ParsedChord) (int, []string) {
	ext := 0
	for _, t := range p.Tensions {
		if n, err := strconv.Atoi(t); err == nil && n > ext {
			ext = n
		}
	}
	var leftovers []string
	for _, t := range p.Tensions {
		if n, err := strconv.Atoi(t); err != nil || n != ext {
			leftovers = append(leftovers, t)
		}
	}
	leftovers = append(leftovers, p.Parens...)
	return ext, leftovers
}

func seventhDigit(s model.Seventh, ext int) string {
	switch s {
	case model.Min7:
		if ext > 0 {
			return strconv.Itoa(ext)
		}
		return "7"
	case model.Maj7:
		if ext > 0 {
			return "M" + strconv.Itoa(ext)
		}
		return "M7"
	case model.SeventhNone:
		if ext > 0 {
			return strconv.Itoa(ext)
		}
	}
	return ""
}

func bassSuffix(p model.ParsedChord) string {
	if p.Bass == "" {
		return ""
	}
	bassPC, err1 := pitch.NameToClass(p.Bass)
	rootPC, err2 := pitch.NameToClass(p.Root)
	if err1 == nil && err2 == nil && bassPC == rootPC {
		return ""
	}
	return "/" + p.Bass
}
