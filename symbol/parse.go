// Package symbol parses free-form chord tokens into structured chords and
// renders them back to canonical alphabetic or Roman-numeral text.
package symbol

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordcraft/degree"
	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/pitch"
)

// Unicode accidental glyphs and full-width variants collapse to ASCII
// before any lexical rule runs.
var accidentalReplacer = strings.NewReplacer(
	"♭", "b",
	"♯", "#",
	"♮", "",
	"𝄪", "##",
	"𝄫", "bb",
	"＃", "#",
	"ｂ", "b",
)

var (
	blkRe   = regexp.MustCompile(`(?i)blk`)
	omit3Re = regexp.MustCompile(`(?i)omit3`)
	omit5Re = regexp.MustCompile(`(?i)omit5`)
	parenRe = regexp.MustCompile(`\(([^)]*)\)`)
	maj7Re  = regexp.MustCompile(`(?i)maj7`)
	minRe   = regexp.MustCompile(`(?i)min`)

	parenItemRe = regexp.MustCompile(`^(b|#)?(5|9|11|13)$`)

	// Longest numerals first so leftmost-alternation picks the full degree.
	romanRootRe = regexp.MustCompile(`(?i)^([b#]?)(VII|VI|IV|V|III|II|I)`)
	alphaRootRe = regexp.MustCompile(`^[A-Ga-g][#b]?`)
)

// signed tension spellings normalize before the bare "-" collapses to "m",
// so C7-5 stays a flat five while C-7 becomes a minor seventh.
var signedReplacer = strings.NewReplacer(
	"-5", "b5",
	"+5", "#5",
	"-9", "b9",
	"+9", "#9",
	"+11", "#11",
	"-13", "b13",
)

// lexer consumes matched fragments of the token left to right, narrowing
// rest as it goes. Each strip corresponds to one grammar rule.
type lexer struct {
	rest string

	blk        bool
	bass       string
	omissions  []int
	parens     []string
	tensions   []string
	alters     []string
	seventh    model.Seventh
	hint       model.Quality
	hasHint    bool
	halfDim    bool
	roman      bool
	romanSym   string
	romanLower bool
	romanUpper string
	root       string
}

// Parse turns a chord token into a ParsedChord. The empty token is the
// degenerate C-Major chord; a token with no recognizable root fails with
// model.ErrMalformedRoot. Everything else degrades gracefully.
func Parse(token string, key pitch.Key) (model.ParsedChord, error) {
	raw := strings.TrimSpace(token)
	if raw == "" {
		return model.ParsedChord{Root: "C"}, nil
	}

	lx := &lexer{rest: accidentalReplacer.Replace(raw)}
	lx.stripBlk()
	lx.splitBass()
	lx.stripOmissions()
	lx.extractParens()
	lx.applySynonyms()
	if err := lx.matchRoot(key); err != nil {
		return model.ParsedChord{}, err
	}
	lx.halfDim = strings.Contains(lx.rest, "m7b5")
	lx.extractTensions()
	lx.matchSeventh()
	quality := lx.resolveQuality()
	lx.extractAlterations()

	if lx.halfDim {
		quality = model.Dim
		lx.seventh = model.Min7
		lx.alters = nil
	}
	if lx.seventh == model.SeventhNone && lx.impliesSeventh() {
		lx.seventh = model.Min7
	}

	return model.ParsedChord{
		Root:        lx.root,
		Quality:     quality,
		Seventh:     lx.seventh,
		Tensions:    lx.tensions,
		Alterations: lx.alters,
		Parens:      lx.parens,
		Omissions:   lx.omissions,
		Bass:        lx.bass,
		IsRoman:     lx.roman,
		RomanSymbol: lx.romanSym,
	}, nil
}

// blk is stripped before root detection so its letters cannot collide
// with note names.
func (lx *lexer) stripBlk() {
	if blkRe.MatchString(lx.rest) {
		lx.blk = true
		lx.rest = blkRe.ReplaceAllString(lx.rest, "")
	}
}

// An unresolvable bass name is dropped rather than failing the parse.
func (lx *lexer) splitBass() {
	i := strings.Index(lx.rest, "/")
	if i < 0 {
		return
	}
	bassRaw := strings.TrimSpace(lx.rest[i+1:])
	lx.rest = lx.rest[:i]
	if name, err := pitch.NormalizeName(bassRaw); err == nil {
		lx.bass = name
	}
}

func (lx *lexer) stripOmissions() {
	if omit3Re.MatchString(lx.rest) {
		lx.omissions = append(lx.omissions, 3)
		lx.rest = omit3Re.ReplaceAllString(lx.rest, "")
	}
	if omit5Re.MatchString(lx.rest) {
		lx.omissions = append(lx.omissions, 5)
		lx.rest = omit5Re.ReplaceAllString(lx.rest, "")
	}
}

// addParen keeps only the first spelling per numeric degree.
func (lx *lexer) addParen(item string) {
	core := strings.TrimLeft(item, "b#")
	for _, existing := range lx.parens {
		if strings.TrimLeft(existing, "b#") == core {
			return
		}
	}
	if core == "5" {
		// a paren fifth is an alteration, not a tension
		if item != "5" {
			lx.addAlteration(item)
		}
		return
	}
	lx.parens = append(lx.parens, item)
}

func (lx *lexer) addAlteration(item string) {
	for _, existing := range lx.alters {
		if existing == item {
			return
		}
	}
	lx.alters = append(lx.alters, item)
}

func (lx *lexer) extractParens() {
	m := parenRe.FindStringSubmatchIndex(lx.rest)
	if m == nil {
		return
	}
	contents := lx.rest[m[2]:m[3]]
	lx.rest = lx.rest[:m[0]] + lx.rest[m[1]:]
	for _, item := range strings.Split(contents, ",") {
		item = strings.TrimSpace(item)
		item = strings.ReplaceAll(item, "+", "#")
		item = strings.ReplaceAll(item, "-", "b")
		if parenItemRe.MatchString(item) {
			lx.addParen(item)
		}
	}
}

func (lx *lexer) applySynonyms() {
	lx.rest = maj7Re.ReplaceAllString(lx.rest, "M7")
	lx.rest = minRe.ReplaceAllString(lx.rest, "m")
	lx.rest = strings.ReplaceAll(lx.rest, "ø", "m7b5")
	lx.rest = strings.ReplaceAll(lx.rest, "°", "dim")
	lx.rest = signedReplacer.Replace(lx.rest)
	lx.rest = strings.ReplaceAll(lx.rest, "-", "m")
}

func (lx *lexer) matchRoot(key pitch.Key) error {
	if m := romanRootRe.FindStringSubmatch(lx.rest); m != nil {
		pc, err := degree.ToPitchClass(key, m[0])
		if err != nil {
			return fmt.Errorf("%w: %q", model.ErrMalformedRoot, lx.rest)
		}
		lx.roman = true
		lx.romanSym = m[0]
		lx.romanLower = m[2] == strings.ToLower(m[2])
		lx.romanUpper = strings.ToUpper(m[2])
		lx.root = key.Spell(pc)
		lx.rest = lx.rest[len(m[0]):]
		return nil
	}
	if m := alphaRootRe.FindString(lx.rest); m != "" {
		name, err := pitch.NormalizeName(m)
		if err != nil {
			return fmt.Errorf("%w: %q", model.ErrMalformedRoot, lx.rest)
		}
		lx.root = name
		lx.rest = lx.rest[len(m):]
		return nil
	}
	return fmt.Errorf("%w: %q", model.ErrMalformedRoot, lx.rest)
}

// Altered spellings are pulled before plain digits so b13 is not shredded
// into a stray accidental plus a 13.
var alteredTensions = []string{"b13", "#11", "b9", "#9"}
var plainTensions = []string{"13", "11", "9", "6"}

func (lx *lexer) extractTensions() {
	for _, t := range alteredTensions {
		if strings.Contains(lx.rest, t) {
			lx.rest = strings.Replace(lx.rest, t, "", 1)
			lx.addParen(t)
		}
	}
	for _, t := range plainTensions {
		if strings.Contains(lx.rest, t) {
			lx.rest = strings.Replace(lx.rest, t, "", 1)
			lx.tensions = append(lx.tensions, t)
		}
	}
}

func (lx *lexer) matchSeventh() {
	switch {
	case strings.Contains(lx.rest, "dim7"):
		lx.rest = strings.Replace(lx.rest, "dim7", "", 1)
		lx.seventh = model.Dim7
		lx.setHint(model.Dim)
	case strings.Contains(lx.rest, "M7"):
		lx.rest = strings.Replace(lx.rest, "M7", "", 1)
		lx.seventh = model.Maj7
	case strings.Contains(lx.rest, "m7"):
		lx.rest = strings.Replace(lx.rest, "m7", "", 1)
		lx.seventh = model.Min7
		lx.setHint(model.Minor)
	case strings.Contains(lx.rest, "7"):
		lx.rest = strings.Replace(lx.rest, "7", "", 1)
		lx.seventh = model.Min7
	}
}

// the seventh fixes the base quality unless blk already claimed it
func (lx *lexer) setHint(q model.Quality) {
	if lx.blk {
		return
	}
	lx.hint = q
	lx.hasHint = true
}

func (lx *lexer) resolveQuality() model.Quality {
	switch {
	case lx.blk:
		return model.Blk
	case strings.Contains(lx.rest, "sus4"):
		return model.Sus4
	case strings.Contains(lx.rest, "sus2"):
		return model.Sus2
	case strings.Contains(lx.rest, "aug"), strings.Contains(lx.rest, "+"):
		return model.Aug
	case strings.Contains(lx.rest, "dim"):
		return model.Dim
	case lx.hasHint:
		return lx.hint
	case strings.Contains(lx.rest, "m"):
		return model.Minor
	case lx.roman && lx.romanLower:
		switch lx.romanUpper {
		case "II", "III", "VI":
			return model.Minor
		case "VII":
			return model.Dim
		}
	}
	return model.Major
}

func (lx *lexer) extractAlterations() {
	for _, a := range []string{"b5", "#5"} {
		if strings.Contains(lx.rest, a) {
			lx.rest = strings.Replace(lx.rest, a, "", 1)
			lx.addAlteration(a)
		}
	}
}

// Tensions without an explicit seventh imply a minor seventh (legacy bare
// 6 exempted, a sixth chord carries no seventh).
func (lx *lexer) impliesSeventh() bool {
	if len(lx.parens) > 0 {
		return true
	}
	for _, t := range lx.tensions {
		if t != "6" {
			return true
		}
	}
	return false
}
