// Package chart models a chord chart as parts of measures of chord
// tokens, parses and emits the chart text interchange format, and
// resolves the chart into timed, parsed slots.
package chart

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/chordcraft/pitch"
)

// Measure is an ordered token list. Empty means a bar of silence.
type Measure []string

type Part struct {
	Name string
	// KeyName is empty when the part inherits the preceding part's key.
	KeyName  string
	Measures []Measure
}

type Chart struct {
	Parts []Part
}

const cellsPerRow = 4

var headerRe = regexp.MustCompile(`^\[([^\]]*)\]\s*(?:\(\s*[Kk]ey\s*:\s*([^)]*)\))?\s*$`)

// ParseText reads the chart interchange format: [Name] (Key:X) headers,
// measure rows starting with |, blank lines ignored.
func ParseText(text string) (Chart, error) {
	var c Chart
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := headerRe.FindStringSubmatch(line); m != nil {
			c.Parts = append(c.Parts, Part{
				Name:    strings.TrimSpace(m[1]),
				KeyName: strings.TrimSpace(m[2]),
			})
			continue
		}
		if strings.HasPrefix(line, "|") {
			if len(c.Parts) == 0 {
				c.Parts = append(c.Parts, Part{})
			}
			p := &c.Parts[len(c.Parts)-1]
			p.Measures = append(p.Measures, parseRow(line)...)
			continue
		}
		return Chart{}, fmt.Errorf("line %v is neither a part header nor a measure row: %q", i+1, line)
	}
	return c, nil
}

// parseRow always yields exactly four measures, padding short rows.
func parseRow(line string) []Measure {
	cells := strings.Split(line, "|")[1:]
	// a trailing | is a terminator, not an empty measure
	if n := len(cells); n > 0 && strings.TrimSpace(cells[n-1]) == "" && n > cellsPerRow {
		cells = cells[:n-1]
	}
	if len(cells) > cellsPerRow {
		cells = cells[:cellsPerRow]
	}
	measures := make([]Measure, cellsPerRow)
	for i, cell := range cells {
		measures[i] = Measure(strings.Fields(cell))
	}
	return measures
}

// Text emits the chart in the interchange format. ParseText(c.Text())
// reproduces the chart.
func (c Chart) Text() string {
	var b strings.Builder
	for i, p := range c.Parts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[" + p.Name + "]")
		if p.KeyName != "" {
			b.WriteString(" (Key:" + p.KeyName + ")")
		}
		b.WriteString("\n")
		for j := 0; j < len(p.Measures); j += cellsPerRow {
			cells := make([]string, 0, cellsPerRow)
			for k := j; k < j+cellsPerRow && k < len(p.Measures); k++ {
				cells = append(cells, strings.Join(p.Measures[k], " "))
			}
			for len(cells) < cellsPerRow {
				cells = append(cells, "")
			}
			b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		}
	}
	return b.String()
}

// PartKeys resolves each part's effective key: an explicit key wins,
// otherwise the nearest preceding part's key applies, defaulting to C.
func (c Chart) PartKeys() ([]pitch.Key, error) {
	keys := make([]pitch.Key, len(c.Parts))
	cur := pitch.DefaultKey
	for i, p := range c.Parts {
		if p.KeyName != "" {
			k, err := pitch.KeyFromName(p.KeyName)
			if err != nil {
				return nil, fmt.Errorf("part %q: %v", p.Name, err)
			}
			cur = k
		}
		keys[i] = cur
	}
	return keys, nil
}

// NumMeasures counts measures across all parts.
func (c Chart) NumMeasures() int {
	var n int
	for _, p := range c.Parts {
		n += len(p.Measures)
	}
	return n
}
