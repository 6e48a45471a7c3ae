// Package sheet renders a chart as a printable PDF grid of measures.
package sheet

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/jsphweid/chordcraft/chart"
	"github.com/jsphweid/chordcraft/constants"
	"github.com/jsphweid/chordcraft/pitch"
	"github.com/jsphweid/chordcraft/symbol"
)

const (
	pageWidth    = 8.5
	pageHeight   = 11.0
	margin       = 0.5
	rowHeight    = 0.45
	cellsPerRow  = 4
	headerHeight = 0.35
)

// WritePDF draws the chart onto Letter pages, one part header per
// section, four measures per row. Tokens are re-rendered in the
// requested notation mode; unparseable tokens print verbatim.
func WritePDF(c chart.Chart, asRoman bool, path string) error {
	keys, err := c.PartKeys()
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()
	y := margin

	newPageIfNeeded := func(need float64) {
		if y+need > pageHeight-margin {
			pdf.AddPage()
			y = margin
		}
	}

	cellWidth := (pageWidth - 2*margin) / cellsPerRow
	for pi, part := range c.Parts {
		key := keys[pi]

		newPageIfNeeded(headerHeight + rowHeight)
		pdf.SetFont("courier", "B", 13)
		header := "[" + part.Name + "]"
		if part.KeyName != "" {
			header += fmt.Sprintf("  (Key:%v)", part.KeyName)
		}
		pdf.Text(margin, y, header)
		y += headerHeight

		pdf.SetFont("courier", "", 11)
		for mi := 0; mi < len(part.Measures); mi += cellsPerRow {
			newPageIfNeeded(rowHeight)
			// bar lines
			pdf.SetLineWidth(0.01)
			for i := 0; i <= cellsPerRow; i++ {
				x := margin + float64(i)*cellWidth
				pdf.Line(x, y-rowHeight*0.6, x, y+rowHeight*0.2)
			}
			for i := 0; i < cellsPerRow && mi+i < len(part.Measures); i++ {
				cell := renderMeasure(part.Measures[mi+i], asRoman, key)
				pdf.Text(margin+float64(i)*cellWidth+0.1, y, cell)
			}
			y += rowHeight
		}
		y += rowHeight / 2
	}

	return pdf.OutputFileAndClose(path)
}

func renderMeasure(m chart.Measure, asRoman bool, key pitch.Key) string {
	var out string
	for i, token := range m {
		if i > 0 {
			out += " "
		}
		if token == constants.RepeatToken {
			out += token
			continue
		}
		parsed, err := symbol.Parse(token, key)
		if err != nil {
			out += token
			continue
		}
		out += symbol.Render(parsed, asRoman, key)
	}
	return out
}
