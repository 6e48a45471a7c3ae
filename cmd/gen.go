package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcraft/chart"
	"github.com/jsphweid/chordcraft/constants"
	"github.com/jsphweid/chordcraft/midi"
	"github.com/jsphweid/chordcraft/sheet"
	"github.com/jsphweid/chordcraft/util"
	"github.com/jsphweid/chordcraft/voicing"
)

var (
	genOut            string
	genPDF            string
	genTicksPerBeat   int
	genBPM            float64
	genRoman          bool
	omitConflictFifth bool
	omitDoubledBass   bool
)

func init() {
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "output .mid path (default out/<uuid>.mid)")
	genCmd.Flags().StringVar(&genPDF, "pdf", "", "also render the chart grid to a PDF at this path")
	genCmd.Flags().IntVar(&genTicksPerBeat, "tpb", constants.DefaultTicksPerBeat, "ticks per beat")
	genCmd.Flags().Float64Var(&genBPM, "bpm", constants.DefaultBPM, "tempo")
	genCmd.Flags().BoolVar(&genRoman, "roman", false, "render the PDF in Roman-numeral notation")
	genCmd.Flags().BoolVar(&omitConflictFifth, "omit-conflict-fifth", true, "drop the natural fifth when #11/b13 is present")
	genCmd.Flags().BoolVar(&omitDoubledBass, "omit-doubled-bass", true, "drop chord tones doubling the bass pitch class")
	rootCmd.AddCommand(genCmd)
}

var genCmd = &cobra.Command{
	Use:   "gen <chart file>",
	Short: "Generates a MIDI file from a chart",
	Long:  `Generates a MIDI file from a chart`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return gen(args[0])
	},
}

func voicingOptions() voicing.Options {
	return voicing.Options{
		OmitConflictFifth: omitConflictFifth,
		OmitDoubledBass:   omitDoubledBass,
	}
}

func gen(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c, err := chart.ParseText(string(data))
	if err != nil {
		return err
	}
	slots, err := chart.Resolve(c, genTicksPerBeat)
	if err != nil {
		return err
	}

	out := genOut
	if out == "" {
		util.EnsureOutputDir(constants.GetOutDir())
		out = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
	}

	s := midi.ExportSMF(slots, uint16(genTicksPerBeat), genBPM, voicingOptions())
	if err := s.WriteFile(out); err != nil {
		return err
	}

	var ticks []int
	for _, slot := range slots {
		ticks = append(ticks, slot.Ticks)
	}
	fmt.Printf("Wrote %v measures (%v slots, %v ticks) to %v\n",
		c.NumMeasures(), len(slots), util.Sum(ticks), out)

	if genPDF != "" {
		if err := sheet.WritePDF(c, genRoman, genPDF); err != nil {
			return err
		}
		fmt.Printf("Wrote chart PDF to %v\n", genPDF)
	}
	return nil
}
