package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordcraft",
	Short: "Chord chart to MIDI toolkit",
	Long:  `Parses chord symbols and Roman-numeral charts and renders them to MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
