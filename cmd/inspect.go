package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcraft/midi"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <midi file>",
	Short: "Inspects a MIDI file's note sets",
	Long:  `Inspects a MIDI file's note sets`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		for _, set := range midi.NoteSets(s) {
			fmt.Printf("tick %6v: %v\n", set.Tick, set.Notes)
		}
		return nil
	},
}
