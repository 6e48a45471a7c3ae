package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcraft/pitch"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Lists the supported keys",
	Long:  `Lists the supported keys`,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range pitch.KeyNames() {
			key, err := pitch.KeyFromName(name)
			if err != nil {
				return err
			}
			spelling := "flats"
			if key.PrefersSharps {
				spelling = "sharps"
			}
			fmt.Printf("%-3v prefers %v\n", key.Name, spelling)
		}
		return nil
	},
}
