package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcraft/pitch"
	"github.com/jsphweid/chordcraft/symbol"
	"github.com/jsphweid/chordcraft/voicing"
)

func init() {
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <token> [key]",
	Short: "Parses a chord token",
	Long:  `Parses a chord token and prints its structure, renderings and voicing`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyName := ""
		if len(args) == 2 {
			keyName = args[1]
		}
		key, err := pitch.KeyFromName(keyName)
		if err != nil {
			return err
		}

		parsed, err := symbol.Parse(args[0], key)
		if err != nil {
			return err
		}

		fmt.Printf("root:        %v\n", parsed.Root)
		fmt.Printf("quality:     %v\n", parsed.Quality)
		if parsed.Seventh.String() != "" {
			fmt.Printf("seventh:     %v\n", parsed.Seventh)
		}
		if len(parsed.Tensions) > 0 {
			fmt.Printf("tensions:    %v\n", parsed.Tensions)
		}
		if len(parsed.Alterations) > 0 {
			fmt.Printf("alterations: %v\n", parsed.Alterations)
		}
		if len(parsed.Parens) > 0 {
			fmt.Printf("parens:      %v\n", parsed.Parens)
		}
		if len(parsed.Omissions) > 0 {
			fmt.Printf("omissions:   %v\n", parsed.Omissions)
		}
		if parsed.Bass != "" {
			fmt.Printf("bass:        %v\n", parsed.Bass)
		}
		if parsed.IsRoman {
			fmt.Printf("roman:       %v\n", parsed.RomanSymbol)
		}
		fmt.Printf("canonical:   %v\n", symbol.Render(parsed, false, key))
		fmt.Printf("degree:      %v\n", symbol.Render(parsed, true, key))

		notes, err := voicing.Build(parsed, voicing.Options{
			OmitConflictFifth: true,
			OmitDoubledBass:   true,
		})
		if err != nil {
			return err
		}
		fmt.Printf("voicing:     %v\n", notes)
		return nil
	},
}
