package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 250*time.Millisecond, "poll interval")
	watchCmd.Flags().StringVarP(&genOut, "out", "o", "", "output .mid path (default out/<uuid>.mid)")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <chart file>",
	Short: "Regenerates the MIDI file whenever the chart changes",
	Long:  `Regenerates the MIDI file whenever the chart changes`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return watch(args[0])
	},
}

func watch(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	lastMod := info.ModTime()

	regenerate := func() {
		if err := gen(path); err != nil {
			log.Printf("Could not regenerate %v because: %v\n", path, err)
		}
	}
	regenerate()

	// editors fire several writes in a row, collapse them into one run
	debounced := debounce.New(500 * time.Millisecond)
	fmt.Printf("Watching %v\n", path)
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()
	for range ticker.C {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(lastMod) {
			lastMod = info.ModTime()
			debounced(regenerate)
		}
	}
	return nil
}
