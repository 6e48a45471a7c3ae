package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcraft/chart"
	"github.com/jsphweid/chordcraft/constants"
	"github.com/jsphweid/chordcraft/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <chart file>",
	Short: "Creates a report about a chart",
	Long:  `Creates a report about a chart`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(args[0])
	},
}

type chartReport struct {
	numParts    int
	numMeasures int
	numTokens   int
	numRepeats  int
	failures    []string
	tokenCounts map[string]int
}

func analyzeChart(c chart.Chart) (chartReport, error) {
	r := chartReport{
		numParts:    len(c.Parts),
		numMeasures: c.NumMeasures(),
		tokenCounts: make(map[string]int),
	}

	slots, err := chart.Resolve(c, constants.DefaultTicksPerBeat)
	if err != nil {
		return r, err
	}
	for _, slot := range slots {
		if slot.Token == "" {
			continue
		}
		r.numTokens++
		if slot.Token == constants.RepeatToken {
			r.numRepeats++
			continue
		}
		r.tokenCounts[slot.Token]++
		if slot.Err != nil {
			r.failures = append(r.failures, slot.Token)
		}
	}
	return r, nil
}

func report(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c, err := chart.ParseText(string(data))
	if err != nil {
		return err
	}

	r, err := analyzeChart(c)
	if err != nil {
		return err
	}

	fmt.Printf("parts:    %v\n", r.numParts)
	fmt.Printf("measures: %v\n", r.numMeasures)
	fmt.Printf("tokens:   %v (%v repeats)\n", r.numTokens, r.numRepeats)
	fmt.Printf("distinct chords:\n")
	for _, token := range util.SortedKeys(r.tokenCounts) {
		fmt.Printf("  %-12v x%v\n", token, r.tokenCounts[token])
	}
	if len(r.failures) > 0 {
		fmt.Printf("unparseable tokens: %v\n", r.failures)
	}
	return nil
}
