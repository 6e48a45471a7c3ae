package chart

import (
	"github.com/jsphweid/chordcraft/constants"
	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/pitch"
	"github.com/jsphweid/chordcraft/symbol"
)

// DurationsForMeasure splits a 4/4 bar across tokenCount slots. Three
// tokens get the fixed {2,1,1}-beat swing split; any other count splits
// near-equally, the integer remainder spread one tick at a time over the
// leading slots. The result always sums to exactly 4*ticksPerBeat.
func DurationsForMeasure(tokenCount, ticksPerBeat int) []int {
	if tokenCount <= 0 {
		return nil
	}
	bar := constants.BeatsPerBar * ticksPerBeat
	if tokenCount == 3 {
		return []int{2 * ticksPerBeat, ticksPerBeat, ticksPerBeat}
	}
	base := bar / tokenCount
	rem := bar % tokenCount
	durations := make([]int, tokenCount)
	for i := range durations {
		durations[i] = base
		if i < rem {
			durations[i]++
		}
	}
	return durations
}

// Slot is one timed chord position in the flattened chart. A nil Chord
// is silence for the slot's duration; Err carries the parse failure that
// caused it, if any.
type Slot struct {
	PartIndex int
	Measure   int // global measure index
	Token     string
	Ticks     int
	Key       pitch.Key
	Chord     *model.ParsedChord
	Err       error
}

// Resolve flattens the chart into timed slots: one stateful left-to-right
// pass that splits each measure's bar, parses every token under the
// part's key, and resolves repeat markers to the most recently
// successfully parsed token (re-parsed under the current key, so Roman
// repeats follow key changes). Parse failures never abort the chart.
func Resolve(c Chart, ticksPerBeat int) ([]Slot, error) {
	keys, err := c.PartKeys()
	if err != nil {
		return nil, err
	}

	var slots []Slot
	var lastToken string
	measureIdx := 0
	bar := constants.BeatsPerBar * ticksPerBeat

	for pi, part := range c.Parts {
		key := keys[pi]
		for _, measure := range part.Measures {
			if len(measure) == 0 {
				slots = append(slots, Slot{
					PartIndex: pi,
					Measure:   measureIdx,
					Ticks:     bar,
					Key:       key,
				})
				measureIdx++
				continue
			}
			durations := DurationsForMeasure(len(measure), ticksPerBeat)
			for ti, token := range measure {
				slot := Slot{
					PartIndex: pi,
					Measure:   measureIdx,
					Token:     token,
					Ticks:     durations[ti],
					Key:       key,
				}
				text := token
				if token == constants.RepeatToken {
					if lastToken == "" {
						// no prior chord, the repeat is silence
						slots = append(slots, slot)
						continue
					}
					text = lastToken
				}
				parsed, err := symbol.Parse(text, key)
				if err != nil {
					slot.Err = err
				} else {
					chord := parsed
					slot.Chord = &chord
					lastToken = text
				}
				slots = append(slots, slot)
			}
			measureIdx++
		}
	}
	return slots, nil
}
