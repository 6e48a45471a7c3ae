// Package midi writes resolved charts to standard MIDI files and reads
// them back for inspection.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/chordcraft/chart"
	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/voicing"
)

const (
	channel  = 0
	velocity = 80
)

// ExportSMF renders resolved slots into a single-track SMF. Silent slots
// and per-token voicing failures only advance the clock; a broken token
// never halts the rest of the chart.
func ExportSMF(slots []chart.Slot, ticksPerBeat uint16, bpm float64, opts voicing.Options) *smf.SMF {
	var out smf.SMF
	out.TimeFormat = smf.MetricTicks(ticksPerBeat)

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName("chordcraft"))
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(bpm))

	var gap uint32
	for _, slot := range slots {
		ticks := uint32(slot.Ticks)
		if slot.Err != nil {
			log.Printf("Skipping %q because: %v\n", slot.Token, slot.Err)
		}
		if slot.Chord == nil {
			gap += ticks
			continue
		}
		notes, err := voicing.Build(*slot.Chord, opts)
		if err != nil {
			log.Printf("Skipping %q because: %v\n", slot.Token, err)
			gap += ticks
			continue
		}
		for i, note := range notes {
			var delta uint32
			if i == 0 {
				delta = gap
			}
			track.Add(delta, midi.NoteOn(channel, note, velocity))
		}
		for i, note := range notes {
			var delta uint32
			if i == 0 {
				delta = ticks
			}
			track.Add(delta, midi.NoteOff(channel, note))
		}
		gap = 0
	}
	track.Close(gap)
	out.Tracks = append(out.Tracks, track)
	return &out
}

// ReadFile parses a MIDI file from disk.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file... %v", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %v", err)
	}
	return res, nil
}

// NoteSet is the group of notes struck together at one tick.
type NoteSet struct {
	Tick  int64
	Notes model.Notes
}

// NoteSets flattens all tracks' note-on events into tick-ordered groups.
func NoteSets(s *smf.SMF) []NoteSet {
	byTick := make(map[int64]model.Notes)
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var ch, key, vel uint8
			if event.Message.GetNoteOn(&ch, &key, &vel) && vel > 0 {
				byTick[absTicks] = append(byTick[absTicks], key)
			}
		}
	}

	sets := make([]NoteSet, 0, len(byTick))
	for tick, notes := range byTick {
		sort.Slice(notes, func(i, j int) bool { return notes[i] < notes[j] })
		sets = append(sets, NoteSet{Tick: tick, Notes: notes})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Tick < sets[j].Tick })
	return sets
}
