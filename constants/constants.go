package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

// BaseOctave is the MIDI note chord tones ascend from. The bass note
// lands one octave below it.
const BaseOctave = 48

const DefaultTicksPerBeat = 480

const DefaultBPM = 120

// 4/4 only
const BeatsPerBar = 4

// RepeatToken stands in for the previous successfully parsed chord token.
const RepeatToken = "%"

const ChartsTable = "chordcraft-charts"
