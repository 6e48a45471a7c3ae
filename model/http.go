package model

type ParseRequestBody struct {
	Token string `json:"token"`
	Key   string `json:"key"`
}

type ParseResponse struct {
	Chord     ParsedChord `json:"chord"`
	Canonical string      `json:"canonical"`
	Roman     string      `json:"roman"`
}

type VoicingRequestBody struct {
	Token             string `json:"token"`
	Key               string `json:"key"`
	OmitConflictFifth bool   `json:"omit_conflict_fifth"`
	OmitDoubledBass   bool   `json:"omit_doubled_bass"`
}

type VoicingResponse struct {
	Notes Notes `json:"notes"`
}

type ExportRequestBody struct {
	Chart        string  `json:"chart"`
	TicksPerBeat uint16  `json:"ticks_per_beat,omitempty"`
	BPM          float64 `json:"bpm,omitempty"`
}

type ChartBody struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
