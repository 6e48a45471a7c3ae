package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/chordcraft/chart"
	"github.com/jsphweid/chordcraft/constants"
	"github.com/jsphweid/chordcraft/db"
	"github.com/jsphweid/chordcraft/midi"
	"github.com/jsphweid/chordcraft/model"
	"github.com/jsphweid/chordcraft/pitch"
	"github.com/jsphweid/chordcraft/symbol"
	"github.com/jsphweid/chordcraft/voicing"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord API",
	Long:  `Serves the chord API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	var input model.ParseRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}
	key, err := pitch.KeyFromName(input.Key)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	parsed, err := symbol.Parse(input.Token, key)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	json.NewEncoder(w).Encode(model.ParseResponse{
		Chord:     parsed,
		Canonical: symbol.Render(parsed, false, key),
		Roman:     symbol.Render(parsed, true, key),
	})
}

func HandleVoicing(w http.ResponseWriter, r *http.Request) {
	var input model.VoicingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}
	key, err := pitch.KeyFromName(input.Key)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	parsed, err := symbol.Parse(input.Token, key)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	notes, err := voicing.Build(parsed, voicing.Options{
		OmitConflictFifth: input.OmitConflictFifth,
		OmitDoubledBass:   input.OmitDoubledBass,
	})
	if err != nil {
		writeError(w, 400, err)
		return
	}
	json.NewEncoder(w).Encode(model.VoicingResponse{Notes: notes})
}

func HandleExport(w http.ResponseWriter, r *http.Request) {
	var input model.ExportRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, err)
		return
	}
	if input.TicksPerBeat == 0 {
		input.TicksPerBeat = constants.DefaultTicksPerBeat
	}
	if input.BPM == 0 {
		input.BPM = constants.DefaultBPM
	}

	c, err := chart.ParseText(input.Chart)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	slots, err := chart.Resolve(c, int(input.TicksPerBeat))
	if err != nil {
		writeError(w, 400, err)
		return
	}

	s := midi.ExportSMF(slots, input.TicksPerBeat, input.BPM, voicing.Options{
		OmitConflictFifth: true,
		OmitDoubledBass:   true,
	})
	w.Header().Set("Content-Type", "audio/midi")
	if _, err := s.WriteTo(w); err != nil {
		log.Printf("Could not write midi response: %v\n", err)
	}
}

func HandleGetChart(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	body, err := db.GetChart(name)
	if errors.Is(err, db.ErrChartNotFound) {
		writeError(w, 404, err)
		return
	}
	if err != nil {
		writeError(w, 500, err)
		return
	}
	json.NewEncoder(w).Encode(model.ChartBody{Name: name, Body: body})
}

func HandlePutChart(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	// validate before storing
	if _, err := chart.ParseText(string(body)); err != nil {
		writeError(w, 400, err)
		return
	}
	if err := db.PutChart(name, string(body)); err != nil {
		writeError(w, 500, err)
		return
	}
	w.WriteHeader(204)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/voicing", HandleVoicing).Methods("POST")
	router.HandleFunc("/export", HandleExport).Methods("POST")
	router.HandleFunc("/charts/{name}", HandleGetChart).Methods("GET")
	router.HandleFunc("/charts/{name}", HandlePutChart).Methods("PUT")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", servePort), handler))
}
