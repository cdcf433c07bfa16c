package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"pitchplot/chord"
	"pitchplot/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the table and resolver over http",
	Long:  `Serves the note table and chord resolver as a small JSON api on :8080.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleNotes(w http.ResponseWriter, r *http.Request) {
	t := LoadTable()
	res := make([]model.NoteResponse, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		n := t.Note(i)
		res = append(res, model.NoteResponse{Name: n.Name, Frequency: n.Frequency})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.ResolveRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}
	if len(input.Roots) == 0 {
		writeError(w, 400, "need at least one root note")
		return
	}

	defs := chord.Catalog
	if len(input.Chords) > 0 {
		defs, err = lookupDefs(input.Chords)
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
	}

	voicings, err := chord.ResolveAll(LoadTable(), input.Roots, defs)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	res := make([]model.VoicingResponse, 0, len(voicings))
	for _, v := range voicings {
		res = append(res, model.VoicingResponse{Root: v.Root, Chord: v.Chord, Frequencies: v.Frequencies})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/notes", HandleNotes).Methods("GET")
	router.HandleFunc("/chords", HandleResolve).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
