package model

type NoteResponse struct {
	Name      string  `json:"name"`
	Frequency float64 `json:"frequency"`
}

type ResolveRequestBody struct {
	Roots  []string `json:"roots"`
	Chords []string `json:"chords"`
}

type VoicingResponse struct {
	Root        string    `json:"root"`
	Chord       string    `json:"chord"`
	Frequencies []float64 `json:"frequencies"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
