package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pitchplot/model"
)

func createResolveReqBody(t *testing.T, roots []string, chords []string) io.Reader {
	body := model.ResolveRequestBody{Roots: roots, Chords: chords}
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(data)
}

func TestHandleNotes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	w := httptest.NewRecorder()
	HandleNotes(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var notes []model.NoteResponse
	assert.NoError(json.Unmarshal(respBody, &notes))
	assert.Len(notes, 132)
	assert.Equal(model.NoteResponse{Name: "C-1", Frequency: 8.1758}, notes[0])
}

func TestHandleResolve(t *testing.T) {
	body := createResolveReqBody(t, []string{"C4", "D4"}, []string{"maj", "m"})
	req := httptest.NewRequest(http.MethodPost, "/chords", body)
	w := httptest.NewRecorder()
	HandleResolve(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var voicings []model.VoicingResponse
	assert.NoError(json.Unmarshal(respBody, &voicings))
	assert.Len(voicings, 4)
	assert.Equal("C4", voicings[0].Root)
	assert.Equal("maj", voicings[0].Chord)
	assert.Equal("D4", voicings[2].Root)
	assert.Len(voicings[0].Frequencies, 3)
	assert.InEpsilon(261.63, voicings[0].Frequencies[0], 1e-3)
}

func TestHandleResolveUnknownRoot(t *testing.T) {
	body := createResolveReqBody(t, []string{"Z9"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/chords", body)
	w := httptest.NewRecorder()
	HandleResolve(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(400, resp.StatusCode)

	var errResp model.ErrorResponse
	assert.NoError(json.Unmarshal(respBody, &errResp))
	assert.Contains(errResp.Error, "Z9")
}

func TestHandleResolveUnknownChordName(t *testing.T) {
	body := createResolveReqBody(t, []string{"C4"}, []string{"zzz"})
	req := httptest.NewRequest(http.MethodPost, "/chords", body)
	w := httptest.NewRecorder()
	HandleResolve(w, req)

	assert := assert.New(t)
	assert.Equal(400, w.Result().StatusCode)
}
