package handlers

import (
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"spellingtrainer/internal/service"
)

// WordHandler serves word management requests
type WordHandler struct {
	words  *service.WordService
	logger *zap.Logger
}

// NewWordHandler creates a new word handler
func NewWordHandler(words *service.WordService, logger *zap.Logger) *WordHandler {
	return &WordHandler{words: words, logger: logger}
}

type addWordsRequest struct {
	Text            string `json:"text"`
	ExampleSentence string `json:"exampleSentence"`
}

type sentenceRequest struct {
	ExampleSentence string `json:"exampleSentence"`
}

// List returns the word history, optionally filtered by ?search=
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.words.History(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to load word history", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Stats returns the word counts
func (h *WordHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.words.Stats(r.Context())
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to load stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Add adds the words typed into the word manager
func (h *WordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addWordsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	result, err := h.words.AddText(r.Context(), req.Text, req.ExampleSentence)
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to add words", err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Import adds the words of an uploaded CSV or text file.
// Accepts a multipart form with a "file" field or the raw file as the body.
func (h *WordHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body io.Reader = r.Body

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, _, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidUpload, "", err)
			return
		}
		defer file.Close()
		body = file
	}

	result, err := h.words.ImportReader(r.Context(), body)
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to import words", err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Delete removes a word and its history
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.words.Delete(r.Context(), chi.URLParam(r, "word")); err != nil {
		respondWithServiceError(w, h.logger, "Failed to delete word", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetSentence replaces the example sentence of a word
func (h *WordHandler) SetSentence(w http.ResponseWriter, r *http.Request) {
	var req sentenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	if err := h.words.SetExampleSentence(r.Context(), chi.URLParam(r, "word"), req.ExampleSentence); err != nil {
		respondWithServiceError(w, h.logger, "Failed to update sentence", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear removes every word and all history
func (h *WordHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.words.Clear(r.Context()); err != nil {
		respondWithServiceError(w, h.logger, "Failed to clear data", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
