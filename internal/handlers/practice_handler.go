package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"spellingtrainer/internal/models"
	"spellingtrainer/internal/practice"
	"spellingtrainer/internal/service"
)

// PracticeHandler serves the practice session
type PracticeHandler struct {
	practice *service.PracticeService
	logger   *zap.Logger
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(svc *service.PracticeService, logger *zap.Logger) *PracticeHandler {
	return &PracticeHandler{practice: svc, logger: logger}
}

type startPracticeRequest struct {
	Mode  models.PracticeMode `json:"mode"`
	Words []string            `json:"words"`
}

type submitRequest struct {
	Answer string `json:"answer"`
}

type submitResponse struct {
	Feedback practice.Feedback   `json:"feedback"`
	Session  service.SessionView `json:"session"`
}

// Start begins a new session, replacing any active one
func (h *PracticeHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startPracticeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}
	if req.Mode == "" {
		req.Mode = models.PracticeAll
	}

	view, err := h.practice.Start(r.Context(), req.Mode, req.Words)
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to start practice", err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// Get returns the session snapshot
func (h *PracticeHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.practice.Get(chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to load practice session", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Submit checks a typed answer
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, h.logger, http.StatusBadRequest, ErrInvalidJSON, "", err)
		return
	}

	fb, view, err := h.practice.Submit(chi.URLParam(r, "id"), req.Answer)
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to submit answer", err)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Feedback: fb, Session: view})
}

func (h *PracticeHandler) Skip(w http.ResponseWriter, r *http.Request) {
	h.respondWithView(w, "Failed to skip word")(h.practice.Skip(chi.URLParam(r, "id")))
}

func (h *PracticeHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.respondWithView(w, "Failed to advance")(h.practice.Next(chi.URLParam(r, "id")))
}

func (h *PracticeHandler) Replay(w http.ResponseWriter, r *http.Request) {
	h.respondWithView(w, "Failed to replay word")(h.practice.Replay(chi.URLParam(r, "id")))
}

func (h *PracticeHandler) ReplayExample(w http.ResponseWriter, r *http.Request) {
	h.respondWithView(w, "Failed to replay example")(h.practice.ReplayExample(chi.URLParam(r, "id")))
}

// End finishes the session and returns its summary
func (h *PracticeHandler) End(w http.ResponseWriter, r *http.Request) {
	summary, err := h.practice.End(chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to end practice", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// RetryMissed starts a new session over the words missed in a finished one
func (h *PracticeHandler) RetryMissed(w http.ResponseWriter, r *http.Request) {
	view, err := h.practice.RetryMissed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWithServiceError(w, h.logger, "Failed to retry missed words", err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *PracticeHandler) respondWithView(w http.ResponseWriter, logMsg string) func(service.SessionView, error) {
	return func(view service.SessionView, err error) {
		if err != nil {
			respondWithServiceError(w, h.logger, logMsg, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}
