package handlers

import (
	"log"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/service"
)

type PromptsHandler struct {
	submissionService *service.SubmissionService
}

func NewPromptsHandler(submissionService *service.SubmissionService) *PromptsHandler {
	return &PromptsHandler{submissionService: submissionService}
}

func (h *PromptsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var submission domain.PromptSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.submissionService.SubmitPrompt(r.Context(), &submission)
	if err != nil {
		log.Printf("ERROR [handlers.SubmitPrompt] %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, InsertResponse{InsertedID: id})
}

func (h *PromptsHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.submissionService.ListPrompts(r.Context())
	if err != nil {
		log.Printf("ERROR [handlers.ListPrompts] %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, submissions)
}
