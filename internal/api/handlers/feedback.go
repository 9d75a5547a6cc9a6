package handlers

import (
	"log"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/service"
)

type FeedbackHandler struct {
	submissionService *service.SubmissionService
}

func NewFeedbackHandler(submissionService *service.SubmissionService) *FeedbackHandler {
	return &FeedbackHandler{submissionService: submissionService}
}

type InsertResponse struct {
	InsertedID string `json:"insertedId"`
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var submission domain.FeedbackSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.submissionService.SubmitFeedback(r.Context(), &submission)
	if err != nil {
		log.Printf("ERROR [handlers.SubmitFeedback] %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, InsertResponse{InsertedID: id})
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.submissionService.ListFeedback(r.Context())
	if err != nil {
		log.Printf("ERROR [handlers.ListFeedback] %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, submissions)
}
