package handlers

import (
	"errors"
	"log"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/service"
)

type UsersHandler struct {
	authService *service.AuthService
}

func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{authService: authService}
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserResponse struct {
	Success    bool   `json:"success"`
	InsertedID string `json:"insertedId"`
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "email and password are required")
		case errors.Is(err, domain.ErrUserExists):
			writeError(w, http.StatusBadRequest, "user already exists")
		default:
			log.Printf("ERROR [handlers.CreateUser] %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, CreateUserResponse{
		Success:    true,
		InsertedID: user.ID,
	})
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		log.Printf("ERROR [handlers.ListUsers] %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// domain.User excludes the password hash from JSON.
	writeJSON(w, http.StatusOK, users)
}
