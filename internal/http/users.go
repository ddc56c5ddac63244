package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"reloop-backend-go/internal/services"
	"reloop-backend-go/internal/store"
)

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid user data")
		return
	}
	validation := &services.ValidationError{}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		validation.Add("username", "username is required")
	}
	if req.Password == "" {
		validation.Add("password", "password is required")
	}
	if err := validation.OrNil(); err != nil {
		WriteServiceError(w, err, "Invalid user data")
		return
	}

	existing, err := s.Store.GetUserByUsername(username)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	if existing != nil {
		WriteServiceError(w, services.ErrConflict("Username already exists"), "Failed to create user")
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user, err := s.Store.CreateUser(store.NewUser{Username: username, Password: hash})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	WriteJSON(w, http.StatusCreated, user)
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid user ID"), "Failed to fetch user")
		return
	}
	user, err := s.Store.GetUser(userID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		WriteServiceError(w, services.ErrNotFound("User not found"), "Failed to fetch user")
		return
	}
	user.Password = ""
	WriteJSON(w, http.StatusOK, user)
}
