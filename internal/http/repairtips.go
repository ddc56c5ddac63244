package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"reloop-backend-go/internal/models"
	"reloop-backend-go/internal/services"
	"reloop-backend-go/internal/store"
)

type createRepairTipRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Difficulty *int   `json:"difficulty"`
	UserID     *int   `json:"userId"`
	ImageURL   string `json:"imageUrl"`
}

func (s *Server) ListRepairTips(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))
	tips, err := s.Store.GetRepairTips(category)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch repair tips")
		return
	}
	WriteJSON(w, http.StatusOK, tips)
}

func (s *Server) GetRepairTip(w http.ResponseWriter, r *http.Request) {
	tipID, err := strconv.Atoi(chi.URLParam(r, "tipId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid tip ID"), "Invalid tip ID")
		return
	}
	// A detail fetch counts as a view, so the increment happens here
	// and the bumped tip is what goes back out.
	tip, err := s.Store.IncrementRepairTipViews(tipID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch repair tip")
		return
	}
	if tip == nil {
		WriteServiceError(w, services.ErrNotFound("Repair tip not found"), "Failed to fetch repair tip")
		return
	}
	WriteJSON(w, http.StatusOK, tip)
}

func (s *Server) CreateRepairTip(w http.ResponseWriter, r *http.Request) {
	var req createRepairTipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid repair tip data")
		return
	}
	validation := &services.ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		validation.Add("title", "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		validation.Add("content", "content is required")
	}
	category := models.Category(req.Category)
	if !category.Valid() {
		validation.Add("category", "unknown category")
	}
	if req.UserID == nil {
		validation.Add("userId", "userId is required")
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		validation.Add("imageUrl", "imageUrl is required")
	}
	difficulty := 1
	if req.Difficulty != nil {
		difficulty = *req.Difficulty
	}
	if err := validation.OrNil(); err != nil {
		WriteServiceError(w, err, "Invalid repair tip data")
		return
	}
	tip, err := s.Store.CreateRepairTip(store.NewRepairTip{
		Title:      strings.TrimSpace(req.Title),
		Content:    strings.TrimSpace(req.Content),
		Category:   category,
		Difficulty: difficulty,
		UserID:     *req.UserID,
		ImageURL:   strings.TrimSpace(req.ImageURL),
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create repair tip")
		return
	}
	WriteJSON(w, http.StatusCreated, tip)
}
