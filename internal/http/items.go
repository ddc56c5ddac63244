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

type createItemRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *int     `json:"price"`
	UserID      *int     `json:"userId"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	ImageURL    string   `json:"imageUrl"`
	Weight      *int     `json:"weight"`
	Location    string   `json:"location"`
	Distance    *float64 `json:"distance"`
	// A client-supplied co2Saved is silently dropped here; the stored
	// value is always derived server-side.
	CO2Saved *int `json:"co2Saved"`
}

type updateItemRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *int     `json:"price"`
	UserID      *int     `json:"userId"`
	Category    *string  `json:"category"`
	Condition   *string  `json:"condition"`
	ImageURL    *string  `json:"imageUrl"`
	Weight      *int     `json:"weight"`
	CO2Saved    *int     `json:"co2Saved"`
	Location    *string  `json:"location"`
	Distance    *float64 `json:"distance"`
}

type co2PreviewResponse struct {
	Category models.Category `json:"category"`
	Weight   int             `json:"weight"`
	CO2Saved int             `json:"co2Saved"`
}

func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	filters := parseItemFilters(r)
	items, err := s.Store.GetItems(filters)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch items")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

// parseItemFilters is permissive: unknown category or condition values
// simply match nothing, and unparsable numbers are treated as absent,
// the same way the listing sidebar has always behaved.
func parseItemFilters(r *http.Request) *store.ItemFilters {
	query := r.URL.Query()
	filters := &store.ItemFilters{}
	used := false

	for _, raw := range query["category"] {
		if raw != "" {
			filters.Category = append(filters.Category, models.Category(raw))
			used = true
		}
	}
	for _, raw := range query["condition"] {
		if raw != "" {
			filters.Condition = append(filters.Condition, models.Condition(raw))
			used = true
		}
	}
	if raw := query.Get("priceMin"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			filters.PriceMin = &value
			used = true
		}
	}
	if raw := query.Get("priceMax"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil {
			filters.PriceMax = &value
			used = true
		}
	}
	if raw := query.Get("distance"); raw != "" {
		if value, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.Distance = &value
			used = true
		}
	}
	if raw := strings.TrimSpace(query.Get("search")); raw != "" {
		filters.Search = raw
		used = true
	}
	if !used {
		return nil
	}
	return filters
}

func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid item ID"), "Invalid item ID")
		return
	}
	item, err := s.Store.GetItem(itemID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch item")
		return
	}
	if item == nil {
		WriteServiceError(w, services.ErrNotFound("Item not found"), "Failed to fetch item")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid item data")
		return
	}
	input, err := validateNewItem(req)
	if err != nil {
		WriteServiceError(w, err, "Invalid item data")
		return
	}
	item, err := s.Store.CreateItem(input)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	WriteJSON(w, http.StatusCreated, item)
}

func validateNewItem(req createItemRequest) (store.NewItem, error) {
	validation := &services.ValidationError{}
	if strings.TrimSpace(req.Title) == "" {
		validation.Add("title", "title is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		validation.Add("description", "description is required")
	}
	if req.Price == nil {
		validation.Add("price", "price is required")
	} else if *req.Price < 0 {
		validation.Add("price", "price must not be negative")
	}
	if req.UserID == nil {
		validation.Add("userId", "userId is required")
	}
	category := models.Category(req.Category)
	if !category.Valid() {
		validation.Add("category", "unknown category")
	}
	condition := models.Condition(req.Condition)
	if !condition.Valid() {
		validation.Add("condition", "unknown condition")
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		validation.Add("imageUrl", "imageUrl is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		validation.Add("location", "location is required")
	}
	weight := 0
	if req.Weight != nil {
		if *req.Weight < 0 {
			validation.Add("weight", "weight must not be negative")
		} else {
			weight = *req.Weight
		}
	}
	distance := 0.0
	if req.Distance != nil {
		if *req.Distance < 0 {
			validation.Add("distance", "distance must not be negative")
		} else {
			distance = *req.Distance
		}
	}
	if err := validation.OrNil(); err != nil {
		return store.NewItem{}, err
	}
	return store.NewItem{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		UserID:      *req.UserID,
		Category:    category,
		Condition:   condition,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Weight:      weight,
		Location:    strings.TrimSpace(req.Location),
		Distance:    distance,
	}, nil
}

func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid item ID"), "Invalid item ID")
		return
	}
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid item data")
		return
	}
	patch, err := validateItemPatch(req)
	if err != nil {
		WriteServiceError(w, err, "Invalid item data")
		return
	}
	item, err := s.Store.UpdateItem(itemID, patch)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to update item")
		return
	}
	if item == nil {
		WriteServiceError(w, services.ErrNotFound("Item not found"), "Failed to fetch item")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func validateItemPatch(req updateItemRequest) (store.ItemPatch, error) {
	validation := &services.ValidationError{}
	patch := store.ItemPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		UserID:      req.UserID,
		ImageURL:    req.ImageURL,
		Weight:      req.Weight,
		CO2Saved:    req.CO2Saved,
		Location:    req.Location,
		Distance:    req.Distance,
	}
	if req.Price != nil && *req.Price < 0 {
		validation.Add("price", "price must not be negative")
	}
	if req.Weight != nil && *req.Weight < 0 {
		validation.Add("weight", "weight must not be negative")
	}
	if req.Category != nil {
		category := models.Category(*req.Category)
		if !category.Valid() {
			validation.Add("category", "unknown category")
		} else {
			patch.Category = &category
		}
	}
	if req.Condition != nil {
		condition := models.Condition(*req.Condition)
		if !condition.Valid() {
			validation.Add("condition", "unknown condition")
		} else {
			patch.Condition = &condition
		}
	}
	if err := validation.OrNil(); err != nil {
		return store.ItemPatch{}, err
	}
	return patch, nil
}

func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "itemId"))
	if err != nil {
		WriteServiceError(w, services.ErrBadRequest("Invalid item ID"), "Invalid item ID")
		return
	}
	deleted, err := s.Store.DeleteItem(itemID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	if !deleted {
		WriteServiceError(w, services.ErrNotFound("Item not found"), "Failed to delete item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CO2Preview lets the listing form show savings before submission. It
// runs the same derivation as item creation.
func (s *Server) CO2Preview(w http.ResponseWriter, r *http.Request) {
	category := models.Category(r.URL.Query().Get("category"))
	weight, err := strconv.Atoi(r.URL.Query().Get("weight"))
	if err != nil || weight < 0 {
		WriteServiceError(w, services.ErrBadRequest("Invalid weight"), "Invalid weight")
		return
	}
	WriteJSON(w, http.StatusOK, co2PreviewResponse{
		Category: category,
		Weight:   weight,
		CO2Saved: models.CO2Saved(category, weight),
	})
}
