package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"reloop-backend-go/internal/services"
)

type ErrorResponse struct {
	Message string                `json:"message"`
	Errors  []services.FieldError `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

// WriteServiceError translates the core error taxonomy into response
// codes. Anything unrecognized surfaces as a generic 500.
func WriteServiceError(w http.ResponseWriter, err error, fallback string) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Message: fallback,
			Errors:  validation.Fields,
		})
		return
	}
	var svc services.ServiceError
	if errors.As(err, &svc) {
		WriteError(w, svc.Status, svc.Message)
		return
	}
	WriteError(w, http.StatusInternalServerError, fallback)
}
