package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reloop-backend-go/internal/services"
)

func TestWriteServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", services.ErrNotFound("User not found"), http.StatusNotFound, "User not found"},
		{"bad request", services.ErrBadRequest("Invalid user ID"), http.StatusBadRequest, "Invalid user ID"},
		{"conflict", services.ErrConflict("Username already exists"), http.StatusConflict, "Username already exists"},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError, "Failed to fetch user"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteServiceError(rec, tc.err, "Failed to fetch user")
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", body.Message, tc.wantMessage)
			}
			if len(body.Errors) != 0 {
				t.Fatalf("expected no field errors, got %d", len(body.Errors))
			}
		})
	}
}

func TestWriteServiceErrorValidation(t *testing.T) {
	validation := &services.ValidationError{}
	validation.Add("title", "title is required")
	validation.Add("weight", "weight must be positive")

	rec := httptest.NewRecorder()
	WriteServiceError(rec, validation, "Invalid item data")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Invalid item data" {
		t.Fatalf("message = %q", body.Message)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("field errors = %d, want 2", len(body.Errors))
	}
	if body.Errors[0].Field != "title" || body.Errors[1].Field != "weight" {
		t.Fatalf("field order = %q, %q", body.Errors[0].Field, body.Errors[1].Field)
	}
}
