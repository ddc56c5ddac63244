package services

import (
	"testing"

	"reloop-backend-go/internal/models"
	"reloop-backend-go/internal/store"
)

func TestCaptureStats(t *testing.T) {
	s := store.NewMemStore()
	user, err := s.CreateUser(store.NewUser{Username: "sarah_k", Password: "hashed"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	hero := true
	if _, err := s.UpdateUser(user.ID, store.UserPatch{IsRepairHero: &hero}); err != nil {
		t.Fatalf("update user: %v", err)
	}
	if _, err := s.CreateItem(store.NewItem{
		Title:       "Vintage Desk Lamp",
		Description: "brass",
		Price:       45,
		UserID:      user.ID,
		Category:    models.CategoryElectronics,
		Condition:   models.ConditionReadyToUse,
		ImageURL:    "https://example.com/lamp.jpg",
		Weight:      1000,
		Location:    "Portland, OR",
	}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	sample, err := CaptureStats(s)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if sample.CO2Saved != 3500 {
		t.Fatalf("co2Saved = %d, want 3500", sample.CO2Saved)
	}
	if sample.ActiveListings != 1 {
		t.Fatalf("activeListings = %d, want 1", sample.ActiveListings)
	}
	if sample.RepairHeroes != 1 {
		t.Fatalf("repairHeroes = %d, want 1", sample.RepairHeroes)
	}
	if sample.CapturedAt.IsZero() {
		t.Fatal("capturedAt not set")
	}
}

func TestValidationError(t *testing.T) {
	validation := &ValidationError{}
	if validation.OrNil() != nil {
		t.Fatal("empty validation must be nil")
	}
	validation.Add("title", "title is required")
	validation.Add("price", "price must not be negative")
	err := validation.OrNil()
	if err == nil {
		t.Fatal("populated validation must be an error")
	}
	if err.Error() != "invalid fields: title, price" {
		t.Fatalf("error message = %q", err.Error())
	}
}
