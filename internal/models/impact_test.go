package models

import (
	"math"
	"testing"
)

func TestCO2SavedMatchesMultiplierTable(t *testing.T) {
	for category, multiplier := range CO2Multipliers {
		for _, weight := range []int{0, 1, 7, 999, 1000, 123456} {
			want := int(math.Floor(float64(weight) * multiplier))
			got := CO2Saved(category, weight)
			if got != want {
				t.Errorf("CO2Saved(%s, %d) = %d, want %d", category, weight, got, want)
			}
		}
	}
}

func TestCO2SavedElectronics(t *testing.T) {
	if got := CO2Saved(CategoryElectronics, 1000); got != 3500 {
		t.Fatalf("CO2Saved(Electronics, 1000) = %d, want 3500", got)
	}
}

func TestCO2SavedFloors(t *testing.T) {
	// Books at 0.8: 5g * 0.8 = 4.0, 7g * 0.8 = 5.6 -> 5
	if got := CO2Saved(CategoryBooks, 7); got != 5 {
		t.Fatalf("CO2Saved(Books, 7) = %d, want 5", got)
	}
	if got := CO2Saved(CategoryClothing, 5); got != 6 {
		t.Fatalf("CO2Saved(Clothing, 5) = %d, want 6", got)
	}
}

func TestCO2SavedUnknownCategoryDefaultsToOne(t *testing.T) {
	if got := CO2Saved(Category("Spaceships"), 250); got != 250 {
		t.Fatalf("CO2Saved(unknown, 250) = %d, want 250", got)
	}
}

func TestCO2SavedZeroWeight(t *testing.T) {
	for _, category := range Categories {
		if got := CO2Saved(category, 0); got != 0 {
			t.Errorf("CO2Saved(%s, 0) = %d, want 0", category, got)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories {
		if !category.Valid() {
			t.Errorf("category %q should be valid", category)
		}
	}
	if Category("Gadgets").Valid() {
		t.Error("unknown category should not be valid")
	}
}

func TestConditionValid(t *testing.T) {
	for _, condition := range Conditions {
		if !condition.Valid() {
			t.Errorf("condition %q should be valid", condition)
		}
	}
	if Condition("Broken").Valid() {
		t.Error("unknown condition should not be valid")
	}
}
