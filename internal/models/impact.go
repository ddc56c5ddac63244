package models

import "math"

// CO2Multipliers maps a category to grams of CO2 saved per gram of
// reused product. Unknown categories fall back to 1.0.
var CO2Multipliers = map[Category]float64{
	CategoryElectronics: 3.5,
	CategoryFurniture:   2.0,
	CategoryClothing:    1.2,
	CategoryKitchen:     1.8,
	CategoryTools:       2.2,
	CategorySports:      1.5,
	CategoryToys:        1.3,
	CategoryBooks:       0.8,
	CategoryAutomotive:  3.0,
	CategoryOther:       1.0,
}

// CO2Saved derives the grams of avoided emissions for an item. The
// item-creation path and the listing-form preview endpoint must both
// go through this function so the two never drift.
func CO2Saved(category Category, weightGrams int) int {
	multiplier, ok := CO2Multipliers[category]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Floor(float64(weightGrams) * multiplier))
}
