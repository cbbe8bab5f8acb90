package models

import (
	"time"
)

// DrinkType is the category of a drink. It selects the consumption-rate profile
// used to estimate how long the drink took to finish.
type DrinkType string

const (
	// DrinkTypeBeer covers lagers, ales and ciders
	DrinkTypeBeer DrinkType = "beer"

	// DrinkTypeWine covers still and sparkling wines
	DrinkTypeWine DrinkType = "wine"

	// DrinkTypeCocktail covers mixed drinks
	DrinkTypeCocktail DrinkType = "cocktail"

	// DrinkTypeSpirit covers neat spirits and shots
	DrinkTypeSpirit DrinkType = "spirit"

	// DrinkTypeOther is the fallback category
	DrinkTypeOther DrinkType = "other"
)

// DrinkTypes lists every supported drink type in display order
var DrinkTypes = []DrinkType{
	DrinkTypeBeer,
	DrinkTypeWine,
	DrinkTypeCocktail,
	DrinkTypeSpirit,
	DrinkTypeOther,
}

// IsValid reports whether the drink type is one of the known categories
func (t DrinkType) IsValid() bool {
	for _, known := range DrinkTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Drink is a single logged drink. It is never mutated once stored.
type Drink struct {
	// ID is the unique identifier for the drink
	ID string `json:"id"`

	// UserID is the owner of the drink log entry
	UserID string `json:"user_id"`

	// Name is the display label
	Name string `json:"name"`

	// VolumeMl is the total poured volume including any mixer
	VolumeMl float64 `json:"volume_ml"`

	// ABV is the effective alcohol-by-volume percentage of the combined liquid
	ABV float64 `json:"abv"`

	// Timestamp marks when the user started drinking it
	Timestamp time.Time `json:"timestamp"`

	// IsChug collapses the consumption duration to zero
	IsChug bool `json:"is_chug"`

	// Type selects the consumption-rate profile
	Type DrinkType `json:"type"`

	// Icon is an optional emoji for display
	Icon string `json:"icon,omitempty"`
}
