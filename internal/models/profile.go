package models

import (
	"fmt"
	"time"
)

// Gender selects the Widmark distribution ratio
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether the gender is supported by the model
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// DrinkingSpeed is the self-reported pace tier of a user
type DrinkingSpeed string

const (
	DrinkingSpeedSlow    DrinkingSpeed = "slow"
	DrinkingSpeedAverage DrinkingSpeed = "average"
	DrinkingSpeedFast    DrinkingSpeed = "fast"
)

// IsValid reports whether the speed is one of the known tiers
func (s DrinkingSpeed) IsValid() bool {
	switch s {
	case DrinkingSpeedSlow, DrinkingSpeedAverage, DrinkingSpeedFast:
		return true
	}
	return false
}

// BacUnit is the display convention for BAC values.
// The core always computes in percent; permille is a x10 rescale applied when rendering.
type BacUnit string

const (
	BacUnitPercent  BacUnit = "percent"
	BacUnitPermille BacUnit = "permille"
)

// Scale converts a percent BAC value into this unit
func (u BacUnit) Scale(bac float64) float64 {
	if u == BacUnitPermille {
		return bac * 10
	}
	return bac
}

// Symbol returns the unit suffix used for display
func (u BacUnit) Symbol() string {
	if u == BacUnitPermille {
		return "g/L"
	}
	return "%"
}

// Format renders a percent BAC value in this unit
func (u BacUnit) Format(bac float64) string {
	if u == BacUnitPermille {
		return fmt.Sprintf("%.2f %s", u.Scale(bac), u.Symbol())
	}
	return fmt.Sprintf("%.3f%s", bac, u.Symbol())
}

// Profile holds the physiological inputs of a user
type Profile struct {
	// UserID is the owner of the profile
	UserID string `json:"user_id"`

	// WeightKg is the body weight; zero or less means the profile is not set up
	WeightKg float64 `json:"weight_kg"`

	// Gender selects the Widmark ratio
	Gender Gender `json:"gender"`

	// DrinkingSpeed selects the consumption-rate tier
	DrinkingSpeed DrinkingSpeed `json:"drinking_speed"`

	// Unit is the preferred display unit
	Unit BacUnit `json:"unit,omitempty"`

	// UpdatedAt is when the profile was last saved
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSetup reports whether the profile carries enough data to run a simulation
func (p *Profile) IsSetup() bool {
	return p != nil && p.WeightKg > 0
}
