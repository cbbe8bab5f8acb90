package models

import (
	"time"
)

// Tier is the category a BAC level falls into
type Tier string

const (
	// TierSetupRequired is reported when the profile has no usable weight
	TierSetupRequired Tier = "setup_required"

	// TierSober is exactly zero BAC
	TierSober Tier = "sober"

	// TierBuzzy is (0, 0.05)
	TierBuzzy Tier = "buzzy"

	// TierTipsy is [0.05, 0.10)
	TierTipsy Tier = "tipsy"

	// TierLoaded is [0.10, 0.15)
	TierLoaded Tier = "loaded"

	// TierWasted is 0.15 and above, labelled with a cycling expression
	TierWasted Tier = "wasted"
)

// Theme is the colour family a presentation layer should use for a tier
type Theme string

const (
	ThemeSafe   Theme = "safe"
	ThemeBuzz   Theme = "buzz"
	ThemeDrunk  Theme = "drunk"
	ThemeDanger Theme = "danger"
)

// BacPoint is one sample of a simulated BAC curve
type BacPoint struct {
	Time time.Time `json:"time"`
	Bac  float64   `json:"bac"`
}

// BacStatus is a derived snapshot. It is recomputed on demand and never persisted.
type BacStatus struct {
	// CurrentBac is the BAC at the sample at or after now, rounded to 4 decimals
	CurrentBac float64 `json:"current_bac"`

	// PeakBac is the maximum simulated BAC, rounded to 4 decimals
	PeakBac float64 `json:"peak_bac"`

	// PeakTime is the first instant of the maximum, nil when there is no alcohol
	PeakTime *time.Time `json:"peak_time,omitempty"`

	// SoberTime is the first instant after the peak at which BAC reaches zero
	SoberTime *time.Time `json:"sober_time,omitempty"`

	// Tier is the category of CurrentBac
	Tier Tier `json:"tier"`

	// Message is the display label of the tier
	Message string `json:"message"`

	// Theme is the colour family for the tier
	Theme Theme `json:"theme"`
}
