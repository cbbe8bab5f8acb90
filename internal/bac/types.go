package bac

import (
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
)

const (
	// DefaultStepSize is the grid used for live status
	DefaultStepSize = time.Minute

	// DefaultTrendStepSize is the coarser grid used for charts
	DefaultTrendStepSize = 5 * time.Minute

	// DefaultTrendHalfWidth is how far a trend reaches on each side of its center
	DefaultTrendHalfWidth = 7 * time.Hour

	// DefaultAbsorptionDelay is the gastric lag added to every absorption window
	DefaultAbsorptionDelay = 45 * time.Minute

	// DefaultEliminationRate is the zero-order elimination in percent BAC per hour
	DefaultEliminationRate = 0.015

	// DefaultAlcoholDensity is the density of ethanol in g/ml
	DefaultAlcoholDensity = 0.789

	// statusLookahead and statusTail bound the minimum status horizon
	statusLookahead = 24 * time.Hour
	statusTail      = 12 * time.Hour

	// maxHorizonExtension caps how far past the minimum horizon Status keeps
	// simulating while waiting for full elimination
	maxHorizonExtension = 7 * 24 * time.Hour

	// maxConsumptionDuration keeps absurd volumes from overflowing a window
	maxConsumptionDuration = 24 * time.Hour
)

// Config holds the tunables of the simulator. Zero values fall back to the defaults above.
type Config struct {
	// StepSize is the grid used by Status
	StepSize time.Duration

	// TrendStepSize is the grid used by Trend
	TrendStepSize time.Duration

	// TrendHalfWidth is the distance from the trend center to each edge
	TrendHalfWidth time.Duration

	// AbsorptionDelay is added to every drink's consumption duration
	AbsorptionDelay time.Duration

	// EliminationRate is in percent BAC per hour
	EliminationRate float64

	// AlcoholDensity is in g/ml
	AlcoholDensity float64
}

// SimulateInput contains parameters for a simulation run
type SimulateInput struct {
	// Drinks is the unordered drink log
	Drinks []*models.Drink

	// Profile supplies weight, gender and drinking speed
	Profile *models.Profile

	// Start is the first instant to report
	Start time.Time

	// End is the last instant to report (inclusive)
	End time.Time

	// Step is the grid size; zero uses the configured StepSize
	Step time.Duration
}

// StatusInput contains parameters for deriving a status snapshot
type StatusInput struct {
	Drinks  []*models.Drink
	Profile *models.Profile

	// Now is the instant the current value is sampled at
	Now time.Time
}

// TrendInput contains parameters for a charting series
type TrendInput struct {
	Drinks  []*models.Drink
	Profile *models.Profile

	// Center is the middle of the window
	Center time.Time
}

// AbsorptionEvent is the absorption model derived from one drink.
// The drink's potential BAC is spread uniformly over [Start, End).
type AbsorptionEvent struct {
	// DrinkID links back to the source drink
	DrinkID string

	// Start is the drink's timestamp
	Start time.Time

	// End is Start plus consumption duration plus absorption delay
	End time.Time

	// PotentialBac is the total BAC the drink can contribute
	PotentialBac float64

	// RatePerMs is PotentialBac divided by the window length in milliseconds
	RatePerMs float64
}

// Instant reports whether the window has no length, in which case the whole
// contribution is added at Start.
func (e AbsorptionEvent) Instant() bool {
	return !e.End.After(e.Start)
}

// widmarkRatios maps gender to body-water distribution ratio
var widmarkRatios = map[models.Gender]float64{
	models.GenderMale:   0.7,
	models.GenderFemale: 0.6,
}

// fallbackRatio is used for an unknown gender; the lower ratio gives the higher estimate
const fallbackRatio = 0.6

// consumptionRates are in ml/minute
var consumptionRates = map[models.DrinkType]map[models.DrinkingSpeed]float64{
	models.DrinkTypeBeer:     {models.DrinkingSpeedSlow: 17, models.DrinkingSpeedAverage: 21, models.DrinkingSpeedFast: 25},
	models.DrinkTypeWine:     {models.DrinkingSpeedSlow: 6, models.DrinkingSpeedAverage: 7, models.DrinkingSpeedFast: 8},
	models.DrinkTypeCocktail: {models.DrinkingSpeedSlow: 5, models.DrinkingSpeedAverage: 7.5, models.DrinkingSpeedFast: 10},
	models.DrinkTypeSpirit:   {models.DrinkingSpeedSlow: 10, models.DrinkingSpeedAverage: 20, models.DrinkingSpeedFast: 40},
	models.DrinkTypeOther:    {models.DrinkingSpeedSlow: 10, models.DrinkingSpeedAverage: 15, models.DrinkingSpeedFast: 20},
}

// Status thresholds in percent BAC
const (
	buzzyThreshold  = 0.0
	tipsyThreshold  = 0.05
	loadedThreshold = 0.10
	wastedThreshold = 0.15
	wastedStep      = 0.005
)

// expressions label the open-ended tier. The label cycles every wastedStep past wastedThreshold.
var expressions = []string{
	"steel blue",
	"hammered",
	"plastered",
	"sloshed",
	"pickled",
	"full as a goog",
	"smashed",
	"sozzled",
	"trollied",
	"cooked",
	"blotto",
	"legless",
	"wrecked",
	"stewed",
	"three sheets to the wind",
	"tanked",
	"bladdered",
	"obliterated",
	"well oiled",
	"off the deep end",
	"absolutely gone",
}

// Expressions returns a copy of the open-ended tier labels
func Expressions() []string {
	out := make([]string, len(expressions))
	copy(out, expressions)
	return out
}
