package bac

import (
	"math"
	"sort"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// Simulator estimates BAC curves from a drink log.
// It holds only configuration, so a single instance is safe for concurrent use.
type Simulator struct {
	stepSize         time.Duration
	trendStepSize    time.Duration
	trendHalfWidth   time.Duration
	absorptionDelay  time.Duration
	eliminationPerMs float64
	alcoholDensity   float64
}

// New creates a new simulator
func New(cfg *Config) *Simulator {
	if cfg == nil {
		cfg = &Config{}
	}

	s := &Simulator{
		stepSize:         DefaultStepSize,
		trendStepSize:    DefaultTrendStepSize,
		trendHalfWidth:   DefaultTrendHalfWidth,
		absorptionDelay:  DefaultAbsorptionDelay,
		eliminationPerMs: DefaultEliminationRate / float64(time.Hour.Milliseconds()),
		alcoholDensity:   DefaultAlcoholDensity,
	}

	if cfg.StepSize >= time.Millisecond {
		s.stepSize = cfg.StepSize
	}
	if cfg.TrendStepSize >= time.Millisecond {
		s.trendStepSize = cfg.TrendStepSize
	}
	if cfg.TrendHalfWidth > 0 {
		s.trendHalfWidth = cfg.TrendHalfWidth
	}
	if cfg.AbsorptionDelay > 0 {
		s.absorptionDelay = cfg.AbsorptionDelay
	}
	if cfg.EliminationRate > 0 {
		s.eliminationPerMs = cfg.EliminationRate / float64(time.Hour.Milliseconds())
	}
	if cfg.AlcoholDensity > 0 {
		s.alcoholDensity = cfg.AlcoholDensity
	}

	return s
}

// ConsumptionDuration estimates how long the drink took to finish
func ConsumptionDuration(drink *models.Drink, speed models.DrinkingSpeed) time.Duration {
	if drink == nil || drink.IsChug || !(drink.VolumeMl > 0) {
		return 0
	}

	rates, ok := consumptionRates[drink.Type]
	if !ok {
		rates = consumptionRates[models.DrinkTypeOther]
	}
	rate, ok := rates[speed]
	if !ok {
		rate = rates[models.DrinkingSpeedAverage]
	}

	minutes := drink.VolumeMl / rate
	if minutes >= maxConsumptionDuration.Minutes() {
		return maxConsumptionDuration
	}
	return time.Duration(minutes * float64(time.Minute))
}

// AlcoholGrams is the mass of ethanol in the drink
func (s *Simulator) AlcoholGrams(drink *models.Drink) float64 {
	if !validDrink(drink) {
		return 0
	}
	return drink.VolumeMl * (drink.ABV / 100) * s.alcoholDensity
}

// PotentialBac is the Widmark estimate of the BAC one drink adds once fully absorbed
func (s *Simulator) PotentialBac(drink *models.Drink, profile *models.Profile) float64 {
	if !profile.IsSetup() {
		return 0
	}

	ratio, ok := widmarkRatios[profile.Gender]
	if !ok {
		ratio = fallbackRatio
	}

	// grams per kg of body water, divided by 10 to land in percent
	return (s.AlcoholGrams(drink) / (profile.WeightKg * ratio)) / 10
}

// AbsorptionEvents builds one absorption event per drink, ordered by start time
func (s *Simulator) AbsorptionEvents(drinks []*models.Drink, profile *models.Profile) []AbsorptionEvent {
	speed := models.DrinkingSpeedAverage
	if profile != nil && profile.DrinkingSpeed.IsValid() {
		speed = profile.DrinkingSpeed
	}

	events := make([]AbsorptionEvent, 0, len(drinks))
	for _, drink := range sortedDrinks(drinks) {
		events = append(events, s.absorptionEvent(drink, profile, speed))
	}

	return events
}

func (s *Simulator) absorptionEvent(drink *models.Drink, profile *models.Profile, speed models.DrinkingSpeed) AbsorptionEvent {
	window := ConsumptionDuration(drink, speed) + s.absorptionDelay
	potential := s.PotentialBac(drink, profile)

	event := AbsorptionEvent{
		DrinkID:      drink.ID,
		Start:        drink.Timestamp,
		End:          drink.Timestamp.Add(window),
		PotentialBac: potential,
	}

	windowMs := event.End.UnixMilli() - event.Start.UnixMilli()
	if windowMs > 0 {
		event.RatePerMs = potential / float64(windowMs)
	} else {
		event.End = event.Start
	}

	return event
}

// Simulate walks a fixed grid from the first drink to input.End, accumulating
// absorbed alcohol and subtracting linear elimination at every step.
// Samples before input.Start are computed but not reported.
func (s *Simulator) Simulate(input *SimulateInput) []models.BacPoint {
	if input == nil {
		return nil
	}

	stepMs := input.Step.Milliseconds()
	if stepMs <= 0 {
		stepMs = s.stepSize.Milliseconds()
	}

	startMs := input.Start.UnixMilli()
	endMs := input.End.UnixMilli()
	loc := input.Start.Location()

	points := make([]models.BacPoint, 0, pointCount(startMs, endMs, stepMs))

	events := s.AbsorptionEvents(input.Drinks, input.Profile)
	if len(events) == 0 {
		for t := startMs; t <= endMs; t += stepMs {
			points = append(points, models.BacPoint{Time: time.UnixMilli(t).In(loc)})
		}
		return points
	}

	firstMs := events[0].Start.UnixMilli()

	// Nothing has been drunk before the first drink
	for t := startMs; t < firstMs && t <= endMs; t += stepMs {
		points = append(points, models.BacPoint{Time: time.UnixMilli(t).In(loc)})
	}

	type window struct {
		startMs, endMs int64
		perStep        float64
		instant        float64
		applied        bool
	}
	windows := make([]window, len(events))
	for i, e := range events {
		windows[i] = window{
			startMs: e.Start.UnixMilli(),
			endMs:   e.End.UnixMilli(),
			perStep: e.RatePerMs * float64(stepMs),
		}
		if windows[i].endMs == windows[i].startMs {
			windows[i].instant = e.PotentialBac
		}
	}

	eliminationPerStep := s.eliminationPerMs * float64(stepMs)
	current := 0.0

	for t := firstMs; t <= endMs; t += stepMs {
		added := 0.0
		for i := range windows {
			w := &windows[i]
			if w.endMs == w.startMs {
				if !w.applied && t >= w.startMs {
					added += w.instant
					w.applied = true
				}
				continue
			}
			if t >= w.startMs && t < w.endMs {
				added += w.perStep
			}
		}

		current += added
		if current > 0 {
			current = math.Max(0, current-eliminationPerStep)
		}

		if t >= startMs {
			points = append(points, models.BacPoint{Time: time.UnixMilli(t).In(loc), Bac: current})
		}
	}

	return points
}

// Trend simulates a fixed window around input.Center on the coarse trend grid
func (s *Simulator) Trend(input *TrendInput) []models.BacPoint {
	if input == nil {
		return nil
	}

	return s.Simulate(&SimulateInput{
		Drinks:  input.Drinks,
		Profile: input.Profile,
		Start:   input.Center.Add(-s.trendHalfWidth),
		End:     input.Center.Add(s.trendHalfWidth),
		Step:    s.trendStepSize,
	})
}

func validDrink(drink *models.Drink) bool {
	if drink == nil {
		return false
	}
	if math.IsNaN(drink.VolumeMl) || math.IsNaN(drink.ABV) {
		return false
	}
	return drink.VolumeMl > 0 && drink.ABV >= 0 && drink.ABV <= 100
}

// sortedDrinks returns a copy of the non-nil drinks ordered by timestamp
func sortedDrinks(drinks []*models.Drink) []*models.Drink {
	sorted := make([]*models.Drink, 0, len(drinks))
	for _, d := range drinks {
		if d != nil {
			sorted = append(sorted, d)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

func pointCount(startMs, endMs, stepMs int64) int {
	if endMs < startMs {
		return 0
	}
	return int((endMs-startMs)/stepMs) + 1
}
