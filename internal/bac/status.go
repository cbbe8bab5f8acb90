package bac

import (
	"math"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// Status derives the snapshot at input.Now.
// The simulated horizon reaches full elimination unless that lies more than a
// week past the minimum horizon, so SoberTime is nil only when there is no
// alcohol at all or the log is far beyond anything survivable.
func (s *Simulator) Status(input *StatusInput) *models.BacStatus {
	if input == nil || !input.Profile.IsSetup() {
		return SetupRequiredStatus()
	}

	events := s.AbsorptionEvents(input.Drinks, input.Profile)
	if len(events) == 0 {
		return SoberStatus()
	}

	points := s.Simulate(&SimulateInput{
		Drinks:  input.Drinks,
		Profile: input.Profile,
		Start:   events[0].Start,
		End:     s.statusHorizon(events, input.Now),
		Step:    s.stepSize,
	})

	current := 0.0
	for _, p := range points {
		if !p.Time.Before(input.Now) {
			current = p.Bac
			break
		}
	}

	peak := 0.0
	peakIdx := -1
	for i, p := range points {
		if p.Bac > peak {
			peak = p.Bac
			peakIdx = i
		}
	}

	status := &models.BacStatus{
		CurrentBac: round4(current),
		PeakBac:    round4(peak),
	}

	if peakIdx >= 0 {
		peakTime := points[peakIdx].Time
		status.PeakTime = &peakTime

		for _, p := range points[peakIdx+1:] {
			if p.Bac <= 0 {
				soberTime := p.Time
				status.SoberTime = &soberTime
				break
			}
		}
	}

	status.Tier, status.Message, status.Theme = Classify(status.CurrentBac)
	return status
}

// statusHorizon is the latest of now+24h, last drink+12h and the instant by
// which every drink is fully eliminated, the last capped at maxHorizonExtension
// past the first two.
func (s *Simulator) statusHorizon(events []AbsorptionEvent, now time.Time) time.Time {
	end := now.Add(statusLookahead)

	lastStart := events[len(events)-1].Start
	if tail := lastStart.Add(statusTail); tail.After(end) {
		end = tail
	}

	lastEnd := events[0].End
	total := 0.0
	for _, e := range events {
		if e.End.After(lastEnd) {
			lastEnd = e.End
		}
		total += e.PotentialBac
	}

	if s.eliminationPerMs > 0 {
		// Compared in float64 so huge totals cannot overflow a Duration
		drainMs := math.Ceil(total/s.eliminationPerMs) + float64((2 * s.stepSize).Milliseconds())
		limitMs := float64(end.Add(maxHorizonExtension).Sub(lastEnd).Milliseconds())
		if drainMs > limitMs {
			drainMs = limitMs
		}
		if drained := lastEnd.Add(time.Duration(drainMs) * time.Millisecond); drained.After(end) {
			end = drained
		}
	}

	return end
}

// Classify maps a percent BAC value onto its tier, label and theme.
// Intervals are half-open: [0.05, 0.10) is tipsy.
func Classify(bac float64) (models.Tier, string, models.Theme) {
	switch {
	case math.IsNaN(bac) || bac <= buzzyThreshold:
		return models.TierSober, "Sober", models.ThemeSafe
	case bac < tipsyThreshold:
		return models.TierBuzzy, "Buzzy", models.ThemeBuzz
	case bac < loadedThreshold:
		return models.TierTipsy, "Tipsy", models.ThemeDrunk
	case bac < wastedThreshold:
		return models.TierLoaded, "Loaded", models.ThemeDanger
	}

	index := int(math.Floor((bac - wastedThreshold) / wastedStep))
	if index < 0 || math.IsInf(bac, 1) {
		index = 0
	}
	return models.TierWasted, expressions[index%len(expressions)], models.ThemeDanger
}

// SetupRequiredStatus is reported when the profile has no usable weight
func SetupRequiredStatus() *models.BacStatus {
	return &models.BacStatus{
		Tier:    models.TierSetupRequired,
		Message: "Setup Required",
		Theme:   models.ThemeSafe,
	}
}

// SoberStatus is reported for an empty drink log
func SoberStatus() *models.BacStatus {
	tier, message, theme := Classify(0)
	return &models.BacStatus{
		Tier:    tier,
		Message: message,
		Theme:   theme,
	}
}

func round4(v float64) float64 {
	return math.Max(0, math.Round(v*10000)/10000)
}
