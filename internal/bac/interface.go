package bac

import "github.com/KirkDiggler/tipsy/internal/models"

// Calculator is the read side of the simulator used by services
type Calculator interface {
	// Status derives the current snapshot for a drink log
	Status(input *StatusInput) *models.BacStatus

	// Trend produces a charting series centered on an instant
	Trend(input *TrendInput) []models.BacPoint
}
