// Package chart renders BAC series as text.
package chart

import (
	"math"

	"github.com/KirkDiggler/tipsy/internal/models"
)

var blocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline squeezes values into width columns, keeping each bucket's maximum.
// Levels are scaled to the largest value, so an all-zero series is a flat baseline.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	if width > len(values) {
		width = len(values)
	}

	buckets := make([]float64, width)
	for i, v := range values {
		b := i * width / len(values)
		buckets[b] = math.Max(buckets[b], v)
	}

	peak := 0.0
	for _, v := range buckets {
		peak = math.Max(peak, v)
	}

	out := make([]rune, width)
	for i, v := range buckets {
		level := 0
		if peak > 0 {
			level = int(math.Round(v / peak * float64(len(blocks)-1)))
		}
		out[i] = blocks[level]
	}
	return string(out)
}

// Values extracts the BAC column of a series
func Values(points []models.BacPoint) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Bac
	}
	return values
}

// Peak returns the index of the first maximum, -1 for an empty series
func Peak(points []models.BacPoint) int {
	if len(points) == 0 {
		return -1
	}
	idx := 0
	for i, p := range points {
		if p.Bac > points[idx].Bac {
			idx = i
		}
	}
	return idx
}
