// Package catalog holds the preset drinks and mixers offered when logging a drink.
package catalog

import (
	"strings"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// Preset is a known drink with a default pour
type Preset struct {
	ID       string
	Name     string
	ABV      float64
	Type     models.DrinkType
	VolumeMl float64
	Icon     string
}

// Mixer is a non-base liquid added to a cocktail
type Mixer struct {
	ID   string
	Name string
	ABV  float64
}

var presets = []Preset{
	{ID: "lager", Name: "Lager", ABV: 5.0, Type: models.DrinkTypeBeer, VolumeMl: 500, Icon: "🍺"},
	{ID: "ipa", Name: "IPA", ABV: 6.2, Type: models.DrinkTypeBeer, VolumeMl: 500, Icon: "🍺"},
	{ID: "demi", Name: "Demi", ABV: 5.0, Type: models.DrinkTypeBeer, VolumeMl: 250, Icon: "🍺"},
	{ID: "red-wine", Name: "Red Wine", ABV: 13.5, Type: models.DrinkTypeWine, VolumeMl: 125, Icon: "🍷"},
	{ID: "white-wine", Name: "White Wine", ABV: 12.0, Type: models.DrinkTypeWine, VolumeMl: 125, Icon: "🍷"},
	{ID: "vodka", Name: "Vodka", ABV: 40, Type: models.DrinkTypeSpirit, VolumeMl: 40, Icon: "🥃"},
	{ID: "whisky", Name: "Whisky", ABV: 40, Type: models.DrinkTypeSpirit, VolumeMl: 40, Icon: "🥃"},
	{ID: "mojito", Name: "Mojito", ABV: 11, Type: models.DrinkTypeCocktail, VolumeMl: 150, Icon: "🍹"},
}

var mixers = []Mixer{
	{ID: "cola", Name: "Coca-Cola"},
	{ID: "tonic", Name: "Tonic Water"},
	{ID: "soda", Name: "Soda Water"},
	{ID: "orange", Name: "Orange Juice"},
	{ID: "energy", Name: "Energy Drink"},
}

// Presets returns every preset drink
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Mixers returns every mixer
func Mixers() []Mixer {
	out := make([]Mixer, len(mixers))
	copy(out, mixers)
	return out
}

// LookupPreset finds a preset by ID or case-insensitive name
func LookupPreset(key string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			return p, true
		}
	}
	return Preset{}, false
}

// LookupMixer finds a mixer by ID or case-insensitive name
func LookupMixer(key string) (Mixer, bool) {
	for _, m := range mixers {
		if m.ID == key || strings.EqualFold(m.Name, key) {
			return m, true
		}
	}
	return Mixer{}, false
}
