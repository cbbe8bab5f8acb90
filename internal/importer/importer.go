// Package importer reads and writes drink logs as YAML documents.
package importer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/KirkDiggler/tipsy/internal/catalog"
	"github.com/KirkDiggler/tipsy/internal/models"
	"github.com/KirkDiggler/tipsy/internal/services/tracker"
	"gopkg.in/yaml.v3"
)

// File is the YAML document layout
type File struct {
	Profile *ProfileEntry `yaml:"profile,omitempty"`
	Drinks  []DrinkEntry  `yaml:"drinks"`
}

// ProfileEntry is the optional profile block
type ProfileEntry struct {
	WeightKg      float64 `yaml:"weight_kg"`
	Gender        string  `yaml:"gender"`
	DrinkingSpeed string  `yaml:"drinking_speed,omitempty"`
	Unit          string  `yaml:"unit,omitempty"`
}

// DrinkEntry is one drink. Either Preset or VolumeMl and ABV must be set.
type DrinkEntry struct {
	Preset        string    `yaml:"preset,omitempty"`
	Name          string    `yaml:"name,omitempty"`
	VolumeMl      float64   `yaml:"volume_ml,omitempty"`
	ABV           *float64  `yaml:"abv,omitempty"`
	Type          string    `yaml:"type,omitempty"`
	Icon          string    `yaml:"icon,omitempty"`
	Chug          bool      `yaml:"chug,omitempty"`
	At            time.Time `yaml:"at,omitempty"`
	MinutesAgo    int       `yaml:"minutes_ago,omitempty"`
	Mixer         string    `yaml:"mixer,omitempty"`
	MixerVolumeMl float64   `yaml:"mixer_volume_ml,omitempty"`
}

// Decode parses a YAML drink log
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode drink log: %w", err)
	}
	return &f, nil
}

// Encode writes a profile and drinks as a YAML drink log
func Encode(w io.Writer, profile *models.Profile, drinks []*models.Drink) error {
	f := File{Drinks: make([]DrinkEntry, 0, len(drinks))}

	if profile != nil {
		f.Profile = &ProfileEntry{
			WeightKg:      profile.WeightKg,
			Gender:        string(profile.Gender),
			DrinkingSpeed: string(profile.DrinkingSpeed),
			Unit:          string(profile.Unit),
		}
	}

	for _, d := range drinks {
		abv := d.ABV
		f.Drinks = append(f.Drinks, DrinkEntry{
			Name:     d.Name,
			VolumeMl: d.VolumeMl,
			ABV:      &abv,
			Type:     string(d.Type),
			Icon:     d.Icon,
			Chug:     d.IsChug,
			At:       d.Timestamp.UTC(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode drink log: %w", err)
	}
	return enc.Close()
}

// ProfileInput converts the profile block into a tracker request; nil when absent
func (f *File) ProfileInput(userID string) *tracker.SetProfileInput {
	if f.Profile == nil {
		return nil
	}
	return &tracker.SetProfileInput{
		UserID:        userID,
		WeightKg:      f.Profile.WeightKg,
		Gender:        models.Gender(f.Profile.Gender),
		DrinkingSpeed: models.DrinkingSpeed(f.Profile.DrinkingSpeed),
		Unit:          models.BacUnit(f.Profile.Unit),
	}
}

// DrinkInputs converts every drink entry into a tracker request.
// Entries without a time are placed MinutesAgo before now.
func (f *File) DrinkInputs(userID string, now time.Time) ([]*tracker.AddDrinkInput, error) {
	inputs := make([]*tracker.AddDrinkInput, 0, len(f.Drinks))
	for i, entry := range f.Drinks {
		input, err := entry.toInput(userID, now)
		if err != nil {
			return nil, fmt.Errorf("drink %d: %w", i+1, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func (e DrinkEntry) toInput(userID string, now time.Time) (*tracker.AddDrinkInput, error) {
	input := &tracker.AddDrinkInput{
		UserID: userID,
		Type:   models.DrinkTypeOther,
		IsChug: e.Chug,
		Icon:   e.Icon,
	}

	if e.Preset != "" {
		preset, ok := catalog.LookupPreset(e.Preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", e.Preset)
		}
		input.Name = preset.Name
		input.VolumeMl = preset.VolumeMl
		input.ABV = preset.ABV
		input.Type = preset.Type
		if input.Icon == "" {
			input.Icon = preset.Icon
		}
	} else if e.VolumeMl == 0 || e.ABV == nil {
		return nil, errors.New("needs a preset or both volume_ml and abv")
	}

	if e.Name != "" {
		input.Name = e.Name
	}
	if e.VolumeMl != 0 {
		input.VolumeMl = e.VolumeMl
	}
	if e.ABV != nil {
		input.ABV = *e.ABV
	}
	if e.Type != "" {
		input.Type = models.DrinkType(e.Type)
	}

	switch {
	case e.MinutesAgo < 0:
		return nil, fmt.Errorf("minutes_ago cannot be negative (got %d)", e.MinutesAgo)
	case !e.At.IsZero():
		if e.At.After(now.Add(tracker.MaxFutureSkew)) {
			return nil, fmt.Errorf("at %s is in the future", e.At.Format(time.RFC3339))
		}
		input.Timestamp = e.At
	default:
		input.Timestamp = now.Add(-time.Duration(e.MinutesAgo) * time.Minute)
	}

	if e.Mixer != "" {
		mixer, ok := catalog.LookupMixer(e.Mixer)
		if !ok {
			return nil, fmt.Errorf("unknown mixer %q", e.Mixer)
		}
		input.Mixer = &tracker.MixerInput{
			Name:     mixer.Name,
			VolumeMl: e.MixerVolumeMl,
			ABV:      mixer.ABV,
		}
	}

	return input, nil
}
