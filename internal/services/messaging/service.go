package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// nextStage is what the warning says a user might end up as
var nextStage = map[models.Tier]string{
	models.TierBuzzy:  "Tipsy",
	models.TierTipsy:  "Loaded",
	models.TierLoaded: "Wasted",
}

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config != nil && config.Rand != nil {
		return &service{rand: config.Rand}, nil
	}

	source := rand.NewSource(time.Now().UnixNano())

	return &service{
		rand: rand.New(source),
	}, nil
}

// GetStatusMessage returns a quip for the user's current BAC tier
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.Tier {
	case models.TierSetupRequired:
		tone = ToneNeutral
		messages = []string{
			"Tell me your weight and gender first, I can't do math on vibes.",
			"No profile, no numbers. Run the profile command to get started.",
		}
	case models.TierSober:
		messages = []string{
			"Stone cold sober. The night is young.",
			"Clean slate. Hydrated and dangerous.",
			"Nothing in the tank. Designated driver material.",
		}
	case models.TierBuzzy:
		messages = []string{
			"A little glow going. Nice and easy.",
			"Warming up. Pace yourself, champ.",
			"Just a buzz. Grab some water between rounds.",
		}
	case models.TierTipsy:
		messages = []string{
			"Tipsy! Maybe leave the car keys with someone else.",
			"You're officially fun now. Don't text your ex.",
			"Things are getting wobbly. Snack time?",
		}
	case models.TierLoaded:
		tone = ToneWarning
		messages = []string{
			"Loaded. Time to switch to water for a bit.",
			"You're definitely feeling it. Sit down, drink some water.",
			"That's plenty. The bar will still be there tomorrow.",
		}
	case models.TierWasted:
		tone = ToneWarning
		messages = []string{
			"Absolutely not driving. Find a safe way home.",
			"Put the glass down and find a friend.",
			"Tomorrow-you is already filing a complaint.",
		}
	default:
		messages = []string{
			"I have no idea what state you're in. Neither do you, probably.",
		}
	}

	return &GetStatusMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
		Tone:    tone,
	}, nil
}

// GetDrinkLoggedMessage returns a confirmation for a newly logged drink
func (s *service) GetDrinkLoggedMessage(ctx context.Context, input *GetDrinkLoggedMessageInput) (*GetDrinkLoggedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.DrinkName
	if name == "" {
		name = "Mystery drink"
	}

	var messages []string
	switch input.Tier {
	case models.TierLoaded, models.TierWasted:
		messages = []string{
			"%s logged. Maybe make the next one a water?",
			"%s logged. I'm counting, even if you're not.",
		}
	default:
		messages = []string{
			"%s logged. Cheers!",
			"%s down the hatch.",
			"%s noted. Enjoy responsibly.",
		}
	}

	return &GetDrinkLoggedMessageOutput{
		Title:   "Drink logged!",
		Message: fmt.Sprintf(messages[s.rand.Intn(len(messages))], name),
	}, nil
}

// GetTierWarningMessage returns the warning shown when the tier climbs while drunk
func (s *service) GetTierWarningMessage(ctx context.Context, input *GetTierWarningMessageInput) (*GetTierWarningMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	next, ok := nextStage[input.Tier]
	if !ok {
		next = "Blackout"
	}

	return &GetTierWarningMessageOutput{
		Message: fmt.Sprintf("Nothing to be proud of, you are %q and might end up %q.", input.Label, next),
		Tone:    ToneWarning,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeSetupRequired:
		messages = []string{
			"Set up your profile first so I know what I'm working with.",
			"I need your weight and gender before I can guess how drunk you are.",
		}
	case ErrorTypeInvalidDrink:
		messages = []string{
			"That drink doesn't add up. Check the volume and ABV.",
			"I can't log that. Is that really a drink?",
		}
	case ErrorTypeNoDrinks:
		messages = []string{
			"Nothing logged yet. Suspiciously well behaved.",
			"Your log is empty. Go get a drink first!",
		}
	case ErrorTypeDrinkNotFound:
		messages = []string{
			"Can't find that drink. Did you already forget it?",
			"That drink isn't in your log. Maybe it never happened.",
		}
	default:
		messages = []string{
			"Something went sideways. Try again in a bit.",
			"Oops! Even the bot had one too many.",
		}
	}

	return &GetErrorMessageOutput{
		Message: messages[s.rand.Intn(len(messages))],
		Tone:    tone,
	}, nil
}
