package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/tipsy/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneWarning is used when the user should slow down
	ToneWarning MessageTone = "warning"
)

// Error types understood by GetErrorMessage
const (
	ErrorTypeSetupRequired = "setup_required"
	ErrorTypeInvalidDrink  = "invalid_drink"
	ErrorTypeNoDrinks      = "no_drinks"
	ErrorTypeDrinkNotFound = "drink_not_found"
)

// GetStatusMessageInput contains parameters for a status quip
type GetStatusMessageInput struct {
	// Tier is the current BAC tier
	Tier models.Tier

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetStatusMessageOutput contains the selected quip
type GetStatusMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDrinkLoggedMessageInput contains parameters for a drink confirmation
type GetDrinkLoggedMessageInput struct {
	// DrinkName is the display name of the logged drink
	DrinkName string

	// Tier is the tier after the drink was logged
	Tier models.Tier
}

// GetDrinkLoggedMessageOutput contains the confirmation
type GetDrinkLoggedMessageOutput struct {
	Title   string
	Message string
}

// GetTierWarningMessageInput contains parameters for a tier-change warning
type GetTierWarningMessageInput struct {
	// Tier is the tier just reached
	Tier models.Tier

	// Label is the display label of the tier just reached
	Label string
}

// GetTierWarningMessageOutput contains the warning
type GetTierWarningMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is one of the ErrorType constants
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Rand overrides the random source; nil seeds one from the current time
	Rand *rand.Rand
}
