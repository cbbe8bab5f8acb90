package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetStatusMessage returns a quip for the user's current BAC tier
	GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error)

	// GetDrinkLoggedMessage returns a confirmation for a newly logged drink
	GetDrinkLoggedMessage(ctx context.Context, input *GetDrinkLoggedMessageInput) (*GetDrinkLoggedMessageOutput, error)

	// GetTierWarningMessage returns the warning shown when the tier climbs while drunk
	GetTierWarningMessage(ctx context.Context, input *GetTierWarningMessageInput) (*GetTierWarningMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
