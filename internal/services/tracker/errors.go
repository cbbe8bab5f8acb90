package tracker

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidUserID    TrackerError = "user ID cannot be empty"
	ErrInvalidVolume    TrackerError = "volume must be greater than zero and at most 5000 ml"
	ErrInvalidABV       TrackerError = "ABV must be between 0 and 100"
	ErrInvalidDrinkType TrackerError = "unknown drink type"
	ErrInvalidMixer     TrackerError = "mixer volume must be greater than zero and at most 5000 ml"
	ErrFutureTimestamp  TrackerError = "drinks cannot be logged in the future"
	ErrInvalidWeight    TrackerError = "weight must be greater than zero"
	ErrInvalidGender    TrackerError = "gender must be male or female"
	ErrInvalidSpeed     TrackerError = "drinking speed must be slow, average or fast"
	ErrInvalidUnit      TrackerError = "unit must be percent or permille"
	ErrProfileNotFound  TrackerError = "profile not found"
	ErrDrinkNotFound    TrackerError = "drink not found"
	ErrNoDrinks         TrackerError = "no drinks logged"
	ErrNilConfig        TrackerError = "config cannot be nil"
	ErrNilDrinkRepo     TrackerError = "drink log repository cannot be nil"
	ErrNilProfileRepo   TrackerError = "profile repository cannot be nil"
	ErrNilCalculator    TrackerError = "BAC calculator cannot be nil"
	ErrNilMessaging     TrackerError = "messaging service cannot be nil"
	ErrNilClock         TrackerError = "clock cannot be nil"
	ErrNilUUIDGenerator TrackerError = "UUID generator cannot be nil"
)
