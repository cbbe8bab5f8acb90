package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/tipsy/internal/common/uuid UUID

// UUID generates drink identifiers
type UUID interface {
	NewUUID() string
}

// DefaultUUID hands out time-ordered (version 7) UUIDs so drinks logged in the
// same millisecond still sort in insertion order by ID
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID, falling back to a random v4 if the v7 source fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
