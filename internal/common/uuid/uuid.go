package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go careerparty/internal/common/uuid Generator

// Generator produces identifiers for players and sessions
type Generator interface {
	// NewUUID returns a new UUID string
	NewUUID() string

	// NewShortID returns a short invite-friendly token
	NewShortID() string
}

// shortIDLength matches the session token length clients type in
const shortIDLength = 8

// DefaultGenerator implements the Generator interface using the uuid package

type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewUUID returns a new UUID
func (d *DefaultGenerator) NewUUID() string {
	return uuid.New().String()
}

// NewShortID returns the first eight characters of a fresh UUID
func (d *DefaultGenerator) NewShortID() string {
	return uuid.New().String()[:shortIDLength]
}
