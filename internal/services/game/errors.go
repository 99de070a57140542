package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound         GameError = "session not found"
	ErrSessionFull             GameError = "session is full"
	ErrGameAlreadyStarted      GameError = "game already started"
	ErrAllPlayersMustSelectJob GameError = "all players must select a job card first"
	ErrEmptyCatalog            GameError = "no cards in catalog"
	ErrNilConfig               GameError = "config cannot be nil"
	ErrNilCatalogRepo          GameError = "catalog repository cannot be nil"
	ErrNilRegistry             GameError = "connection registry cannot be nil"
	ErrNilDiceRoller           GameError = "dice roller cannot be nil"
	ErrNilClock                GameError = "clock cannot be nil"
	ErrNilIDGenerator          GameError = "ID generator cannot be nil"
)

// Code returns the wire error code surfaced to clients
func (e GameError) Code() string {
	switch e {
	case ErrSessionNotFound:
		return "SESSION_NOT_FOUND"
	case ErrSessionFull:
		return "SESSION_FULL"
	case ErrGameAlreadyStarted:
		return "GAME_ALREADY_STARTED"
	case ErrAllPlayersMustSelectJob:
		return "ALL_PLAYERS_MUST_SELECT_JOB"
	default:
		return "SERVER_ERROR"
	}
}
