package game

import (
	"careerparty/internal/common/clock"
	"careerparty/internal/common/uuid"
	"careerparty/internal/dice"
	"careerparty/internal/models"
	"careerparty/internal/repositories/catalog"
	"careerparty/internal/services/registry"
)

// Config holds configuration for the game service
type Config struct {
	// CatalogRepo provides read access to the card catalog
	CatalogRepo catalog.Repository

	// Registry delivers events to connected players
	Registry registry.Service

	// DiceRoller provides the randomness for rolls and draws
	DiceRoller dice.Roller

	// Clock provides the current time
	Clock clock.Clock

	// IDGenerator produces session tokens and player IDs
	IDGenerator uuid.Generator

	// DefaultMaxPlayers is used when createSession omits a player cap
	DefaultMaxPlayers int

	// DiceSides is the number of sides on the die
	DiceSides int

	// ExhaustionBuffer is the pool size at or below which the used-card
	// set is cleared and the full pool restored
	ExhaustionBuffer int

	// SpecialChance is the probability of a special mission joining the
	// candidate pool on a roll
	SpecialChance float64
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// PlayerName is the host's display name
	PlayerName string

	// MaxPlayers caps how many players may join; zero means the default
	MaxPlayers int

	// Conn is the host's connection, registered on success
	Conn registry.Conn
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	SessionID string
	PlayerID  string
	Session   *models.Session
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	SessionID string

	// PlayerName is the joining player's display name
	PlayerName string

	// Conn is the joining player's connection, registered on success
	Conn registry.Conn
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	SessionID string
	PlayerID  string
	Session   *models.Session
}

// RemovePlayerInput identifies the player whose connection dropped
type RemovePlayerInput struct {
	SessionID string
	PlayerID  string
}

// RemovePlayerOutput contains the result of handling a disconnect
type RemovePlayerOutput struct {
	// SessionDeleted reports whether the disconnect emptied the session
	SessionDeleted bool
}

// SelectJobInput contains parameters for a job selection
type SelectJobInput struct {
	SessionID string
	PlayerID  string
	JobID     int
}

// SelectJobOutput contains the result of a job selection
type SelectJobOutput struct {
	Success bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	SessionID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Success bool
}

// RollDiceInput contains parameters for a dice roll
type RollDiceInput struct {
	SessionID string
}

// RollDiceOutput contains the result of a dice roll
type RollDiceOutput struct {
	DiceValue  int
	DrawnCards []*models.Card
}

// SelectCardInput contains parameters for a card selection
type SelectCardInput struct {
	SessionID string

	// ActorID is the player who sent the selection; ignored unless it is
	// the current-turn player
	ActorID string

	CardID int
}

// SelectCardOutput contains the result of a card selection
type SelectCardOutput struct {
	// Applied reports whether the selection took effect (false for
	// out-of-turn or stale selections, which are silent no-ops)
	Applied bool
}

// NextTurnInput contains parameters for advancing the turn
type NextTurnInput struct {
	SessionID string
}

// NextTurnOutput contains the result of advancing the turn
type NextTurnOutput struct {
	CurrentPlayerIndex int
}

// ResignInput contains parameters for a resignation transfer
type ResignInput struct {
	SessionID string

	// PlayerID is the resigning player
	PlayerID string

	// TargetPlayerID receives the resigning player's jobs
	TargetPlayerID string
}

// ResignOutput contains the result of a resignation
type ResignOutput struct {
	Success bool
}

// ResetGameInput contains parameters for resetting a session
type ResetGameInput struct {
	SessionID string
}

// ResetGameOutput contains the result of resetting a session
type ResetGameOutput struct {
	Success bool
}

// SendChatMessageInput contains parameters for a chat message
type SendChatMessageInput struct {
	SessionID  string
	PlayerID   string
	PlayerName string
	Message    string
}

// SendChatMessageOutput contains the stored chat message
type SendChatMessageOutput struct {
	Message *models.ChatMessage
}

// SetTypingInput contains parameters for a typing notification
type SetTypingInput struct {
	SessionID  string
	PlayerID   string
	PlayerName string

	// Typing is true for a start-typing notice, false for stop
	Typing bool
}

// SetTypingOutput contains the result of a typing notification
type SetTypingOutput struct {
	Success bool
}

// ToggleReactionInput contains parameters for toggling a chat reaction
type ToggleReactionInput struct {
	SessionID string
	PlayerID  string
	MessageID int64
	Emoji     string
}

// ToggleReactionOutput contains the updated chat message
type ToggleReactionOutput struct {
	Message *models.ChatMessage
}
