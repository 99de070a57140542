package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go careerparty/internal/services/game Service

// Service defines the interface for game operations
type Service interface {
	// CreateSession creates a new game session with the caller as host
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a player to an existing session
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// RemovePlayerOnDisconnect handles a dropped connection
	RemovePlayerOnDisconnect(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// SelectJob assigns a job card to a player in the lobby
	SelectJob(ctx context.Context, input *SelectJobInput) (*SelectJobOutput, error)

	// StartGame transitions a session from lobby to play
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// RollDice rolls the die and draws that many cards
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// SelectCard resolves one of the currently drawn cards
	SelectCard(ctx context.Context, input *SelectCardInput) (*SelectCardOutput, error)

	// NextTurn advances the turn pointer to the next active player
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)

	// Resign retires a player and transfers their jobs to another player
	Resign(ctx context.Context, input *ResignInput) (*ResignOutput, error)

	// ResetGame returns a session to its lobby state
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// SendChatMessage appends a message to the session chat
	SendChatMessage(ctx context.Context, input *SendChatMessageInput) (*SendChatMessageOutput, error)

	// SetTyping relays a typing indicator to the rest of the session
	SetTyping(ctx context.Context, input *SetTypingInput) (*SetTypingOutput, error)

	// ToggleReaction toggles a player's emoji reaction on a chat message
	ToggleReaction(ctx context.Context, input *ToggleReactionInput) (*ToggleReactionOutput, error)
}
