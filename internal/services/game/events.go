package game

import (
	"errors"

	"careerparty/internal/models"
)

// Outbound event type discriminators
const (
	EventSessionCreated      = "sessionCreated"
	EventJoinedSession       = "joinedSession"
	EventPlayerJoined        = "playerJoined"
	EventJobSelected         = "jobSelected"
	EventGameStarted         = "gameStarted"
	EventDiceRolled          = "diceRolled"
	EventCardSelected        = "cardSelected"
	EventCardSelectedByOther = "cardSelectedByOther"
	EventGameCompleted       = "gameCompleted"
	EventTurnChanged         = "turnChanged"
	EventPlayerRetired       = "playerRetired"
	EventGameReset           = "gameReset"
	EventPlayerLeft          = "playerLeft"
	EventChatMessageReceived = "chatMessageReceived"
	EventUserTyping          = "userTyping"
	EventUserStoppedTyping   = "userStoppedTyping"
	EventReactionToggled     = "reactionToggled"
	EventError               = "error"
)

// Every event except error embeds the full session snapshot so clients can
// reconcile state without deltas.

// SessionCreatedEvent acknowledges a createSession to the host only
type SessionCreatedEvent struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	PlayerID  string          `json:"playerId"`
	Session   *models.Session `json:"session"`
}

// JoinedSessionEvent acknowledges a joinSession to the joiner only
type JoinedSessionEvent struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	PlayerID  string          `json:"playerId"`
	Session   *models.Session `json:"session"`
}

// PlayerJoinedEvent tells the rest of the session about a new player
type PlayerJoinedEvent struct {
	Type    string          `json:"type"`
	Player  *models.Player  `json:"player"`
	Session *models.Session `json:"session"`
}

// JobSelectedEvent announces a lobby job selection
type JobSelectedEvent struct {
	Type     string          `json:"type"`
	PlayerID string          `json:"playerId"`
	JobID    int             `json:"jobId"`
	Session  *models.Session `json:"session"`
}

// GameStartedEvent announces the lobby-to-playing transition
type GameStartedEvent struct {
	Type    string          `json:"type"`
	Session *models.Session `json:"session"`
}

// DiceRolledEvent carries the die value and the drawn cards
type DiceRolledEvent struct {
	Type       string          `json:"type"`
	DiceValue  int             `json:"diceValue"`
	DrawnCards []*models.Card  `json:"drawnCards"`
	Session    *models.Session `json:"session"`
}

// CardSelectedEvent carries a selection result. Score details are only
// sent to the acting player; the rest of the session gets
// CardSelectedByOtherEvent instead.
type CardSelectedEvent struct {
	Type            string                 `json:"type"`
	Card            *models.Card           `json:"card"`
	Matched         bool                   `json:"matched"`
	AlreadySelected bool                   `json:"alreadySelected"`
	PointsUpdated   map[int]int            `json:"pointsUpdated,omitempty"`
	PlayerFinished  bool                   `json:"playerFinished,omitempty"`
	FinishRank      int                    `json:"finishRank,omitempty"`
	PlayerName      string                 `json:"playerName,omitempty"`
	AllFinished     bool                   `json:"allFinished,omitempty"`
	FinalRankings   []*models.RankedPlayer `json:"finalRankings,omitempty"`
	Session         *models.Session        `json:"session"`
}

// CardSelectedByOtherEvent is the state-refresh notice sent to everyone
// but the acting player after a skill selection
type CardSelectedByOtherEvent struct {
	Type     string          `json:"type"`
	PlayerID string          `json:"playerId"`
	CardType models.CardType `json:"cardType"`
	Session  *models.Session `json:"session"`
}

// GameCompletedEvent announces that every active player finished
type GameCompletedEvent struct {
	Type          string                 `json:"type"`
	FinalRankings []*models.RankedPlayer `json:"finalRankings"`
	Session       *models.Session        `json:"session"`
}

// TurnChangedEvent announces the new current player
type TurnChangedEvent struct {
	Type               string          `json:"type"`
	CurrentPlayerIndex int             `json:"currentPlayerIndex"`
	CurrentPlayer      *models.Player  `json:"currentPlayer"`
	Session            *models.Session `json:"session"`
}

// PlayerRetiredEvent announces a resignation transfer
type PlayerRetiredEvent struct {
	Type            string          `json:"type"`
	RetiredPlayerID string          `json:"retiredPlayerId"`
	TargetPlayerID  string          `json:"targetPlayerId"`
	Session         *models.Session `json:"session"`
}

// GameResetEvent announces a session returning to its lobby state
type GameResetEvent struct {
	Type    string          `json:"type"`
	Session *models.Session `json:"session"`
}

// PlayerLeftEvent announces a disconnect to the remaining players
type PlayerLeftEvent struct {
	Type       string          `json:"type"`
	PlayerID   string          `json:"playerId"`
	PlayerName string          `json:"playerName"`
	Session    *models.Session `json:"session"`
}

// ChatMessageReceivedEvent carries a new chat message
type ChatMessageReceivedEvent struct {
	Type    string              `json:"type"`
	Message *models.ChatMessage `json:"message"`
	Session *models.Session     `json:"session"`
}

// UserTypingEvent relays a typing indicator, no session snapshot needed
type UserTypingEvent struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// ReactionToggledEvent carries an updated chat message
type ReactionToggledEvent struct {
	Type      string              `json:"type"`
	MessageID int64               `json:"messageId"`
	Message   *models.ChatMessage `json:"message"`
	Session   *models.Session     `json:"session"`
}

// ErrorEvent reports a failure to the acting connection only
type ErrorEvent struct {
	Type  string    `json:"type"`
	Error ErrorBody `json:"error"`
}

// ErrorBody is the code/message pair inside an error event
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorEvent wraps an error for the wire. Game errors carry their own
// code; anything else is a server error.
func NewErrorEvent(err error) *ErrorEvent {
	var gameErr GameError
	if errors.As(err, &gameErr) {
		return &ErrorEvent{
			Type:  EventError,
			Error: ErrorBody{Code: gameErr.Code(), Message: gameErr.Error()},
		}
	}

	return &ErrorEvent{
		Type:  EventError,
		Error: ErrorBody{Code: "SERVER_ERROR", Message: err.Error()},
	}
}
