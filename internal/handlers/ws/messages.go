package ws

// Inbound message type discriminators
const (
	actionCreateSession  = "createSession"
	actionJoinSession    = "joinSession"
	actionSelectJob      = "selectJob"
	actionStartGame      = "startGame"
	actionRollDice       = "rollDice"
	actionSelectCard     = "selectCard"
	actionNextTurn       = "nextTurn"
	actionResign         = "resign"
	actionResetGame      = "resetGame"
	actionChatMessage    = "chatMessage"
	actionTyping         = "typing"
	actionStopTyping     = "stopTyping"
	actionToggleReaction = "toggleReaction"
)

// inboundMessage is the flat envelope clients send. Which fields are
// meaningful depends on Type; the rest stay at their zero values.
type inboundMessage struct {
	Type string `json:"type"`

	SessionID  string `json:"sessionId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`

	// createSession
	MaxPlayers int `json:"maxPlayers"`

	// selectJob
	JobID int `json:"jobId"`

	// selectCard
	CardID int `json:"cardId"`

	// resign
	TargetPlayerID string `json:"targetPlayerId"`

	// chatMessage
	Message string `json:"message"`

	// toggleReaction
	MessageID int64  `json:"messageId"`
	Emoji     string `json:"emoji"`
}
