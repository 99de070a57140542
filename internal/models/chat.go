package models

// ChatMessage is one entry in a session's chat log
type ChatMessage struct {
	// ID is a millisecond timestamp, unique enough within one session
	ID int64 `json:"id"`

	// PlayerID is the sender
	PlayerID string `json:"playerId"`

	// PlayerName is the sender's display name
	PlayerName string `json:"playerName"`

	// Message is the chat text
	Message string `json:"message"`

	// Timestamp is the human-readable send time
	Timestamp string `json:"timestamp"`

	// Reactions maps an emoji to the player IDs who reacted with it
	Reactions map[string][]string `json:"reactions"`
}

// ToggleReaction adds the player's reaction for the emoji, or removes it
// if already present. Empty reaction lists are dropped.
func (m *ChatMessage) ToggleReaction(emoji, playerID string) {
	if m.Reactions == nil {
		m.Reactions = map[string][]string{}
	}

	ids := m.Reactions[emoji]
	for i, id := range ids {
		if id == playerID {
			ids = append(ids[:i], ids[i+1:]...)
			if len(ids) == 0 {
				delete(m.Reactions, emoji)
			} else {
				m.Reactions[emoji] = ids
			}
			return
		}
	}

	m.Reactions[emoji] = append(ids, playerID)
}
