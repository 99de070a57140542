package models

// Session is the authoritative in-memory record of one game
type Session struct {
	// ID is the short invite token identifying the session
	ID string `json:"id"`

	// HostPlayerID is the player who created the session
	HostPlayerID string `json:"hostPlayerId"`

	// Players is the ordered player sequence; order defines turn rotation
	Players []*Player `json:"players"`

	// MaxPlayers caps how many players may join
	MaxPlayers int `json:"maxPlayers"`

	// CurrentPlayerIndex points at the player whose turn it is
	CurrentPlayerIndex int `json:"currentPlayerIndex"`

	// GameStarted flips when the host starts the game
	GameStarted bool `json:"gameStarted"`

	// DiceValue is the pending die value, nil when no roll is outstanding
	DiceValue *int `json:"diceValue"`

	// DrawnCards holds the cards awaiting a selection this turn
	DrawnCards []*Card `json:"drawnCards"`

	// SelectedCardsHistory is the append-only record of every selection
	SelectedCardsHistory []*HistoryEntry `json:"selectedCardsHistory"`

	// UsedCardIDs tracks cards drawn since the last exhaustion reset
	UsedCardIDs []int `json:"usedCardIds"`

	// ChatMessages is the session chat log
	ChatMessages []*ChatMessage `json:"chatMessages"`

	// FinishedPlayers lists player IDs in the order they finished
	FinishedPlayers []string `json:"finishedPlayers"`

	// AllFinished flips when every non-retired player has finished
	AllFinished bool `json:"allFinished"`
}

// HistoryEntry records one card selection for the session's lifetime
type HistoryEntry struct {
	// PlayerID is the acting player
	PlayerID string `json:"playerId"`

	// PlayerName is the acting player's display name at selection time
	PlayerName string `json:"playerName"`

	// Card is the selected card
	Card *Card `json:"card"`

	// TurnNumber is the 1-based sequential selection number
	TurnNumber int `json:"turnNumber"`
}

// RankedPlayer is one row of a completed game's final ranking
type RankedPlayer struct {
	// ID is the player identifier
	ID string `json:"id"`

	// Name is the player's display name
	Name string `json:"name"`

	// Rank is the player's finish rank
	Rank int `json:"rank"`
}

// FindPlayer returns the player with the given ID, or nil
func (s *Session) FindPlayer(playerID string) *Player {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil for an
// empty session
func (s *Session) CurrentPlayer() *Player {
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return nil
	}
	return s.Players[s.CurrentPlayerIndex]
}

// ActivePlayers returns the non-retired players in turn order
func (s *Session) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if !p.Retired {
			active = append(active, p)
		}
	}
	return active
}

// HasUsedCard reports whether the card was drawn since the last
// exhaustion reset
func (s *Session) HasUsedCard(cardID int) bool {
	for _, id := range s.UsedCardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}
