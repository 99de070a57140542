package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"careerparty/internal/common/clock"
	"careerparty/internal/common/uuid"
	"careerparty/internal/dice"
	"careerparty/internal/models"
	"careerparty/internal/repositories/catalog"
	"careerparty/internal/services/registry"
)

// sessionState pairs a session with its mutex. Every mutation of the
// session happens with the mutex held, which stands in for the original
// single-threaded event loop.
type sessionState struct {
	mu      sync.Mutex
	session *models.Session

	// deleted marks a session removed from the directory so operations
	// that looked it up before a catalog read can no-op afterwards
	deleted bool
}

// service implements the Service interface
type service struct {
	config      *Config
	catalogRepo catalog.Repository
	registry    registry.Service
	diceRoller  dice.Roller
	clock       clock.Clock
	idGen       uuid.Generator

	// mu guards the sessions map only, never held across a session lock
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CatalogRepo == nil {
		return nil, ErrNilCatalogRepo
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.IDGenerator == nil {
		return nil, ErrNilIDGenerator
	}

	// Fill in defaults for unset config values
	if cfg.DefaultMaxPlayers == 0 {
		cfg.DefaultMaxPlayers = 4
	}
	if cfg.DiceSides == 0 {
		cfg.DiceSides = 6
	}
	if cfg.ExhaustionBuffer == 0 {
		cfg.ExhaustionBuffer = 7
	}
	if cfg.SpecialChance == 0 {
		cfg.SpecialChance = 0.1
	}

	return &service{
		config:      cfg,
		catalogRepo: cfg.CatalogRepo,
		registry:    cfg.Registry,
		diceRoller:  cfg.DiceRoller,
		clock:       cfg.Clock,
		idGen:       cfg.IDGenerator,
		sessions:    make(map[string]*sessionState),
	}, nil
}

// getSession looks a session up in the directory, or returns nil
func (s *service) getSession(sessionID string) *sessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[sessionID]
}

// deleteSession removes a session from the directory and drops its
// connection mappings. The caller must have marked the state deleted
// under the session lock first.
func (s *service) deleteSession(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.registry.RemoveSession(sessionID)
	log.Printf("Session %s deleted (no players)", sessionID)
}

// CreateSession creates a new game session with the caller as host
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	playerName := input.PlayerName
	if playerName == "" {
		playerName = "Player 1"
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = s.config.DefaultMaxPlayers
	}

	playerID := s.idGen.NewUUID()
	host := models.NewPlayer(playerID, playerName)

	session := &models.Session{
		HostPlayerID:         playerID,
		Players:              []*models.Player{host},
		MaxPlayers:           maxPlayers,
		DrawnCards:           []*models.Card{},
		SelectedCardsHistory: []*models.HistoryEntry{},
		UsedCardIDs:          []int{},
		ChatMessages:         []*models.ChatMessage{},
		FinishedPlayers:      []string{},
	}

	// Allocate a token under the directory lock, retrying the practically
	// impossible collision
	state := &sessionState{session: session}
	s.mu.Lock()
	for {
		sessionID := s.idGen.NewShortID()
		if _, exists := s.sessions[sessionID]; exists {
			continue
		}

		session.ID = sessionID
		s.sessions[sessionID] = state
		break
	}
	s.mu.Unlock()

	if input.Conn != nil {
		s.registry.Register(session.ID, playerID, input.Conn)
	}

	// The snapshot is serialized inside SendToPlayer, so it goes out
	// under the session lock like every other emission
	state.mu.Lock()
	s.registry.SendToPlayer(session.ID, playerID, &SessionCreatedEvent{
		Type:      EventSessionCreated,
		SessionID: session.ID,
		PlayerID:  playerID,
		Session:   session,
	})
	state.mu.Unlock()

	log.Printf("Session created: %s", session.ID)

	return &CreateSessionOutput{
		SessionID: session.ID,
		PlayerID:  playerID,
		Session:   session,
	}, nil
}

// JoinSession adds a player to an existing session
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return nil, ErrSessionNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted {
		return nil, ErrSessionNotFound
	}

	session := state.session

	if len(session.Players) >= session.MaxPlayers {
		return nil, ErrSessionFull
	}

	if session.GameStarted {
		return nil, ErrGameAlreadyStarted
	}

	playerName := input.PlayerName
	if playerName == "" {
		playerName = fmt.Sprintf("Player %d", len(session.Players)+1)
	}

	playerID := s.idGen.NewUUID()
	player := models.NewPlayer(playerID, playerName)
	session.Players = append(session.Players, player)

	if input.Conn != nil {
		s.registry.Register(session.ID, playerID, input.Conn)
	}

	s.registry.SendToPlayer(session.ID, playerID, &JoinedSessionEvent{
		Type:      EventJoinedSession,
		SessionID: session.ID,
		PlayerID:  playerID,
		Session:   session,
	})

	s.registry.Broadcast(session.ID, &PlayerJoinedEvent{
		Type:    EventPlayerJoined,
		Player:  player,
		Session: session,
	}, playerID)

	log.Printf("Player %s joined session %s", playerID, session.ID)

	return &JoinSessionOutput{
		SessionID: session.ID,
		PlayerID:  playerID,
		Session:   session,
	}, nil
}

// RemovePlayerOnDisconnect handles a dropped connection. Before the game
// starts the player is removed from the sequence; afterwards only the
// connection is detached, since mid-game removal would corrupt the turn
// rotation. A session with nobody left is deleted either way.
func (s *service) RemovePlayerOnDisconnect(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	remaining := s.registry.Unregister(input.SessionID, input.PlayerID)

	state := s.getSession(input.SessionID)
	if state == nil {
		return &RemovePlayerOutput{}, nil
	}

	state.mu.Lock()

	if state.deleted {
		state.mu.Unlock()
		return &RemovePlayerOutput{}, nil
	}

	session := state.session
	sessionDeleted := false

	if !session.GameStarted {
		for i, p := range session.Players {
			if p.ID == input.PlayerID {
				session.Players = append(session.Players[:i], session.Players[i+1:]...)

				s.registry.Broadcast(session.ID, &PlayerLeftEvent{
					Type:       EventPlayerLeft,
					PlayerID:   p.ID,
					PlayerName: p.Name,
					Session:    session,
				}, "")

				log.Printf("Player %s (%s) left session %s", p.ID, p.Name, session.ID)
				break
			}
		}

		if len(session.Players) == 0 {
			sessionDeleted = true
		}
	} else {
		if p := session.FindPlayer(input.PlayerID); p != nil {
			s.registry.Broadcast(session.ID, &PlayerLeftEvent{
				Type:       EventPlayerLeft,
				PlayerID:   p.ID,
				PlayerName: p.Name,
				Session:    session,
			}, "")
		}

		// Mid-game player records survive a disconnect, so the session
		// is reclaimed once its last connection is gone
		if remaining == 0 {
			sessionDeleted = true
		}
	}

	if sessionDeleted {
		state.deleted = true
	}

	state.mu.Unlock()

	if sessionDeleted {
		s.deleteSession(input.SessionID)
	}

	return &RemovePlayerOutput{SessionDeleted: sessionDeleted}, nil
}
