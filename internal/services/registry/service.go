package registry

import (
	"log"
	"sync"
)

// service implements the Service interface with an in-memory two-level map
type service struct {
	mu       sync.RWMutex
	sessions map[string]map[string]Conn
}

// New creates an empty connection registry
func New() *service {
	return &service{
		sessions: make(map[string]map[string]Conn),
	}
}

// Register associates a connection with a player in a session
func (s *service) Register(sessionID, playerID string, conn Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns, ok := s.sessions[sessionID]
	if !ok {
		conns = make(map[string]Conn)
		s.sessions[sessionID] = conns
	}

	conns[playerID] = conn
}

// Unregister detaches a player's connection and returns the number of
// connections remaining in the session
func (s *service) Unregister(sessionID, playerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns, ok := s.sessions[sessionID]
	if !ok {
		return 0
	}

	delete(conns, playerID)

	if len(conns) == 0 {
		delete(s.sessions, sessionID)
		return 0
	}

	return len(conns)
}

// RemoveSession drops every connection mapping for a session
func (s *service) RemoveSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

// SendToPlayer delivers an event to a single player, if connected
func (s *service) SendToPlayer(sessionID, playerID string, v interface{}) {
	s.mu.RLock()
	conn := s.sessions[sessionID][playerID]
	s.mu.RUnlock()

	if conn == nil {
		return
	}

	if err := conn.Send(v); err != nil {
		log.Printf("Failed to send to player %s in session %s: %v", playerID, sessionID, err)
	}
}

// Broadcast delivers an event to every connected player in the session
// except excludePlayerID. Failed sends are skipped, never retried.
func (s *service) Broadcast(sessionID string, v interface{}, excludePlayerID string) {
	s.mu.RLock()
	conns := make(map[string]Conn, len(s.sessions[sessionID]))
	for playerID, conn := range s.sessions[sessionID] {
		conns[playerID] = conn
	}
	s.mu.RUnlock()

	for playerID, conn := range conns {
		if playerID == excludePlayerID {
			continue
		}

		if err := conn.Send(v); err != nil {
			log.Printf("Failed to broadcast to player %s in session %s: %v", playerID, sessionID, err)
		}
	}
}
