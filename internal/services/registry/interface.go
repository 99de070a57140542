package registry

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go careerparty/internal/services/registry Service,Conn

// Conn is the outbound half of one player's connection. Send must not
// block; implementations queue the payload and drop it if the client
// cannot keep up.
type Conn interface {
	// Send serializes v and queues it for delivery
	Send(v interface{}) error

	// Close tears the connection down
	Close()
}

// Service maps (session, player) pairs to open connections and delivers
// events to them
type Service interface {
	// Register associates a connection with a player in a session
	Register(sessionID, playerID string, conn Conn)

	// Unregister detaches a player's connection and returns how many
	// connections remain in the session
	Unregister(sessionID, playerID string) int

	// RemoveSession drops every connection mapping for a session
	RemoveSession(sessionID string)

	// SendToPlayer delivers an event to a single player, if connected
	SendToPlayer(sessionID, playerID string, v interface{})

	// Broadcast delivers an event to every connected player in the
	// session except excludePlayerID (empty string excludes nobody)
	Broadcast(sessionID string, v interface{}, excludePlayerID string)
}
