package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"careerparty/internal/services/game"
)

// Config holds configuration for the WebSocket handler
type Config struct {
	// GameService handles every decoded action
	GameService game.Service
}

// Handler upgrades HTTP requests and pumps decoded actions into the game
// service. One goroutine reads per connection; the client's write pump
// delivers events back.
type Handler struct {
	gameService game.Service
	upgrader    websocket.Upgrader
}

// New creates a new WebSocket handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	return &Handler{
		gameService: cfg.GameService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Clients are served from arbitrary origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP upgrades the request and runs the connection's read loop
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	c := newClient(conn)
	go c.writePump()

	log.Printf("Client connected: %s", conn.RemoteAddr())
	h.readLoop(c)
}

// readLoop decodes inbound messages until the connection drops, then
// runs the disconnect path for whatever session the connection joined
func (h *Handler) readLoop(c *client) {
	// Operations keep running even while the originating socket is
	// closing, so the loop does not derive its context from the request
	ctx := context.Background()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The connection's session membership, set by createSession and
	// joinSession
	var sessionID, playerID string

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Client read error: %v", err)
			}
			break
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Malformed message from %s: %v", c.conn.RemoteAddr(), err)
			c.Send(game.NewErrorEvent(errors.New("invalid message")))
			continue
		}

		h.dispatch(ctx, c, &msg, &sessionID, &playerID)
	}

	if sessionID != "" && playerID != "" {
		if _, err := h.gameService.RemovePlayerOnDisconnect(ctx, &game.RemovePlayerInput{
			SessionID: sessionID,
			PlayerID:  playerID,
		}); err != nil {
			log.Printf("Error removing player %s: %v", playerID, err)
		}
	}

	c.Close()
	log.Printf("Client disconnected: %s", c.conn.RemoteAddr())
}

// dispatch routes one decoded message to the game service. Failures are
// reported to the acting connection only; unknown types are ignored.
func (h *Handler) dispatch(ctx context.Context, c *client, msg *inboundMessage, sessionID, playerID *string) {
	var err error

	switch msg.Type {
	case actionCreateSession:
		var out *game.CreateSessionOutput
		out, err = h.gameService.CreateSession(ctx, &game.CreateSessionInput{
			PlayerName: msg.PlayerName,
			MaxPlayers: msg.MaxPlayers,
			Conn:       c,
		})
		if err == nil {
			*sessionID = out.SessionID
			*playerID = out.PlayerID
		}

	case actionJoinSession:
		var out *game.JoinSessionOutput
		out, err = h.gameService.JoinSession(ctx, &game.JoinSessionInput{
			SessionID:  msg.SessionID,
			PlayerName: msg.PlayerName,
			Conn:       c,
		})
		if err == nil {
			*sessionID = out.SessionID
			*playerID = out.PlayerID
		}

	case actionSelectJob:
		_, err = h.gameService.SelectJob(ctx, &game.SelectJobInput{
			SessionID: msg.SessionID,
			PlayerID:  msg.PlayerID,
			JobID:     msg.JobID,
		})

	case actionStartGame:
		_, err = h.gameService.StartGame(ctx, &game.StartGameInput{
			SessionID: msg.SessionID,
		})

	case actionRollDice:
		_, err = h.gameService.RollDice(ctx, &game.RollDiceInput{
			SessionID: msg.SessionID,
		})

	case actionSelectCard:
		_, err = h.gameService.SelectCard(ctx, &game.SelectCardInput{
			SessionID: msg.SessionID,
			ActorID:   *playerID,
			CardID:    msg.CardID,
		})

	case actionNextTurn:
		_, err = h.gameService.NextTurn(ctx, &game.NextTurnInput{
			SessionID: msg.SessionID,
		})

	case actionResign:
		_, err = h.gameService.Resign(ctx, &game.ResignInput{
			SessionID:      msg.SessionID,
			PlayerID:       msg.PlayerID,
			TargetPlayerID: msg.TargetPlayerID,
		})

	case actionResetGame:
		_, err = h.gameService.ResetGame(ctx, &game.ResetGameInput{
			SessionID: msg.SessionID,
		})

	case actionChatMessage:
		_, err = h.gameService.SendChatMessage(ctx, &game.SendChatMessageInput{
			SessionID:  msg.SessionID,
			PlayerID:   msg.PlayerID,
			PlayerName: msg.PlayerName,
			Message:    msg.Message,
		})

	case actionTyping, actionStopTyping:
		_, err = h.gameService.SetTyping(ctx, &game.SetTypingInput{
			SessionID:  msg.SessionID,
			PlayerID:   msg.PlayerID,
			PlayerName: msg.PlayerName,
			Typing:     msg.Type == actionTyping,
		})

	case actionToggleReaction:
		_, err = h.gameService.ToggleReaction(ctx, &game.ToggleReactionInput{
			SessionID: msg.SessionID,
			PlayerID:  msg.PlayerID,
			MessageID: msg.MessageID,
			Emoji:     msg.Emoji,
		})

	default:
		log.Printf("Ignoring unknown message type %q", msg.Type)
	}

	if err != nil {
		log.Printf("Error handling %s: %v", msg.Type, err)
		c.Send(game.NewErrorEvent(err))
	}
}
