package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"careerparty/internal/services/game"
	gameMocks "careerparty/internal/services/game/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockGame *gameMocks.MockService
	server   *httptest.Server
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGame = gameMocks.NewMockService(s.mockCtrl)

	handler, err := New(&Config{GameService: s.mockGame})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// dial opens a websocket connection to the test server
func (s *HandlerTestSuite) dial() *websocket.Conn {
	url := "ws" + strings.TrimPrefix(s.server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	return conn
}

func (s *HandlerTestSuite) TestCreateSessionBindsConnection() {
	done := make(chan struct{})

	s.mockGame.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *game.CreateSessionInput) (*game.CreateSessionOutput, error) {
			s.Equal("Alice", input.PlayerName)
			s.Equal(2, input.MaxPlayers)
			s.NotNil(input.Conn, "connection must ride along for registration")
			return &game.CreateSessionOutput{SessionID: "abc12345", PlayerID: "p1"}, nil
		})

	// Once the session is bound, a dropped socket must run the
	// disconnect path with the bound identifiers
	s.mockGame.EXPECT().RemovePlayerOnDisconnect(gomock.Any(), &game.RemovePlayerInput{
		SessionID: "abc12345",
		PlayerID:  "p1",
	}).DoAndReturn(func(_ context.Context, _ *game.RemovePlayerInput) (*game.RemovePlayerOutput, error) {
		close(done)
		return &game.RemovePlayerOutput{}, nil
	})

	conn := s.dial()
	err := conn.WriteJSON(map[string]interface{}{
		"type":       "createSession",
		"playerName": "Alice",
		"maxPlayers": 2,
	})
	s.Require().NoError(err)

	// Give the read loop time to dispatch before dropping the socket
	time.Sleep(100 * time.Millisecond)
	conn.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("disconnect was not dispatched")
	}
}

func (s *HandlerTestSuite) TestSelectCardUsesConnectionIdentity() {
	dispatched := make(chan struct{})
	disconnected := make(chan struct{})

	s.mockGame.EXPECT().JoinSession(gomock.Any(), gomock.Any()).Return(
		&game.JoinSessionOutput{SessionID: "abc12345", PlayerID: "p2"}, nil)

	s.mockGame.EXPECT().SelectCard(gomock.Any(), &game.SelectCardInput{
		SessionID: "abc12345",
		ActorID:   "p2",
		CardID:    10,
	}).DoAndReturn(func(_ context.Context, _ *game.SelectCardInput) (*game.SelectCardOutput, error) {
		close(dispatched)
		return &game.SelectCardOutput{Applied: true}, nil
	})

	s.mockGame.EXPECT().RemovePlayerOnDisconnect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *game.RemovePlayerInput) (*game.RemovePlayerOutput, error) {
			close(disconnected)
			return &game.RemovePlayerOutput{}, nil
		})

	conn := s.dial()

	s.Require().NoError(conn.WriteJSON(map[string]interface{}{
		"type":       "joinSession",
		"sessionId":  "abc12345",
		"playerName": "Bob",
	}))
	s.Require().NoError(conn.WriteJSON(map[string]interface{}{
		"type":      "selectCard",
		"sessionId": "abc12345",
		"cardId":    10,
	}))

	select {
	case <-dispatched:
	case <-time.After(2 * time.Second):
		s.Fail("selectCard was not dispatched")
	}

	// The teardown must not race the read loop's disconnect path
	conn.Close()
	select {
	case <-disconnected:
	case <-time.After(2 * time.Second):
		s.Fail("disconnect was not dispatched")
	}
}

func (s *HandlerTestSuite) TestServiceErrorReachesClient() {
	s.mockGame.EXPECT().JoinSession(gomock.Any(), gomock.Any()).Return(nil, game.ErrSessionNotFound)

	conn := s.dial()
	defer conn.Close()

	s.Require().NoError(conn.WriteJSON(map[string]interface{}{
		"type":      "joinSession",
		"sessionId": "nope",
	}))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event struct {
		Type  string `json:"type"`
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	s.Require().NoError(conn.ReadJSON(&event))

	s.Equal("error", event.Type)
	s.Equal("SESSION_NOT_FOUND", event.Error.Code)
}

func (s *HandlerTestSuite) TestUnknownMessageTypeIgnored() {
	errored := make(chan struct{})

	s.mockGame.EXPECT().StartGame(gomock.Any(), &game.StartGameInput{SessionID: "abc12345"}).
		DoAndReturn(func(_ context.Context, _ *game.StartGameInput) (*game.StartGameOutput, error) {
			close(errored)
			return &game.StartGameOutput{Success: true}, nil
		})

	conn := s.dial()
	defer conn.Close()

	// An unknown type must not break the connection for what follows
	s.Require().NoError(conn.WriteJSON(map[string]interface{}{"type": "teleport"}))
	s.Require().NoError(conn.WriteJSON(map[string]interface{}{
		"type":      "startGame",
		"sessionId": "abc12345",
	}))

	select {
	case <-errored:
	case <-time.After(2 * time.Second):
		s.Fail("startGame was not dispatched")
	}
}
