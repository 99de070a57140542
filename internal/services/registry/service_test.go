package registry_test

import (
	"errors"
	"testing"

	"careerparty/internal/services/registry"
	"careerparty/internal/services/registry/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistryTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	registry registry.Service
}

func (s *RegistryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.registry = registry.New()
}

func (s *RegistryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) TestSendToPlayer() {
	conn := mocks.NewMockConn(s.mockCtrl)
	s.registry.Register("sess", "alice", conn)

	conn.EXPECT().Send("hello").Return(nil)
	s.registry.SendToPlayer("sess", "alice", "hello")

	// Unknown targets are skipped silently
	s.registry.SendToPlayer("sess", "ghost", "hello")
	s.registry.SendToPlayer("nope", "alice", "hello")
}

func (s *RegistryTestSuite) TestBroadcastExcludesSender() {
	alice := mocks.NewMockConn(s.mockCtrl)
	bob := mocks.NewMockConn(s.mockCtrl)
	s.registry.Register("sess", "alice", alice)
	s.registry.Register("sess", "bob", bob)

	bob.EXPECT().Send("event").Return(nil)
	s.registry.Broadcast("sess", "event", "alice")
}

func (s *RegistryTestSuite) TestBroadcastToAll() {
	alice := mocks.NewMockConn(s.mockCtrl)
	bob := mocks.NewMockConn(s.mockCtrl)
	s.registry.Register("sess", "alice", alice)
	s.registry.Register("sess", "bob", bob)

	alice.EXPECT().Send("event").Return(nil)
	bob.EXPECT().Send("event").Return(nil)
	s.registry.Broadcast("sess", "event", "")
}

func (s *RegistryTestSuite) TestBroadcastSkipsFailedSends() {
	alice := mocks.NewMockConn(s.mockCtrl)
	bob := mocks.NewMockConn(s.mockCtrl)
	s.registry.Register("sess", "alice", alice)
	s.registry.Register("sess", "bob", bob)

	alice.EXPECT().Send("event").Return(errors.New("connection closed"))
	bob.EXPECT().Send("event").Return(nil)
	s.registry.Broadcast("sess", "event", "")
}

func (s *RegistryTestSuite) TestUnregisterCountsRemaining() {
	alice := mocks.NewMockConn(s.mockCtrl)
	bob := mocks.NewMockConn(s.mockCtrl)
	s.registry.Register("sess", "alice", alice)
	s.registry.Register("sess", "bob", bob)

	s.Equal(1, s.registry.Unregister("sess", "alice"))
	s.Equal(0, s.registry.Unregister("sess", "bob"))
	s.Equal(0, s.registry.Unregister("sess", "ghost"))
}

func (s *RegistryTestSuite) TestRemoveSession() {
	alice := mocks.NewMockConn(s.mockCtrl)
	s.registry.Register("sess", "alice", alice)

	s.registry.RemoveSession("sess")

	// No sends after removal
	s.registry.SendToPlayer("sess", "alice", "event")
	s.registry.Broadcast("sess", "event", "")
}
