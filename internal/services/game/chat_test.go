package game

func (s *GameServiceTestSuite) TestSendChatMessage() {
	session, alice, _ := s.createTwoPlayerSession()

	out, err := s.gameService.SendChatMessage(s.ctx, &SendChatMessageInput{
		SessionID:  session.ID,
		PlayerID:   alice,
		PlayerName: "Alice",
		Message:    "good luck!",
	})
	s.Require().NoError(err)

	s.Require().NotNil(out.Message)
	s.Equal(s.testTime.UnixMilli(), out.Message.ID)
	s.Equal("12:00", out.Message.Timestamp)
	s.Equal("good luck!", out.Message.Message)
	s.Require().Len(session.ChatMessages, 1)
	s.Equal(out.Message, session.ChatMessages[0])

	last := s.broadcasts[len(s.broadcasts)-1]
	event, ok := last.payload.(*ChatMessageReceivedEvent)
	s.Require().True(ok)
	s.Equal(out.Message, event.Message)
	s.Empty(last.exclude)
}

func (s *GameServiceTestSuite) TestSendChatMessageUnknownSession() {
	out, err := s.gameService.SendChatMessage(s.ctx, &SendChatMessageInput{
		SessionID: "nope",
		Message:   "hello?",
	})
	s.Require().NoError(err)
	s.Nil(out.Message)
}

func (s *GameServiceTestSuite) TestSetTypingExcludesSender() {
	session, alice, _ := s.createTwoPlayerSession()

	_, err := s.gameService.SetTyping(s.ctx, &SetTypingInput{
		SessionID:  session.ID,
		PlayerID:   alice,
		PlayerName: "Alice",
		Typing:     true,
	})
	s.Require().NoError(err)

	last := s.broadcasts[len(s.broadcasts)-1]
	event, ok := last.payload.(*UserTypingEvent)
	s.Require().True(ok)
	s.Equal(EventUserTyping, event.Type)
	s.Equal(alice, last.exclude)

	_, err = s.gameService.SetTyping(s.ctx, &SetTypingInput{
		SessionID: session.ID,
		PlayerID:  alice,
		Typing:    false,
	})
	s.Require().NoError(err)

	last = s.broadcasts[len(s.broadcasts)-1]
	event, ok = last.payload.(*UserTypingEvent)
	s.Require().True(ok)
	s.Equal(EventUserStoppedTyping, event.Type)
}

func (s *GameServiceTestSuite) TestToggleReaction() {
	session, alice, bob := s.createTwoPlayerSession()

	sent, err := s.gameService.SendChatMessage(s.ctx, &SendChatMessageInput{
		SessionID:  session.ID,
		PlayerID:   alice,
		PlayerName: "Alice",
		Message:    "nice roll",
	})
	s.Require().NoError(err)

	out, err := s.gameService.ToggleReaction(s.ctx, &ToggleReactionInput{
		SessionID: session.ID,
		PlayerID:  bob,
		MessageID: sent.Message.ID,
		Emoji:     "🎲",
	})
	s.Require().NoError(err)
	s.Equal([]string{bob}, out.Message.Reactions["🎲"])

	// Toggling again removes the reaction and drops the empty set
	out, err = s.gameService.ToggleReaction(s.ctx, &ToggleReactionInput{
		SessionID: session.ID,
		PlayerID:  bob,
		MessageID: sent.Message.ID,
		Emoji:     "🎲",
	})
	s.Require().NoError(err)
	s.NotContains(out.Message.Reactions, "🎲")
}

func (s *GameServiceTestSuite) TestToggleReactionUnknownMessage() {
	session, alice, _ := s.createTwoPlayerSession()

	out, err := s.gameService.ToggleReaction(s.ctx, &ToggleReactionInput{
		SessionID: session.ID,
		PlayerID:  alice,
		MessageID: 12345,
		Emoji:     "👍",
	})
	s.Require().NoError(err)
	s.Nil(out.Message)
}
