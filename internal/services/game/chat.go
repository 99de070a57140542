package game

import (
	"context"
	"errors"
	"log"

	"careerparty/internal/models"
)

// SendChatMessage appends a message to the session chat log and delivers
// it to everyone in the session
func (s *service) SendChatMessage(ctx context.Context, input *SendChatMessageInput) (*SendChatMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &SendChatMessageOutput{}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted {
		return &SendChatMessageOutput{}, nil
	}

	session := state.session
	now := s.clock.Now()

	message := &models.ChatMessage{
		ID:         now.UnixMilli(),
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		Message:    input.Message,
		Timestamp:  now.Format("15:04"),
		Reactions:  map[string][]string{},
	}

	session.ChatMessages = append(session.ChatMessages, message)

	s.registry.Broadcast(session.ID, &ChatMessageReceivedEvent{
		Type:    EventChatMessageReceived,
		Message: message,
		Session: session,
	}, "")

	log.Printf("Chat message in session %s from %s", session.ID, input.PlayerName)

	return &SendChatMessageOutput{Message: message}, nil
}

// SetTyping relays a typing indicator to everyone but the sender. Nothing
// is stored.
func (s *service) SetTyping(ctx context.Context, input *SetTypingInput) (*SetTypingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &SetTypingOutput{}, nil
	}

	eventType := EventUserStoppedTyping
	if input.Typing {
		eventType = EventUserTyping
	}

	s.registry.Broadcast(input.SessionID, &UserTypingEvent{
		Type:       eventType,
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
	}, input.PlayerID)

	return &SetTypingOutput{Success: true}, nil
}

// ToggleReaction toggles the player's emoji reaction on a chat message.
// Unknown messages are silent no-ops.
func (s *service) ToggleReaction(ctx context.Context, input *ToggleReactionInput) (*ToggleReactionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	state := s.getSession(input.SessionID)
	if state == nil {
		return &ToggleReactionOutput{}, nil
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if state.deleted {
		return &ToggleReactionOutput{}, nil
	}

	session := state.session

	var message *models.ChatMessage
	for _, m := range session.ChatMessages {
		if m.ID == input.MessageID {
			message = m
			break
		}
	}
	if message == nil {
		return &ToggleReactionOutput{}, nil
	}

	message.ToggleReaction(input.Emoji, input.PlayerID)

	s.registry.Broadcast(session.ID, &ReactionToggledEvent{
		Type:      EventReactionToggled,
		MessageID: message.ID,
		Message:   message,
		Session:   session,
	}, "")

	return &ToggleReactionOutput{Message: message}, nil
}
