package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/classhub/classhub-backend/internal/model"
)

// DefaultFeedLimit bounds class feed reads.
const DefaultFeedLimit = 50

// MessageService handles the class message feed.
type MessageService struct {
	messages MessageStore
}

// NewMessageService creates a new MessageService.
func NewMessageService(messages MessageStore) *MessageService {
	return &MessageService{messages: messages}
}

// Post appends a message to a class feed. The timestamp comes from the
// store at write time.
func (s *MessageService) Post(ctx context.Context, classID, senderID, senderName string, senderRole model.Role, body string) (*model.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: empty message body", ErrInvalidInput)
	}
	msg := &model.Message{
		ClassID:    classID,
		SenderID:   senderID,
		SenderName: senderName,
		SenderRole: senderRole,
		Body:       body,
	}
	if err := s.messages.Insert(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListForClass returns a class's messages newest first, bounded at limit.
func (s *MessageService) ListForClass(ctx context.Context, classID string, limit int) ([]model.Message, error) {
	if limit <= 0 || limit > DefaultFeedLimit {
		limit = DefaultFeedLimit
	}
	return s.messages.ListByClass(ctx, classID, limit)
}

// Delete removes a message on behalf of requesterID. Existence is checked
// before ownership so an absent message reports NotFound rather than
// Forbidden; only the original sender may delete.
func (s *MessageService) Delete(ctx context.Context, messageID, requesterID string) error {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != requesterID {
		return fmt.Errorf("%w: only the sender can delete a message", ErrForbidden)
	}
	return s.messages.Delete(ctx, messageID)
}
