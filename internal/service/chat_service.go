package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ChatService provides conversation and messaging logic.
type ChatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

// NewChatService returns a new ChatService.
func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

// ConversationSummary is a conversation enriched with the other
// participant's public profile for the listing view.
type ConversationSummary struct {
	Conversation     *models.Conversation
	OtherParticipant *models.User
}

// GetOrCreateConversation returns the conversation between the two
// users, creating it when absent. (a,b) and (b,a) resolve to the same
// conversation. The second result reports whether it was created.
func (s *ChatService) GetOrCreateConversation(ctx context.Context, userID, otherID uint) (*models.Conversation, bool, error) {
	if userID == otherID {
		return nil, false, models.NewInvalidInputError("Cannot create conversation with yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, otherID); err != nil {
		return nil, false, err
	}

	return s.chatRepo.GetOrCreate(ctx, userID, otherID)
}

// ListConversations returns the user's conversations, newest activity
// first, each enriched with the other participant.
func (s *ChatService) ListConversations(ctx context.Context, userID uint) ([]ConversationSummary, error) {
	conversations, err := s.chatRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, 0, len(conversations))
	for i := range conversations {
		conv := &conversations[i]
		summaries = append(summaries, ConversationSummary{
			Conversation:     conv,
			OtherParticipant: conv.Other(userID),
		})
	}
	return summaries, nil
}

// ListMessages returns the conversation's messages oldest first. A
// conversation the caller is not part of is indistinguishable from one
// that does not exist.
func (s *ChatService) ListMessages(ctx context.Context, userID, convID uint) ([]models.Message, error) {
	if _, err := s.chatRepo.GetForParticipant(ctx, convID, userID); err != nil {
		return nil, err
	}

	return s.chatRepo.ListMessages(ctx, convID)
}

// SendMessage appends a message to the conversation with a snapshot of
// the sender's current display name, and rolls the conversation's
// last-message summary forward.
func (s *ChatService) SendMessage(ctx context.Context, userID, convID uint, content string) (*models.Message, error) {
	if content == "" {
		return nil, models.NewInvalidInputError("Message content is required")
	}

	if _, err := s.chatRepo.GetForParticipant(ctx, convID, userID); err != nil {
		return nil, err
	}

	sender, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: convID,
		SenderID:       userID,
		SenderName:     sender.FullName,
		Content:        content,
	}

	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}
