package repository

import (
	"context"
	"errors"
	"time"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines the interface for conversation and message
// data operations.
type ChatRepository interface {
	// GetOrCreate returns the conversation for the unordered pair,
	// creating it when absent. The second result reports whether a new
	// conversation was created.
	GetOrCreate(ctx context.Context, userID, otherID uint) (*models.Conversation, bool, error)
	// GetForParticipant fetches a conversation only when the given user
	// is one of its participants. A missing conversation and a
	// non-participant caller produce the same not-found error.
	GetForParticipant(ctx context.Context, convID, userID uint) (*models.Conversation, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Conversation, error)
	// CreateMessage appends the message and updates the parent
	// conversation's last-message snapshot in the same transaction.
	CreateMessage(ctx context.Context, msg *models.Message) error
	ListMessages(ctx context.Context, convID uint) ([]models.Message, error)
}

// chatRepository implements ChatRepository.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) GetOrCreate(ctx context.Context, userID, otherID uint) (*models.Conversation, bool, error) {
	a, b := userID, otherID
	if a > b {
		a, b = b, a
	}

	existing, err := r.findByPair(ctx, a, b)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	conv := &models.Conversation{
		UserAID:       a,
		UserBID:       b,
		LastMessage:   "",
		LastMessageAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(conv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent request created the pair first; return the winner.
			winner, ferr := r.findByPair(ctx, a, b)
			if ferr != nil {
				return nil, false, ferr
			}
			if winner != nil {
				return winner, false, nil
			}
		}
		return nil, false, models.NewUnavailableError(err)
	}

	return conv, true, nil
}

func (r *chatRepository) findByPair(ctx context.Context, a, b uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewUnavailableError(err)
	}
	return &conv, nil
}

func (r *chatRepository) GetForParticipant(ctx context.Context, convID, userID uint) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.WithContext(ctx).
		Where("id = ? AND (user_a_id = ? OR user_b_id = ?)", convID, userID, userID).
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Deliberately the same error whether the conversation does
			// not exist or the caller is not a participant.
			return nil, models.NewNotFoundError("Conversation", convID)
		}
		return nil, models.NewUnavailableError(err)
	}
	return &conv, nil
}

func (r *chatRepository) ListForUser(ctx context.Context, userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Preload("UserA").
		Preload("UserB").
		Order("last_message_at DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, models.NewUnavailableError(err)
	}
	return conversations, nil
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).Where("id = ?", msg.ConversationID).
			Updates(map[string]any{
				"last_message":    msg.Content,
				"last_message_at": msg.CreatedAt,
			}).Error
	})
	if err != nil {
		return models.NewUnavailableError(err)
	}
	return nil
}

func (r *chatRepository) ListMessages(ctx context.Context, convID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", convID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, models.NewUnavailableError(err)
	}
	return messages, nil
}
