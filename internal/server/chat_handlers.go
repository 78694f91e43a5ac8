package server

import (
	"time"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// conversationResponse is the wire shape of a conversation, with the
// participant ids spelled out and the other participant attached for
// listing views.
type conversationResponse struct {
	ID               uint         `json:"id"`
	Participants     []uint       `json:"participants"`
	LastMessage      string       `json:"lastMessage"`
	LastMessageAt    time.Time    `json:"lastMessageAt"`
	CreatedAt        time.Time    `json:"createdAt"`
	OtherParticipant *models.User `json:"otherParticipant,omitempty"`
}

func renderConversation(conv *models.Conversation, other *models.User) conversationResponse {
	return conversationResponse{
		ID:               conv.ID,
		Participants:     conv.Participants(),
		LastMessage:      conv.LastMessage,
		LastMessageAt:    conv.LastMessageAt,
		CreatedAt:        conv.CreatedAt,
		OtherParticipant: other,
	}
}

// ListConversations handles GET /api/conversations.
func (s *Server) ListConversations(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	summaries, err := s.chat.ListConversations(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	out := make([]conversationResponse, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, renderConversation(sum.Conversation, sum.OtherParticipant))
	}
	return c.JSON(fiber.Map{"conversations": out})
}

// CreateConversation handles POST /api/conversations. Creating a
// conversation with a user you already have one with returns the
// existing thread.
func (s *Server) CreateConversation(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		UserID uint `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewInvalidInputError("Invalid request body"))
	}
	if req.UserID == 0 {
		return models.RespondWithError(c, models.NewInvalidInputError("userId is required"))
	}

	conv, created, err := s.chat.GetOrCreateConversation(c.Context(), userID, req.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{
		"conversation": renderConversation(conv, nil),
	})
}

// ListMessages handles GET /api/conversations/:id/messages.
func (s *Server) ListMessages(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	convID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	messages, err := s.chat.ListMessages(c.Context(), userID, convID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"messages": messages})
}

// SendMessage handles POST /api/conversations/:id/messages.
func (s *Server) SendMessage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	convID, err := parseIDParam(c, "id")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewInvalidInputError("Invalid request body"))
	}

	msg, err := s.chat.SendMessage(c.Context(), userID, convID, req.Content)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent",
		"data":    msg,
	})
}
