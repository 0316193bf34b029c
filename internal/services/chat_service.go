package services

import (
	"context"

	"lumina/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	ChatGreeting = "Lumina Secure Systems Online. I am your Technical Consultant. How can I assist with your infrastructure hardening today?"
	ChatOffline  = "Lumina Offline. Please reach out to ops@luminaglobal.io."
	ChatLatency  = "I apologize, my neural link is experiencing latency. Please restate your technical inquiry."
)

// Chatter continues a conversation with the assistant.
type Chatter interface {
	Chat(ctx context.Context, message string, history []models.ChatMessage, products []models.Product) (string, error)
}

// ChatService answers customer messages. It always produces a reply.
type ChatService struct {
	products *ProductService
	chatter  Chatter
	logger   *logrus.Logger
}

// NewChatService creates a new ChatService. chatter may be nil.
func NewChatService(products *ProductService, chatter Chatter, logger *logrus.Logger) *ChatService {
	return &ChatService{
		products: products,
		chatter:  chatter,
		logger:   logger,
	}
}

// Greeting is the first message of every conversation.
func (s *ChatService) Greeting() models.ChatMessage {
	return models.ChatMessage{Role: models.ChatRoleModel, Content: ChatGreeting}
}

// Reply returns the assistant's answer to message given the prior history.
func (s *ChatService) Reply(ctx context.Context, message string, history []models.ChatMessage) string {
	if s.chatter == nil {
		return ChatOffline
	}
	catalog, err := s.products.GetAllProducts()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load catalog for chat")
		return ChatOffline
	}

	reply, err := s.chatter.Chat(ctx, message, history, catalog)
	if err != nil {
		s.logger.WithError(err).Warn("Assistant request failed")
		return ChatOffline
	}
	if reply == "" {
		return ChatLatency
	}
	return reply
}
