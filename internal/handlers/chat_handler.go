package handlers

import (
	"strings"

	"lumina/internal/middleware"
	"lumina/internal/models"
	"lumina/internal/services"
	"lumina/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ChatHandler serves the storefront assistant.
type ChatHandler struct {
	service  *services.ChatService
	validate *validator.Validate
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{
		service:  service,
		validate: validation.New(),
	}
}

// RegisterRoutes registers the chat routes.
func (h *ChatHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/chat", h.HandleGetHistory)
	router.Post("/chat", h.HandleSendMessage)
}

// ChatRequest represents a customer message.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// HandleGetHistory returns the conversation so far.
func (h *ChatHandler) HandleGetHistory(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentSession(c).History())
}

// HandleSendMessage sends the message to the assistant and returns its reply.
func (h *ChatHandler) HandleSendMessage(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	req.Message = strings.TrimSpace(req.Message)
	if stop, err := validate(c, h.validate, req); stop {
		return err
	}

	s := middleware.CurrentSession(c)
	reply := models.ChatMessage{
		Role:    models.ChatRoleModel,
		Content: h.service.Reply(c.UserContext(), req.Message, s.History()),
	}
	s.AppendChat(models.ChatMessage{Role: models.ChatRoleUser, Content: req.Message}, reply)
	return c.JSON(reply)
}
