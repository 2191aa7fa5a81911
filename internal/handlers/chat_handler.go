package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Reshma22M/Flexa-ChatBot/internal/ml"
	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
	"github.com/Reshma22M/Flexa-ChatBot/internal/session"
)

type chatApplicationService interface {
	Start(ctx context.Context) (*models.ChatStartResponse, error)
	HandleMessage(ctx context.Context, sessionID, userMessage string) (*models.ChatMessageResponse, error)
}

type ChatHandler struct {
	service chatApplicationService
}

func NewChatHandler(service chatApplicationService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) StartChat(c *fiber.Ctx) error {
	resp, err := h.service.Start(c.Context())
	if err != nil {
		return mapChatError(c, err)
	}
	return c.JSON(resp)
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	var req models.ChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	resp, err := h.service.HandleMessage(c.Context(), req.SessionID, req.UserMessage)
	if err != nil {
		return mapChatError(c, err)
	}
	return c.JSON(resp)
}

func mapChatError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ml.ErrModelUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Recommendation engine is unavailable"})
	case errors.Is(err, session.ErrStoreFull):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Too many active conversations, try again later"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
