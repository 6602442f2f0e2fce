package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Bateyjosue/marketplace/internal/repositories"
	"github.com/Bateyjosue/marketplace/internal/services"
)

// MessageHandler handles HTTP requests for buyer inquiries.
type MessageHandler struct {
	service *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{
		service: service,
	}
}

// RegisterRoutes registers the message routes with the Fiber app.
func (h *MessageHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/listings/:id/messages", h.HandleGetMessages)
	router.Post("/listings/:id/messages", h.HandleSendMessage)
}

// HandleGetMessages retrieves all messages for a listing, oldest first.
func (h *MessageHandler) HandleGetMessages(c *fiber.Ctx) error {
	listingID := c.Params("id")
	messages, err := h.service.GetMessages(listingID)
	if err != nil {
		log.Printf("Error getting messages for listing %s: %v", listingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve messages",
			"error":   err.Error(),
		})
	}
	return c.JSON(messages)
}

// HandleSendMessage persists an inquiry and relays the email
// notification. A transport failure after the record was written
// answers 502 and still reports the persisted message id.
func (h *MessageHandler) HandleSendMessage(c *fiber.Ctx) error {
	listingID := c.Params("id")

	var req struct {
		SenderEmail string `json:"sender_email"`
		Message     string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	message, err := h.service.SendMessage(c.UserContext(), listingID, req.SenderEmail, req.Message)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"fields":  vErr.Fields,
			})
		}
		if errors.Is(err, repositories.ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Listing not found",
			})
		}
		if errors.Is(err, services.ErrMessageTransport) {
			// The record exists; only the email did not go out.
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"message":    "Message saved but the email notification failed",
				"error":      err.Error(),
				"message_id": message.ID,
			})
		}
		log.Printf("Error sending message for listing %s: %v", listingID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not send message",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
