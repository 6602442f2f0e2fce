package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Bateyjosue/marketplace/internal/mail"
)

// EmailHandler exposes the outbound-email relay endpoint.
type EmailHandler struct {
	mailer mail.Mailer
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(mailer mail.Mailer) *EmailHandler {
	return &EmailHandler{
		mailer: mailer,
	}
}

// RegisterRoutes registers the relay route with the Fiber app.
func (h *EmailHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/send-email", h.HandleSendEmail)
}

// HandleSendEmail relays {to, subject, html} to the email transport.
func (h *EmailHandler) HandleSendEmail(c *fiber.Ctx) error {
	var req struct {
		To      string `json:"to"`
		Subject string `json:"subject"`
		HTML    string `json:"html"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.To == "" || req.Subject == "" || req.HTML == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing fields",
		})
	}

	if err := h.mailer.Send(c.UserContext(), req.To, req.Subject, req.HTML); err != nil {
		log.Printf("Email relay error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Email failed",
		})
	}

	return c.JSON(fiber.Map{"ok": true})
}
