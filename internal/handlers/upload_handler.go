package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Bateyjosue/marketplace/internal/services"
)

// UploadHandler handles image uploads.
type UploadHandler struct {
	service *services.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(service *services.UploadService) *UploadHandler {
	return &UploadHandler{
		service: service,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/uploads", h.HandleUpload)
}

// HandleUpload ingests one multipart file and returns the public URL it
// is served from. Any storage failure surfaces as a generic upload
// error; without the returned URL the submission workflow cannot
// proceed to listing creation.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A single file field is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded file %s: %v", fileHeader.Filename, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not read uploaded file",
		})
	}
	defer file.Close()

	url, err := h.service.Upload(c.UserContext(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Upload failed",
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
