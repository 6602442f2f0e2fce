package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Bateyjosue/marketplace/internal/models"
	"github.com/Bateyjosue/marketplace/internal/repositories"
	"github.com/Bateyjosue/marketplace/internal/services"
)

// ListingHandler handles HTTP requests for listings.
type ListingHandler struct {
	service *services.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(service *services.ListingService) *ListingHandler {
	return &ListingHandler{
		service: service,
	}
}

// RegisterRoutes registers the listing routes with the Fiber app.
func (h *ListingHandler) RegisterRoutes(router fiber.Router) {
	listingRoutes := router.Group("/listings")
	listingRoutes.Get("/", h.HandleGetListings)
	listingRoutes.Get("/:id", h.HandleGetListingByID)
	listingRoutes.Post("/", h.HandleCreateListing)

	router.Get("/taxonomy", h.HandleGetTaxonomy)
}

// HandleGetTaxonomy serves the fixed category and condition sets the
// browse sidebar and submission form render.
func (h *ListingHandler) HandleGetTaxonomy(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories": models.Categories,
		"conditions": models.Conditions,
	})
}

// HandleGetListings retrieves all listings, newest first.
func (h *ListingHandler) HandleGetListings(c *fiber.Ctx) error {
	listings, err := h.service.GetAllListings()
	if err != nil {
		log.Printf("Error getting all listings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve listings",
			"error":   err.Error(),
		})
	}
	return c.JSON(listings)
}

// HandleGetListingByID retrieves a single listing by its ID.
func (h *ListingHandler) HandleGetListingByID(c *fiber.Ctx) error {
	listingID := c.Params("id")
	listing, err := h.service.GetListingByID(listingID)
	if err != nil {
		log.Printf("Error getting listing by ID %s: %v", listingID, err)
		if errors.Is(err, repositories.ErrListingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Listing not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve listing",
			"error":   err.Error(),
		})
	}
	return c.JSON(listing)
}

// HandleCreateListing runs the submission workflow. A silent halt
// (duplicate listing or missing image) answers 204 with no body, which
// reads as success and creates nothing; validation failures answer 400
// with per-field messages.
func (h *ListingHandler) HandleCreateListing(c *fiber.Ctx) error {
	var submission models.ListingSubmission
	if err := c.BodyParser(&submission); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	created, err := h.service.SubmitListing(&submission)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"fields":  vErr.Fields,
			})
		}
		log.Printf("Error creating listing: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create listing",
			"error":   err.Error(),
		})
	}

	if created == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	// The Location header is the navigation target for the new record.
	c.Set("Location", "/api/v1/listings/"+created.ID)
	return c.Status(fiber.StatusCreated).JSON(created)
}
