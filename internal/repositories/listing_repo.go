package repositories

import (
	"errors"

	"github.com/Bateyjosue/marketplace/internal/models"
)

// ErrListingNotFound is returned when a listing lookup matches no row.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the interface for listing data access.
// Listings are created once and never updated or deleted by this
// service; reads return them newest first.
type ListingRepository interface {
	GetAll() ([]models.Listing, error)
	GetByID(id string) (*models.Listing, error)
	Create(listing *models.Listing) error
}
