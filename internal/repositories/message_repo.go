package repositories

import (
	"github.com/Bateyjosue/marketplace/internal/models"
)

// MessageRepository defines the interface for message data access.
// Messages are written once per send action; reads return them oldest
// first.
type MessageRepository interface {
	GetByListingID(listingID string) ([]models.Message, error)
	Create(message *models.Message) error
}
