package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bateyjosue/marketplace/internal/models"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		db: db,
	}
}

// GetByListingID retrieves all messages for a listing, oldest first.
func (r *GORMMessageRepository) GetByListingID(listingID string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("listing_id = ?", listingID).Order("created_at asc").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get messages for listing %s: %w", listingID, err)
	}
	return messages, nil
}

// Create inserts one message row keyed by listing ID.
func (r *GORMMessageRepository) Create(message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}
