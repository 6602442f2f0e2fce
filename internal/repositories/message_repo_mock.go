package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Bateyjosue/marketplace/internal/models"
)

// MockMessageRepository is an in-memory implementation of MessageRepository.
type MockMessageRepository struct {
	messages map[string]models.Message
	mu       sync.RWMutex
}

// NewMockMessageRepository creates a new instance of MockMessageRepository.
func NewMockMessageRepository() *MockMessageRepository {
	return &MockMessageRepository{
		messages: make(map[string]models.Message),
	}
}

// GetByListingID returns all messages for a listing, oldest first.
func (r *MockMessageRepository) GetByListingID(listingID string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messageList := make([]models.Message, 0)
	for _, m := range r.messages {
		if m.ListingID == listingID {
			messageList = append(messageList, m)
		}
	}
	sort.Slice(messageList, func(i, j int) bool {
		return messageList[i].CreatedAt.Before(messageList[j].CreatedAt)
	})
	return messageList, nil
}

// Create adds a new message.
func (r *MockMessageRepository) Create(message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	r.messages[message.ID] = *message
	return nil
}
