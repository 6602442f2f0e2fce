package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Bateyjosue/marketplace/internal/models"
	"github.com/Bateyjosue/marketplace/internal/repositories"
	"github.com/Bateyjosue/marketplace/internal/services"
)

// MockMessageRepository is a mock implementation of repositories.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) GetByListingID(listingID string) ([]models.Message, error) {
	args := m.Called(listingID)
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) Create(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

// MockMailer is a mock implementation of mail.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to string, subject string, html string) error {
	args := m.Called(ctx, to, subject, html)
	return args.Error(0)
}

func bikeListing() *models.Listing {
	return &models.Listing{
		ID:    "listing-1",
		Title: "Bike",
		Email: "seller@x.com",
	}
}

func newMessageService(messageRepo *MockMessageRepository, listingRepo *MockListingRepository, mailer *MockMailer) *services.MessageService {
	return services.NewMessageService(messageRepo, listingRepo, mailer, "http://localhost:3000/")
}

func TestMessageService_SendMessage_EmptySenderShortCircuits(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	listingRepo := new(MockListingRepository)
	mailer := new(MockMailer)
	service := newMessageService(messageRepo, listingRepo, mailer)

	message, err := service.SendMessage(context.Background(), "listing-1", "  ", "Is this available?")
	assert.Nil(t, message)

	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "sender_email")

	// Neither persistence nor transport may be reached.
	messageRepo.AssertExpectations(t)
	listingRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestMessageService_SendMessage_EmptyBodyShortCircuits(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	listingRepo := new(MockListingRepository)
	mailer := new(MockMailer)
	service := newMessageService(messageRepo, listingRepo, mailer)

	message, err := service.SendMessage(context.Background(), "listing-1", "buyer@y.com", "")
	assert.Nil(t, message)

	var vErr *services.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "message")
	messageRepo.AssertExpectations(t)
}

func TestMessageService_SendMessage_ListingNotFound(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	listingRepo := new(MockListingRepository)
	mailer := new(MockMailer)
	service := newMessageService(messageRepo, listingRepo, mailer)

	listingRepo.On("GetByID", "missing").Return(nil, fmt.Errorf("listing missing: %w", repositories.ErrListingNotFound)).Once()

	message, err := service.SendMessage(context.Background(), "missing", "buyer@y.com", "Hello")
	assert.Nil(t, message)
	assert.ErrorIs(t, err, repositories.ErrListingNotFound)
	listingRepo.AssertExpectations(t)
	messageRepo.AssertExpectations(t)
}

func TestMessageService_SendMessage_Success(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	listingRepo := new(MockListingRepository)
	mailer := new(MockMailer)
	service := newMessageService(messageRepo, listingRepo, mailer)

	listingRepo.On("GetByID", "listing-1").Return(bikeListing(), nil).Once()
	messageRepo.On("Create", mock.AnythingOfType("*models.Message")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Message).ID = "msg-1"
	}).Return(nil).Once()
	mailer.On("Send", mock.Anything, "seller@x.com", "New message about: Bike", mock.AnythingOfType("string")).Return(nil).Once()

	message, err := service.SendMessage(context.Background(), "listing-1", "buyer@y.com", "Line one\nLine two")
	assert.NoError(t, err)
	assert.NotNil(t, message)
	assert.Equal(t, "msg-1", message.ID)
	assert.Equal(t, "listing-1", message.ListingID)
	assert.Equal(t, "buyer@y.com", message.SenderEmail)

	html := mailer.Calls[0].Arguments.String(3)
	assert.Contains(t, html, "Line one<br/>Line two")
	assert.Contains(t, html, "http://localhost:3000/listing/listing-1")
	assert.Contains(t, html, `"Bike"`)

	messageRepo.AssertExpectations(t)
	listingRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestMessageService_SendMessage_TransportFailureKeepsRecord(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	listingRepo := new(MockListingRepository)
	mailer := new(MockMailer)
	service := newMessageService(messageRepo, listingRepo, mailer)

	listingRepo.On("GetByID", "listing-1").Return(bikeListing(), nil).Once()
	messageRepo.On("Create", mock.AnythingOfType("*models.Message")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Message).ID = "msg-1"
	}).Return(nil).Once()
	mailer.On("Send", mock.Anything, "seller@x.com", mock.Anything, mock.Anything).Return(fmt.Errorf("server error")).Once()

	message, err := service.SendMessage(context.Background(), "listing-1", "buyer@y.com", "Hello")
	assert.ErrorIs(t, err, services.ErrMessageTransport)
	// The persisted record is reported back despite the failure.
	assert.NotNil(t, message)
	assert.Equal(t, "msg-1", message.ID)

	messageRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestMessageService_SendMessage_RecordSurvivesInRepo(t *testing.T) {
	// Uses the in-memory repositories so the persisted record can be
	// read back after the transport rejects the notification.
	messageRepo := repositories.NewMockMessageRepository()
	listingRepo := repositories.NewMockListingRepository()
	mailer := new(MockMailer)
	service := services.NewMessageService(messageRepo, listingRepo, mailer, "http://localhost:3000")

	assert.NoError(t, listingRepo.Create(bikeListing()))
	mailer.On("Send", mock.Anything, "seller@x.com", mock.Anything, mock.Anything).Return(fmt.Errorf("server error")).Once()

	message, err := service.SendMessage(context.Background(), "listing-1", "buyer@y.com", "Hello")
	assert.ErrorIs(t, err, services.ErrMessageTransport)
	assert.NotNil(t, message)

	messages, err := messageRepo.GetByListingID("listing-1")
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, message.ID, messages[0].ID)
	assert.Equal(t, "buyer@y.com", messages[0].SenderEmail)
	mailer.AssertExpectations(t)
}

func TestMessageService_GetMessages(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	listingRepo := new(MockListingRepository)
	mailer := new(MockMailer)
	service := newMessageService(messageRepo, listingRepo, mailer)

	expected := []models.Message{
		{ID: "m1", ListingID: "listing-1", Message: "first"},
		{ID: "m2", ListingID: "listing-1", Message: "second"},
	}
	messageRepo.On("GetByListingID", "listing-1").Return(expected, nil).Once()

	messages, err := service.GetMessages("listing-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, messages)
	messageRepo.AssertExpectations(t)
}
