package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/Bateyjosue/marketplace/internal/mail"
	"github.com/Bateyjosue/marketplace/internal/models"
	"github.com/Bateyjosue/marketplace/internal/repositories"
)

// ErrMessageTransport is returned when the message record was persisted
// but the email transport rejected the notification. The record is not
// rolled back.
var ErrMessageTransport = errors.New("email transport failed")

// MessageService handles buyer inquiries: it persists the message
// record and relays an email notification to the seller.
type MessageService struct {
	messageRepo repositories.MessageRepository
	listingRepo repositories.ListingRepository
	mailer      mail.Mailer
	baseURL     string
}

// NewMessageService creates a new MessageService. baseURL is the public
// site address used for the listing link embedded in notifications.
func NewMessageService(messageRepo repositories.MessageRepository, listingRepo repositories.ListingRepository, mailer mail.Mailer, baseURL string) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		listingRepo: listingRepo,
		mailer:      mailer,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// GetMessages retrieves all messages for a listing, oldest first.
func (s *MessageService) GetMessages(listingID string) ([]models.Message, error) {
	return s.messageRepo.GetByListingID(listingID)
}

// SendMessage looks up the listing, persists the message record, then
// hands the notification envelope to the mail transport.
//
// The two writes are independent round trips: a transport failure after
// the record is written returns the persisted record alongside
// ErrMessageTransport, and nothing is rolled back or retried.
func (s *MessageService) SendMessage(ctx context.Context, listingID string, senderEmail string, body string) (*models.Message, error) {
	// Only non-emptiness is checked here; the syntactic email rule
	// applies to sellers at submission time, not to inquirers.
	fields := make(map[string]string)
	if strings.TrimSpace(senderEmail) == "" {
		fields["sender_email"] = "sender_email is required"
	}
	if strings.TrimSpace(body) == "" {
		fields["message"] = "message is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	listing, err := s.listingRepo.GetByID(listingID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ListingID:   listing.ID,
		SenderEmail: senderEmail,
		Message:     body,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to create message in repository: %w", err)
	}

	subject := fmt.Sprintf("New message about: %s", listing.Title)
	if err := s.mailer.Send(ctx, listing.Email, subject, s.composeNotification(listing, body)); err != nil {
		log.Printf("Error relaying notification for listing %s: %v", listing.ID, err)
		return message, fmt.Errorf("%w: %v", ErrMessageTransport, err)
	}
	return message, nil
}

// composeNotification builds the HTML email body: the inquiry text with
// line breaks converted to break tags, and a link back to the listing.
func (s *MessageService) composeNotification(listing *models.Listing, body string) string {
	text := strings.ReplaceAll(html.EscapeString(body), "\n", "<br/>")
	link := fmt.Sprintf("%s/listing/%s", s.baseURL, listing.ID)
	return fmt.Sprintf(
		`<p>New message about your listing "%s":</p><p>%s</p><p><a href="%s">View listing</a></p>`,
		html.EscapeString(listing.Title), text, link,
	)
}
