package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// ResendMailer sends transactional email through the Resend HTTP API.
type ResendMailer struct {
	APIKey     string
	From       string
	Endpoint   string
	HTTPClient *http.Client
}

// NewResendMailer creates a new ResendMailer.
func NewResendMailer(apiKey string, from string) *ResendMailer {
	return &ResendMailer{
		APIKey:   strings.TrimSpace(apiKey),
		From:     strings.TrimSpace(from),
		Endpoint: defaultResendEndpoint,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts the envelope to the Resend API. Any non-2xx response is an
// error carrying the response body for context.
func (m *ResendMailer) Send(ctx context.Context, to string, subject string, html string) error {
	if m.APIKey == "" {
		return fmt.Errorf("resend mailer not configured: missing RESEND_API_KEY")
	}

	b, err := json.Marshal(resendSendRequest{
		From:    m.From,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := m.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if body, readErr := io.ReadAll(resp.Body); readErr == nil && len(body) > 0 {
			return fmt.Errorf("resend send failed: status=%d body=%s", resp.StatusCode, body)
		}
		return fmt.Errorf("resend send failed: status=%d", resp.StatusCode)
	}
	return nil
}
