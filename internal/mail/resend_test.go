package mail_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bateyjosue/marketplace/internal/mail"
)

func TestResendMailer_Send(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	mailer := mail.NewResendMailer("test-key", "Sandbox <onboarding@resend.dev>")
	mailer.Endpoint = server.URL

	err := mailer.Send(context.Background(), "seller@x.com", "New message about: Bike", "<p>hi</p>")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "Sandbox <onboarding@resend.dev>", gotBody["from"])
	assert.Equal(t, []interface{}{"seller@x.com"}, gotBody["to"])
	assert.Equal(t, "New message about: Bike", gotBody["subject"])
	assert.Equal(t, "<p>hi</p>", gotBody["html"])
}

func TestResendMailer_Send_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid to address"}`))
	}))
	defer server.Close()

	mailer := mail.NewResendMailer("test-key", "from@x.com")
	mailer.Endpoint = server.URL

	err := mailer.Send(context.Background(), "not-an-address", "subject", "<p>hi</p>")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status=422")
	assert.Contains(t, err.Error(), "invalid to address")
}

func TestResendMailer_Send_MissingAPIKey(t *testing.T) {
	mailer := mail.NewResendMailer("", "from@x.com")

	err := mailer.Send(context.Background(), "seller@x.com", "subject", "<p>hi</p>")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")
}
