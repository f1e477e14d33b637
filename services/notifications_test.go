package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianstudio/site-backend/models"
)

func TestNotifyNewContactUnconfigured(t *testing.T) {
	contact := &models.Contact{Name: "Client", Email: "client@example.com", Message: "Hello"}

	// No recipient anywhere: silently skipped.
	assert.NoError(t, NotifyNewContact(nil, map[string]string{}, contact))

	// Recipient present but no API key: still skipped.
	err := NotifyNewContact(nil, map[string]string{"contact_email": "studio@example.com"}, contact)
	assert.NoError(t, err)
}

func TestSendAlertUnconfigured(t *testing.T) {
	assert.NoError(t, SendAlert(nil, "something broke"))
	assert.NoError(t, SendAlert(map[string]string{"ALERT_EMAIL": "ops@example.com"}, "something broke"))
}

func TestSendEmailRequiresConfig(t *testing.T) {
	err := SendEmail(nil, "subject", "body", nil)
	assert.Error(t, err)

	err = SendEmail(nil, "subject", "body", []string{"a@example.com"})
	assert.Error(t, err)

	err = SendEmail(map[string]string{"RESEND_API_KEY": "key"}, "subject", "body", []string{"a@example.com"})
	assert.Error(t, err)
}
