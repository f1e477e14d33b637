package services

import (
	"fmt"
	"html"

	"github.com/meridianstudio/site-backend/config"
	"github.com/meridianstudio/site-backend/models"
)

// NotifyNewContact emails the studio about a new inquiry. The recipient is
// the site's configured contact_email setting, falling back to ALERT_EMAIL.
// Best-effort: callers log the returned error but never fail the submission
// over it, and nothing is sent when no recipient or API key is configured.
func NotifyNewContact(cfg map[string]string, settings map[string]string, contact *models.Contact) error {
	recipient := settings["contact_email"]
	if recipient == "" {
		recipient = config.GetString(cfg, "ALERT_EMAIL", "")
	}
	if recipient == "" || config.GetString(cfg, "RESEND_API_KEY", "") == "" {
		return nil
	}

	subject := fmt.Sprintf("New inquiry from %s", contact.Name)
	body := fmt.Sprintf(
		"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Phone:</strong> %s</p>"+
			"<p><strong>Project type:</strong> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		html.EscapeString(contact.Phone),
		html.EscapeString(contact.ProjectType),
		html.EscapeString(contact.Message),
	)

	return SendEmail(cfg, subject, body, []string{recipient})
}

// SendAlert emails an unexpected-error report to ALERT_EMAIL. No-op when
// alerting is not configured.
func SendAlert(cfg map[string]string, errMsg string) error {
	recipient := config.GetString(cfg, "ALERT_EMAIL", "")
	if recipient == "" || config.GetString(cfg, "RESEND_API_KEY", "") == "" {
		return nil
	}

	body := fmt.Sprintf("<p>The site backend reported an unexpected error:</p><pre>%s</pre>",
		html.EscapeString(errMsg))
	return SendEmail(cfg, "Site backend error", body, []string{recipient})
}
