package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/errs"
	"github.com/meridianstudio/site-backend/models"
	"github.com/meridianstudio/site-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	settingRepo *database.SiteSettingRepo
	cfg         map[string]string
}

func newContactHandler(contactRepo *database.ContactRepo, settingRepo *database.SiteSettingRepo, cfg map[string]string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		settingRepo: settingRepo,
		cfg:         cfg,
	}
}

// getAllContacts retrieves contact inquiries, newest first. Admin only.
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.List()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contacts", "contacts", err))
			return
		}

		if contacts == nil {
			contacts = []*models.Contact{}
		}

		h.responder.WriteJSON(w, map[string][]*models.Contact{"contacts": contacts})
	}
}

// createContact accepts a public contact-form submission and stores it.
// A notification email to the studio is best-effort: failures are logged
// and never fail the submission.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var contact models.Contact
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&contact); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if contact.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if contact.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if !strings.Contains(contact.Email, "@") {
			h.responder.WriteError(w, errs.NewInvalidFieldError("email", "must be an email address"))
			return
		}
		if contact.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact", "contact", err))
			return
		}

		settings, err := h.settingRepo.All()
		if err != nil {
			h.logger.Warn().Err(err).Msg("Failed to load settings for contact notification")
			settings = map[string]string{}
		}
		if err := services.NotifyNewContact(h.cfg, settings, &contact); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to send contact notification email")
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]*models.Contact{"contact": &contact})
	}
}
