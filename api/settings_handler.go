package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/errs"
	"github.com/meridianstudio/site-backend/models"
)

type settingsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	settingRepo *database.SiteSettingRepo
}

func newSettingsHandler(settingRepo *database.SiteSettingRepo) settingsHandler {
	logger := log.With().Str("handlerName", "settingsHandler").Logger()

	return settingsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		settingRepo: settingRepo,
	}
}

// getSettings flattens the settings table into a single {key: value} map.
func (h settingsHandler) getSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := h.settingRepo.All()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find settings", "settings", err))
			return
		}

		h.responder.WriteJSON(w, map[string]map[string]string{"settings": settings})
	}
}

// updateSetting upserts a single key.
func (h settingsHandler) updateSetting() http.HandlerFunc {
	type payload struct {
		Value string `json:"value"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing key"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var body payload
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		setting, err := h.settingRepo.Upsert(key, body.Value)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update setting", "setting", err))
			return
		}

		h.responder.WriteJSON(w, map[string]*models.SiteSetting{"setting": setting})
	}
}

// updateSettings upserts every provided key in a single transaction, so a
// failing write leaves no key applied.
func (h settingsHandler) updateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var settings map[string]string
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&settings); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if len(settings) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("no settings provided"))
			return
		}

		if err := h.settingRepo.UpsertMany(settings); err != nil {
			h.responder.WriteError(w, errs.NewTransactionFailedError("update settings", err))
			return
		}

		updated, err := h.settingRepo.All()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find settings", "settings", err))
			return
		}

		h.responder.WriteJSON(w, map[string]map[string]string{"settings": updated})
	}
}
