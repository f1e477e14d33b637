package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/errs"
	"github.com/meridianstudio/site-backend/models"
)

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()

	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
	}
}

// getAllTestimonials retrieves testimonials newest-first.
func (h testimonialHandler) getAllTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeUnpublished := r.URL.Query().Get("all") == "true" && isAdminRequest(r.Context())
		featuredOnly := r.URL.Query().Get("featured") == "true"

		testimonials, err := h.testimonialRepo.List(includeUnpublished, featuredOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find testimonials", "testimonials", err))
			return
		}

		if testimonials == nil {
			testimonials = []*models.Testimonial{}
		}

		h.responder.WriteJSON(w, map[string][]*models.Testimonial{"testimonials": testimonials})
	}
}

func (h testimonialHandler) decodeTestimonial(w http.ResponseWriter, r *http.Request) (*models.Testimonial, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return nil, false
	}

	var testimonial models.Testimonial
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&testimonial); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode testimonial request body")
		h.responder.WriteError(w, errs.NewInvalidJSONError(err))
		return nil, false
	}

	return &testimonial, true
}

func (h testimonialHandler) validateTestimonial(w http.ResponseWriter, testimonial *models.Testimonial) bool {
	if testimonial.ClientName == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("client_name"))
		return false
	}
	if testimonial.Content == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
		return false
	}
	if testimonial.Rating < 1 || testimonial.Rating > 5 {
		h.responder.WriteError(w, errs.NewInvalidFieldError("rating", "must be between 1 and 5"))
		return false
	}
	return true
}

// createTestimonial creates a new testimonial.
func (h testimonialHandler) createTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonial, ok := h.decodeTestimonial(w, r)
		if !ok {
			return
		}
		if !h.validateTestimonial(w, testimonial) {
			return
		}

		if err := h.testimonialRepo.Add(testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create testimonial", "testimonial", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]*models.Testimonial{"testimonial": testimonial})
	}
}

// updateTestimonial updates an existing testimonial by ID.
func (h testimonialHandler) updateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid testimonialID"))
			return
		}

		existing, err := h.testimonialRepo.FindByID(testimonialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find testimonial", "testimonial", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("testimonial not found"))
			return
		}

		testimonial, ok := h.decodeTestimonial(w, r)
		if !ok {
			return
		}
		if !h.validateTestimonial(w, testimonial) {
			return
		}

		testimonial.ID = testimonialID
		testimonial.CreatedAt = existing.CreatedAt

		if err := h.testimonialRepo.Update(testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update testimonial", "testimonial", err))
			return
		}

		h.responder.WriteJSON(w, map[string]*models.Testimonial{"testimonial": testimonial})
	}
}

// deleteTestimonial deletes a testimonial by ID.
func (h testimonialHandler) deleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := uuid.Parse(chi.URLParam(r, "testimonialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid testimonialID"))
			return
		}

		existing, err := h.testimonialRepo.FindByID(testimonialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find testimonial", "testimonial", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("testimonial not found"))
			return
		}

		if err := h.testimonialRepo.Delete(testimonialID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete testimonial", "testimonial", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
