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

type teamMemberHandler struct {
	responder      Responder
	logger         zerolog.Logger
	teamMemberRepo *database.TeamMemberRepo
}

func newTeamMemberHandler(teamMemberRepo *database.TeamMemberRepo) teamMemberHandler {
	logger := log.With().Str("handlerName", "teamMemberHandler").Logger()

	return teamMemberHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		teamMemberRepo: teamMemberRepo,
	}
}

// getAllTeamMembers retrieves team members in display order (order_index ascending).
func (h teamMemberHandler) getAllTeamMembers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeUnpublished := r.URL.Query().Get("all") == "true" && isAdminRequest(r.Context())

		members, err := h.teamMemberRepo.List(includeUnpublished)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team members", "team members", err))
			return
		}

		if members == nil {
			members = []*models.TeamMember{}
		}

		h.responder.WriteJSON(w, map[string][]*models.TeamMember{"team": members})
	}
}

func (h teamMemberHandler) decodeTeamMember(w http.ResponseWriter, r *http.Request) (*models.TeamMember, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return nil, false
	}

	var member models.TeamMember
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&member); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode team member request body")
		h.responder.WriteError(w, errs.NewInvalidJSONError(err))
		return nil, false
	}

	return &member, true
}

func (h teamMemberHandler) validateTeamMember(w http.ResponseWriter, member *models.TeamMember) bool {
	if member.Name == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
		return false
	}
	if member.Position == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("position"))
		return false
	}
	return true
}

// createTeamMember creates a new team member.
func (h teamMemberHandler) createTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		member, ok := h.decodeTeamMember(w, r)
		if !ok {
			return
		}
		if !h.validateTeamMember(w, member) {
			return
		}

		if err := h.teamMemberRepo.Add(member); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create team member", "team member", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]*models.TeamMember{"member": member})
	}
}

// updateTeamMember updates an existing team member by ID.
func (h teamMemberHandler) updateTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid memberID"))
			return
		}

		existing, err := h.teamMemberRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team member", "team member", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team member not found"))
			return
		}

		member, ok := h.decodeTeamMember(w, r)
		if !ok {
			return
		}
		if !h.validateTeamMember(w, member) {
			return
		}

		member.ID = memberID
		member.CreatedAt = existing.CreatedAt

		if err := h.teamMemberRepo.Update(member); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update team member", "team member", err))
			return
		}

		h.responder.WriteJSON(w, map[string]*models.TeamMember{"member": member})
	}
}

// deleteTeamMember deletes a team member by ID.
func (h teamMemberHandler) deleteTeamMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		memberID, err := uuid.Parse(chi.URLParam(r, "memberID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid memberID"))
			return
		}

		existing, err := h.teamMemberRepo.FindByID(memberID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find team member", "team member", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("team member not found"))
			return
		}

		if err := h.teamMemberRepo.Delete(memberID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete team member", "team member", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
