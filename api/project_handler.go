package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/database"
	"github.com/meridianstudio/site-backend/errs"
	"github.com/meridianstudio/site-backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total,omitempty"`
}

// getAllProjects retrieves projects, optionally filtered
// @Summary Get projects
// @Description Retrieves published projects; admins may request unpublished rows and filter by featured/type/location/year
// @Tags Projects
// @Accept json
// @Produce json
// @Param all query bool false "Include unpublished (requires authentication)"
// @Param featured query bool false "Featured only"
// @Param type query string false "Service type membership"
// @Param location query string false "Location substring"
// @Param year query int false "Exact year"
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeUnpublished := r.URL.Query().Get("all") == "true" && isAdminRequest(r.Context())

		filter := database.ProjectFilter{
			Featured: r.URL.Query().Get("featured") == "true",
			Service:  r.URL.Query().Get("type"),
			Location: r.URL.Query().Get("location"),
		}
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("year", "must be an integer"))
				return
			}
			filter.Year = year
		}

		projects, err := h.projectRepo.ListFiltered(includeUnpublished, filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProjectBySlug retrieves a specific project by slug
// @Summary Get project
// @Description Retrieves a project by its slug; unpublished projects are not found for anonymous callers
// @Tags Projects
// @Accept json
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} map[string]models.Project "Project details"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching project"
// @Router /projects/{slug} [get]
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug, isAdminRequest(r.Context()))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]*models.Project{"project": project})
	}
}

func (h projectHandler) decodeProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return nil, false
	}

	var project models.Project
	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
		h.responder.WriteError(w, errs.NewInvalidJSONError(err))
		return nil, false
	}

	return &project, true
}

// validateProject is the server-side validation stage; client-side checks
// are not trusted.
func (h projectHandler) validateProject(w http.ResponseWriter, project *models.Project) bool {
	if project.Title == "" {
		h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
		return false
	}
	if project.Year != 0 && (project.Year < 1800 || project.Year > 2100) {
		h.responder.WriteError(w, errs.NewInvalidFieldError("year", "must be between 1800 and 2100"))
		return false
	}
	return true
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project; slug is derived from the title when blank
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} map[string]models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.decodeProject(w, r)
		if !ok {
			return
		}
		if !h.validateProject(w, project) {
			return
		}

		if project.Slug == "" {
			project.Slug = models.Slugify(project.Title)
		}

		if err := h.projectRepo.Add(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]*models.Project{"project": project})
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Updates an existing project by ID
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} map[string]models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /projects/{id} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Path position shared with the slug detail route; here it holds the ID.
		projectIDStr := chi.URLParam(r, "slug")
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		project, ok := h.decodeProject(w, r)
		if !ok {
			return
		}
		if !h.validateProject(w, project) {
			return
		}

		// Ensure ID and creation time survive the overwrite
		project.ID = projectID
		project.CreatedAt = existing.CreatedAt
		if project.Slug == "" {
			project.Slug = existing.Slug
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]*models.Project{"project": project})
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project from the database by ID
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]bool "Success flag"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /projects/{id} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectIDStr := chi.URLParam(r, "slug")
		projectID, err := uuid.Parse(projectIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
