package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zulfifazhar/portfolio-backend/cache"
	"github.com/zulfifazhar/portfolio-backend/database"
	"github.com/zulfifazhar/portfolio-backend/errs"
	"github.com/zulfifazhar/portfolio-backend/models"
)

const projectsCollection = "projects"

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	listCache   cache.ListCache
}

func newProjectHandler(projectRepo *database.ProjectRepo, listCache cache.ListCache) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		listCache:   listCache,
	}
}

// parseListQuery reads the optional category/status/limit filters. "All" is
// passed through; the repository treats it the same as no filter.
func parseListQuery(r *http.Request) (database.ListQuery, error) {
	q := database.ListQuery{
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return q, errs.NewInvalidFieldError("limit", "must be a non-negative integer")
		}
		q.Limit = limit
	}
	return q, nil
}

// listProjects returns projects, optionally filtered by category/status and
// capped by limit. The unfiltered response is served from the list cache.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseListQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		unfiltered := q == (database.ListQuery{})
		if unfiltered {
			if payload, ok := h.listCache.Get(r.Context(), projectsCollection); ok {
				h.responder.WriteRaw(w, payload)
				return
			}
		}

		projects, err := h.projectRepo.FindAll(q)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", projectsCollection, err))
			return
		}
		if projects == nil {
			projects = []*models.Project{}
		}

		payload, err := h.responder.ListPayload(projects, len(projects))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if unfiltered {
			if err := h.listCache.Set(r.Context(), projectsCollection, payload); err != nil {
				h.logger.Warn().Err(err).Msg("failed to cache project list")
			}
		}
		h.responder.WriteRaw(w, payload)
	}
}

// getProject retrieves a specific project by ID.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteData(w, project)
	}
}

// getProjectBySlug retrieves a project by its URL slug (detail pages).
func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteData(w, project)
	}
}

// createProject creates a new project. Empty ids and slugs are filled in
// server-side; clients may synthesize their own ids.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := decodeBody(r, "project", &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if project.ID == "" {
			project.ID = "proj-" + uuid.New().String()
		}
		if project.Slug == "" {
			project.Slug = models.Slugify(project.Title)
		}

		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindBySlug(project.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewAlreadyExists("project slug"))
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}
		h.invalidateList(r)

		h.responder.WriteCreated(w, project)
	}
}

// updateProject replaces an existing project.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		var project models.Project
		if err := decodeBody(r, "project", &project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Ensure ID matches the route
		project.ID = projectID
		if project.Slug == "" {
			project.Slug = models.Slugify(project.Title)
		}

		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if project.Slug != existing.Slug {
			other, err := h.projectRepo.FindBySlug(project.Slug)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
				return
			}
			if other != nil && other.ID != projectID {
				h.responder.WriteError(w, errs.NewAlreadyExists("project slug"))
				return
			}
		}

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}
		h.invalidateList(r)

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteData(w, updated)
	}
}

// deleteProject deletes a project by ID. Deleting an id that does not exist
// is a 404, including the second delete of the same id.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		deleted, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}
		h.invalidateList(r)

		if actor, ok := identityEmailFromCtx(r.Context()); ok {
			h.logger.Info().Str("projectID", projectID).Str("actor", actor).Msg("project deleted")
		}

		h.responder.WriteMessage(w, "Project deleted successfully")
	}
}

func (h projectHandler) invalidateList(r *http.Request) {
	if err := h.listCache.Invalidate(r.Context(), projectsCollection); err != nil {
		h.logger.Warn().Err(err).Msg("failed to invalidate project list cache")
	}
}
