package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zulfifazhar/portfolio-backend/cache"
	"github.com/zulfifazhar/portfolio-backend/database"
	"github.com/zulfifazhar/portfolio-backend/errs"
	"github.com/zulfifazhar/portfolio-backend/models"
)

const competitionsCollection = "competitions"

type competitionHandler struct {
	responder       Responder
	logger          zerolog.Logger
	competitionRepo *database.CompetitionRepo
	listCache       cache.ListCache
}

func newCompetitionHandler(competitionRepo *database.CompetitionRepo, listCache cache.ListCache) competitionHandler {
	logger := log.With().Str("handlerName", "competitionHandler").Logger()

	return competitionHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		competitionRepo: competitionRepo,
		listCache:       listCache,
	}
}

func (h competitionHandler) listCompetitions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := parseListQuery(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		unfiltered := q == (database.ListQuery{})
		if unfiltered {
			if payload, ok := h.listCache.Get(r.Context(), competitionsCollection); ok {
				h.responder.WriteRaw(w, payload)
				return
			}
		}

		competitions, err := h.competitionRepo.FindAll(q)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find competitions", competitionsCollection, err))
			return
		}
		if competitions == nil {
			competitions = []*models.Competition{}
		}

		payload, err := h.responder.ListPayload(competitions, len(competitions))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if unfiltered {
			if err := h.listCache.Set(r.Context(), competitionsCollection, payload); err != nil {
				h.logger.Warn().Err(err).Msg("failed to cache competition list")
			}
		}
		h.responder.WriteRaw(w, payload)
	}
}

func (h competitionHandler) getCompetition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID := chi.URLParam(r, "competitionID")
		if competitionID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing competitionID"))
			return
		}

		competition, err := h.competitionRepo.FindByID(competitionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find competition", "competition", err))
			return
		}
		if competition == nil {
			h.responder.WriteError(w, errs.NewNotFound("competition"))
			return
		}

		h.responder.WriteData(w, competition)
	}
}

func (h competitionHandler) createCompetition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var competition models.Competition
		if err := decodeBody(r, "competition", &competition); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if competition.ID == "" {
			competition.ID = "comp-" + uuid.New().String()
		}

		if err := competition.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.competitionRepo.Add(&competition); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create competition", "competition", err))
			return
		}
		h.invalidateList(r)

		h.responder.WriteCreated(w, competition)
	}
}

func (h competitionHandler) updateCompetition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID := chi.URLParam(r, "competitionID")
		if competitionID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing competitionID"))
			return
		}

		existing, err := h.competitionRepo.FindByID(competitionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find competition", "competition", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("competition"))
			return
		}

		var competition models.Competition
		if err := decodeBody(r, "competition", &competition); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Ensure ID matches the route
		competition.ID = competitionID

		if err := competition.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.competitionRepo.Update(&competition); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update competition", "competition", err))
			return
		}
		h.invalidateList(r)

		updated, err := h.competitionRepo.FindByID(competitionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated competition", "competition", err))
			return
		}

		h.responder.WriteData(w, updated)
	}
}

func (h competitionHandler) deleteCompetition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID := chi.URLParam(r, "competitionID")
		if competitionID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing competitionID"))
			return
		}

		deleted, err := h.competitionRepo.Delete(competitionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete competition", "competition", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("competition"))
			return
		}
		h.invalidateList(r)

		h.responder.WriteMessage(w, "Competition deleted successfully")
	}
}

func (h competitionHandler) invalidateList(r *http.Request) {
	if err := h.listCache.Invalidate(r.Context(), competitionsCollection); err != nil {
		h.logger.Warn().Err(err).Msg("failed to invalidate competition list cache")
	}
}
