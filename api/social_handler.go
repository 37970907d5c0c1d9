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

const socialsCollection = "socials"

type socialHandler struct {
	responder  Responder
	logger     zerolog.Logger
	socialRepo *database.SocialRepo
	listCache  cache.ListCache
}

func newSocialHandler(socialRepo *database.SocialRepo, listCache cache.ListCache) socialHandler {
	logger := log.With().Str("handlerName", "socialHandler").Logger()

	return socialHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		socialRepo: socialRepo,
		listCache:  listCache,
	}
}

func (h socialHandler) listSocials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload, ok := h.listCache.Get(r.Context(), socialsCollection); ok {
			h.responder.WriteRaw(w, payload)
			return
		}

		socials, err := h.socialRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find socials", socialsCollection, err))
			return
		}
		if socials == nil {
			socials = []*models.Social{}
		}

		payload, err := h.responder.ListPayload(socials, len(socials))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.listCache.Set(r.Context(), socialsCollection, payload); err != nil {
			h.logger.Warn().Err(err).Msg("failed to cache social list")
		}
		h.responder.WriteRaw(w, payload)
	}
}

func (h socialHandler) getSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialID := chi.URLParam(r, "socialID")
		if socialID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing socialID"))
			return
		}

		social, err := h.socialRepo.FindByID(socialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find social", "social", err))
			return
		}
		if social == nil {
			h.responder.WriteError(w, errs.NewNotFound("social"))
			return
		}

		h.responder.WriteData(w, social)
	}
}

func (h socialHandler) createSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var social models.Social
		if err := decodeBody(r, "social", &social); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if social.ID == "" {
			social.ID = "social-" + uuid.New().String()
		}

		if err := social.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.socialRepo.Add(&social); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create social", "social", err))
			return
		}
		h.invalidateList(r)

		h.responder.WriteCreated(w, social)
	}
}

func (h socialHandler) updateSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialID := chi.URLParam(r, "socialID")
		if socialID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing socialID"))
			return
		}

		existing, err := h.socialRepo.FindByID(socialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find social", "social", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("social"))
			return
		}

		var social models.Social
		if err := decodeBody(r, "social", &social); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Ensure ID matches the route
		social.ID = socialID

		if err := social.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.socialRepo.Update(&social); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update social", "social", err))
			return
		}
		h.invalidateList(r)

		h.responder.WriteData(w, social)
	}
}

func (h socialHandler) deleteSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialID := chi.URLParam(r, "socialID")
		if socialID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing socialID"))
			return
		}

		deleted, err := h.socialRepo.Delete(socialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete social", "social", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("social"))
			return
		}
		h.invalidateList(r)

		h.responder.WriteMessage(w, "Social link deleted successfully")
	}
}

func (h socialHandler) invalidateList(r *http.Request) {
	if err := h.listCache.Invalidate(r.Context(), socialsCollection); err != nil {
		h.logger.Warn().Err(err).Msg("failed to invalidate social list cache")
	}
}
