package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zulfifazhar/portfolio-backend/database"
	"github.com/zulfifazhar/portfolio-backend/models"
)

type homeHandler struct {
	responder Responder
	logger    zerolog.Logger
	homeRepo  *database.HomeRepo
}

func newHomeHandler(homeRepo *database.HomeRepo) homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()

	return homeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		homeRepo:  homeRepo,
	}
}

// getHome returns the singleton home document, materializing the default one
// on first access.
func (h homeHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		home, err := h.homeRepo.Get()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find home content", "home", err))
			return
		}

		h.responder.WriteData(w, home)
	}
}

// updateHome upserts the singleton home document.
func (h homeHandler) updateHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var home models.HomeContent
		if err := decodeBody(r, "home content", &home); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.homeRepo.Save(&home); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update home content", "home", err))
			return
		}

		h.responder.WriteData(w, home)
	}
}
