package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zulfifazhar/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	gate      ownerGate
}

func newAuthHandler(gate ownerGate) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		gate:      gate,
	}
}

// Identity is the boundary view of the auth gate: who is signed in (if
// anyone) and whether that identity is the site owner.
type Identity struct {
	Email      string `json:"email,omitempty"`
	Authorized bool   `json:"authorized"`
}

// me reports the caller's identity. No token means an anonymous identity, not
// an error; a present-but-invalid token is a 401.
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := h.gate.identityFromRequest(r)
		if err != nil {
			if errs.IsMissingToken(err) {
				h.responder.WriteData(w, Identity{Authorized: false})
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteData(w, Identity{
			Email:      email,
			Authorized: h.gate.isOwner(email),
		})
	}
}
