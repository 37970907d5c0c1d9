package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/zulfifazhar/portfolio-backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	competitionHandler competitionHandler
	blogPostHandler    blogPostHandler
	socialHandler      socialHandler
	homeHandler        homeHandler
	dashboardHandler   dashboardHandler
	authHandler        authHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Internal Server Error"`
	Field   string `json:"field,omitempty" example:"title"`
}

// decodeBody reads and decodes a JSON request body into dst.
func decodeBody(r *http.Request, payloadType string, dst any) error {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return errs.NewBadRequestError("failed to read request body")
	}
	if err := json.Unmarshal(bodyBytes, dst); err != nil {
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	return nil
}
