package manage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Gateway is the persistence boundary of the manager: plain HTTP calls
// against the portfolio API's CRUD endpoints. It performs no retries and
// draws no distinction between transient and permanent failures.
type Gateway struct {
	baseURL string
	hc      *http.Client
	token   string
	logger  zerolog.Logger
}

type GatewayOption func(*Gateway)

func WithHTTPClient(hc *http.Client) GatewayOption {
	return func(g *Gateway) {
		g.hc = hc
	}
}

// WithToken attaches the owner's bearer token to every request.
func WithToken(token string) GatewayOption {
	return func(g *Gateway) {
		g.token = token
	}
}

func NewGateway(baseURL string, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		baseURL: baseURL,
		hc:      http.DefaultClient,
		logger:  log.With().Str("handlerName", "gateway").Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RequestError is a non-success response from the API.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// List fetches the full collection and returns the raw data payload.
func (g *Gateway) List(ctx context.Context, endpoint string) (json.RawMessage, error) {
	env, err := g.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Create POSTs a full record to the collection endpoint.
func (g *Gateway) Create(ctx context.Context, endpoint string, record any) error {
	_, err := g.do(ctx, http.MethodPost, endpoint, record)
	return err
}

// Update PUTs a full record against its id.
func (g *Gateway) Update(ctx context.Context, endpoint, id string, record any) error {
	_, err := g.do(ctx, http.MethodPut, endpoint+"/"+id, record)
	return err
}

// Delete issues a DELETE against the record's id.
func (g *Gateway) Delete(ctx context.Context, endpoint, id string) error {
	_, err := g.do(ctx, http.MethodDelete, endpoint+"/"+id, nil)
	return err
}

func (g *Gateway) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			return nil, fmt.Errorf("decode response body: %w", err)
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		message := env.Error
		if message == "" {
			message = resp.Status
		}
		g.logger.Error().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg(message)
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	return &env, nil
}
