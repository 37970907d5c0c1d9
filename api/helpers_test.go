package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/zulfifazhar/portfolio-backend/cache"
	"github.com/zulfifazhar/portfolio-backend/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	testSecret     = "test-signing-secret"
	testOwnerEmail = "owner@example.com"
)

// newTestRouter builds the full router against an isolated in-memory SQLite
// database, one per test.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := map[string]string{
		"AUTH_SECRET": testSecret,
		"OWNER_EMAIL": testOwnerEmail,
	}
	return newRouter(database.New(db), cache.Noop(), withConfig(cfg), withStartupTime(time.Now()))
}

func signToken(t *testing.T, email string, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func ownerToken(t *testing.T) string {
	return signToken(t, testOwnerEmail, time.Hour)
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Field   string          `json:"field"`
}

// doRequest issues a request against the router and decodes the response
// envelope. An empty token omits the Authorization header.
func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) (int, testEnvelope) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
			"response body: %s", rec.Body.String())
	}
	return rec.Code, env
}

func decodeData(t *testing.T, env testEnvelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}
