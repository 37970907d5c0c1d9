package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulfifazhar/portfolio-backend/database"
	"github.com/zulfifazhar/portfolio-backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// memoryListCache is an in-process stand-in for the Redis list cache.
type memoryListCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
}

func newMemoryListCache() *memoryListCache {
	return &memoryListCache{entries: make(map[string][]byte)}
}

func (c *memoryListCache) Get(_ context.Context, collection string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[collection]
	if ok {
		c.hits++
	}
	return payload, ok
}

func (c *memoryListCache) Set(_ context.Context, collection string, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[collection] = payload
	return nil
}

func (c *memoryListCache) Invalidate(_ context.Context, collection string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, collection)
	return nil
}

func TestListCacheInvalidation(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	listCache := newMemoryListCache()
	cfg := map[string]string{"AUTH_SECRET": testSecret, "OWNER_EMAIL": testOwnerEmail}
	router := newRouter(database.New(db), listCache, withConfig(cfg), withStartupTime(time.Now()))
	token := ownerToken(t)

	// First unfiltered list populates the cache, second one hits it.
	status, _ := doRequest(t, router, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = doRequest(t, router, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, listCache.hits)

	// Filtered lists bypass the cache entirely.
	status, _ = doRequest(t, router, http.MethodGet, "/api/projects?status=Completed", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, listCache.hits)

	// A mutation invalidates, so the next list reflects the new row.
	status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, testProject("Fresh"))
	require.Equal(t, http.StatusCreated, status, "error: %s", env.Error)

	status, env = doRequest(t, router, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, status)
	var listed []models.Project
	decodeData(t, env, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "Fresh", listed[0].Title)
	assert.Equal(t, 1, env.Count)
}
