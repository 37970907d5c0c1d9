package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulfifazhar/portfolio-backend/models"
)

func testProject(title string) models.Project {
	return models.Project{
		Title:        title,
		Description:  "Something I built",
		Technologies: []string{"Go", "PostgreSQL"},
		Category:     []string{"Web"},
		Status:       models.ProjectInProgress,
		StartDate:    "2025-01-15",
	}
}

func TestCreateAndGetProject(t *testing.T) {
	router := newTestRouter(t)
	token := ownerToken(t)

	status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, testProject("My Portfolio"))
	require.Equal(t, http.StatusCreated, status, "error: %s", env.Error)
	require.True(t, env.Success)

	var created models.Project
	decodeData(t, env, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "my-portfolio", created.Slug)

	status, env = doRequest(t, router, http.MethodGet, "/api/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, status)

	var fetched models.Project
	decodeData(t, env, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "My Portfolio", fetched.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, []string(fetched.Technologies))
	assert.Equal(t, models.ProjectInProgress, fetched.Status)

	status, env = doRequest(t, router, http.MethodGet, "/api/projects/slug/my-portfolio", "", nil)
	require.Equal(t, http.StatusOK, status)
	decodeData(t, env, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestGetProjectNotFound(t *testing.T) {
	router := newTestRouter(t)

	status, env := doRequest(t, router, http.MethodGet, "/api/projects/proj-missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, _ = doRequest(t, router, http.MethodGet, "/api/projects/slug/no-such-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateProjectValidation(t *testing.T) {
	router := newTestRouter(t)
	token := ownerToken(t)

	t.Run("missing title", func(t *testing.T) {
		p := testProject("")
		status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, p)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "title", env.Field)
	})

	t.Run("end date before start date", func(t *testing.T) {
		p := testProject("Backwards Dates")
		end := "2024-01-01"
		p.EndDate = &end
		status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, p)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "endDate", env.Field)
	})

	t.Run("unknown status", func(t *testing.T) {
		p := testProject("Bad Status")
		p.Status = "Abandoned"
		status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, p)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "status", env.Field)
	})
}

func TestCreateProjectDuplicateSlug(t *testing.T) {
	router := newTestRouter(t)
	token := ownerToken(t)

	status, _ := doRequest(t, router, http.MethodPost, "/api/projects", token, testProject("Same Title"))
	require.Equal(t, http.StatusCreated, status)

	status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, testProject("Same Title"))
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
}

func TestUpdateProject(t *testing.T) {
	router := newTestRouter(t)
	token := ownerToken(t)

	status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, testProject("Original"))
	require.Equal(t, http.StatusCreated, status)
	var created models.Project
	decodeData(t, env, &created)

	updated := testProject("Renamed")
	updated.Status = models.ProjectCompleted
	status, env = doRequest(t, router, http.MethodPut, "/api/projects/"+created.ID, token, updated)
	require.Equal(t, http.StatusOK, status, "error: %s", env.Error)

	var result models.Project
	decodeData(t, env, &result)
	assert.Equal(t, created.ID, result.ID)
	assert.Equal(t, "Renamed", result.Title)
	assert.Equal(t, "renamed", result.Slug)
	assert.Equal(t, models.ProjectCompleted, result.Status)

	t.Run("unknown id", func(t *testing.T) {
		status, _ := doRequest(t, router, http.MethodPut, "/api/projects/proj-missing", token, testProject("Ghost"))
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestDeleteProjectTwice(t *testing.T) {
	router := newTestRouter(t)
	token := ownerToken(t)

	status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, testProject("Short Lived"))
	require.Equal(t, http.StatusCreated, status)
	var created models.Project
	decodeData(t, env, &created)

	status, env = doRequest(t, router, http.MethodDelete, "/api/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Project deleted successfully", env.Message)

	status, _ = doRequest(t, router, http.MethodGet, "/api/projects/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	// The second delete of the same id is a 404, not a silent success.
	status, _ = doRequest(t, router, http.MethodDelete, "/api/projects/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListProjectFilters(t *testing.T) {
	router := newTestRouter(t)
	token := ownerToken(t)

	seed := []models.Project{
		{Title: "Site", Description: "d", Category: []string{"Web"}, Status: models.ProjectCompleted, StartDate: "2025-03-01"},
		{Title: "App", Description: "d", Category: []string{"Mobile"}, Status: models.ProjectInProgress, StartDate: "2025-02-01"},
		{Title: "Tool", Description: "d", Category: []string{"Web", "CLI"}, Status: models.ProjectCompleted, StartDate: "2025-01-01"},
	}
	for _, p := range seed {
		status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, p)
		require.Equal(t, http.StatusCreated, status, "error: %s", env.Error)
	}

	listTitles := func(path string) []string {
		status, env := doRequest(t, router, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, status)
		var projects []models.Project
		decodeData(t, env, &projects)
		require.Equal(t, env.Count, len(projects))
		titles := make([]string, 0, len(projects))
		for _, p := range projects {
			titles = append(titles, p.Title)
		}
		return titles
	}

	// Newest startDate first.
	assert.Equal(t, []string{"Site", "App", "Tool"}, listTitles("/api/projects"))
	assert.Equal(t, []string{"Site", "Tool"}, listTitles("/api/projects?status=Completed"))
	assert.Equal(t, []string{"Site", "Tool"}, listTitles("/api/projects?category=Web"))
	assert.Equal(t, []string{"Tool"}, listTitles("/api/projects?category=CLI&status=Completed"))
	assert.Equal(t, []string{"Site"}, listTitles("/api/projects?limit=1"))

	// "All" is the same as no filter.
	assert.Equal(t, []string{"Site", "App", "Tool"}, listTitles("/api/projects?status=All&category=All"))

	t.Run("negative limit", func(t *testing.T) {
		status, env := doRequest(t, router, http.MethodGet, "/api/projects?limit=-1", "", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "limit", env.Field)
	})

	t.Run("zero matches", func(t *testing.T) {
		assert.Empty(t, listTitles("/api/projects?category=Embedded"))
	})
}

func TestMalformedProjectPayload(t *testing.T) {
	router := newTestRouter(t)
	token := ownerToken(t)

	status, env := doRequest(t, router, http.MethodPost, "/api/projects", token, "not an object")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
}
