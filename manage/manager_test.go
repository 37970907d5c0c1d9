package manage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zulfifazhar/portfolio-backend/models"
)

// fakeAPI is an in-memory stand-in for the portfolio API, speaking the same
// response envelope.
type fakeAPI struct {
	mu    sync.Mutex
	items map[string]models.Project
	order []string

	listFails bool

	// When createGate is set, create requests signal createEntered and then
	// block until the gate closes.
	createGate    chan struct{}
	createEntered chan struct{}
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: make(map[string]models.Project)}
}

func (f *fakeAPI) add(p models.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.items[p.ID]; !exists {
		f.order = append(f.order, p.ID)
	}
	f.items[p.ID] = p
}

func (f *fakeAPI) list() []models.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Project, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.items[id])
	}
	return out
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *fakeAPI) get(id string) (models.Project, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	return p, ok
}

func writeEnvelope(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (f *fakeAPI) handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/api/projects", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		fails := f.listFails
		f.mu.Unlock()
		if fails {
			writeEnvelope(w, http.StatusInternalServerError, map[string]any{
				"success": false, "error": "database unavailable",
			})
			return
		}
		items := f.list()
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true, "data": items, "count": len(items),
		})
	})

	r.Post("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		if f.createEntered != nil {
			f.createEntered <- struct{}{}
			<-f.createGate
		}
		var p models.Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeEnvelope(w, http.StatusBadRequest, map[string]any{"success": false, "error": "malformed payload"})
			return
		}
		f.add(p)
		writeEnvelope(w, http.StatusCreated, map[string]any{"success": true, "data": p})
	})

	r.Put("/api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, ok := f.get(id); !ok {
			writeEnvelope(w, http.StatusNotFound, map[string]any{"success": false, "error": "project not found"})
			return
		}
		var p models.Project
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeEnvelope(w, http.StatusBadRequest, map[string]any{"success": false, "error": "malformed payload"})
			return
		}
		p.ID = id
		f.add(p)
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": p})
	})

	r.Delete("/api/projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		f.mu.Lock()
		_, ok := f.items[id]
		if ok {
			delete(f.items, id)
			for i, existing := range f.order {
				if existing == id {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
		}
		f.mu.Unlock()
		if !ok {
			writeEnvelope(w, http.StatusNotFound, map[string]any{"success": false, "error": "project not found"})
			return
		}
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "message": "Project deleted successfully"})
	})

	return r
}

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func seedProject(id, title, description string, status models.ProjectStatus, categories, technologies []string) models.Project {
	return models.Project{
		ID:           id,
		Slug:         models.Slugify(title),
		Title:        title,
		Description:  description,
		Technologies: technologies,
		Category:     categories,
		Status:       status,
		StartDate:    "2025-01-01",
	}
}

func newTestManager(t *testing.T, fake *fakeAPI, opts ...Option[models.Project]) *Manager[models.Project] {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewManager(ProjectConfig(), NewGateway(srv.URL), opts...)
}

func TestRefreshReplacesCollection(t *testing.T) {
	fake := newFakeAPI()
	fake.add(seedProject("proj-1", "Alpha", "first", models.ProjectCompleted, []string{"Web"}, []string{"Go"}))
	fake.add(seedProject("proj-2", "Beta", "second", models.ProjectPlanned, []string{"Mobile"}, []string{"Kotlin"}))

	m := newTestManager(t, fake)
	require.True(t, m.LastFetched().IsZero())

	require.NoError(t, m.Refresh(context.Background()))
	assert.Len(t, m.Items(), 2)
	assert.False(t, m.LastFetched().IsZero())
	assert.False(t, m.Loading())
}

func TestRefreshFailureKeepsItems(t *testing.T) {
	fake := newFakeAPI()
	fake.add(seedProject("proj-1", "Alpha", "first", models.ProjectCompleted, nil, nil))

	notifier := &recordingNotifier{}
	m := newTestManager(t, fake, WithNotifier[models.Project](notifier))
	require.NoError(t, m.Refresh(context.Background()))
	require.Len(t, m.Items(), 1)

	fake.mu.Lock()
	fake.listFails = true
	fake.mu.Unlock()

	err := m.Refresh(context.Background())
	require.Error(t, err)
	assert.Len(t, m.Items(), 1, "a failed fetch must not clobber the collection")
	assert.NotEmpty(t, notifier.errors)
}

func TestSubmitCreate(t *testing.T) {
	fake := newFakeAPI()
	notifier := &recordingNotifier{}
	m := newTestManager(t, fake, WithNotifier[models.Project](notifier))
	require.NoError(t, m.Refresh(context.Background()))

	m.OpenCreate()
	require.Equal(t, DialogCreate, m.Dialog())
	m.SetField("title", "New Thing")
	m.SetField("description", "built from the dialog")
	m.SetField("status", string(models.ProjectPlanned))
	m.SetField("startDate", "2025-04-01")
	m.SetField("technologies", "Go, Redis")

	require.NoError(t, m.Submit(context.Background()))

	assert.Equal(t, DialogClosed, m.Dialog())
	assert.Nil(t, m.Form())
	require.Len(t, m.Items(), 1)

	created := m.Items()[0]
	assert.True(t, strings.HasPrefix(created.ID, "proj-"))
	assert.Equal(t, "New Thing", created.Title)
	assert.Equal(t, "new-thing", created.Slug)
	assert.Equal(t, []string{"Go", "Redis"}, []string(created.Technologies))
	assert.Contains(t, notifier.successes, "Project created successfully")
}

func TestSubmitValidationKeepsDialogOpen(t *testing.T) {
	fake := newFakeAPI()
	m := newTestManager(t, fake)

	m.OpenCreate()
	m.SetField("description", "no title set")
	m.SetField("startDate", "2025-04-01")

	err := m.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, DialogCreate, m.Dialog(), "a failed submit leaves the dialog open")
	assert.Equal(t, 0, fake.count())
}

func TestSubmitEdit(t *testing.T) {
	fake := newFakeAPI()
	fake.add(seedProject("proj-1", "Alpha", "first", models.ProjectCompleted, nil, nil))

	m := newTestManager(t, fake)
	require.NoError(t, m.Refresh(context.Background()))

	m.OpenEdit(m.Items()[0])
	require.Equal(t, DialogEdit, m.Dialog())
	assert.Equal(t, "Alpha", m.Form()["title"])

	m.SetField("title", "Alpha Reborn")
	require.NoError(t, m.Submit(context.Background()))

	updated, ok := fake.get("proj-1")
	require.True(t, ok, "editing must keep the record's id")
	assert.Equal(t, "Alpha Reborn", updated.Title)
	assert.Equal(t, 1, fake.count())
	assert.Equal(t, DialogClosed, m.Dialog())
}

func TestSubmitWithoutDialog(t *testing.T) {
	m := newTestManager(t, newFakeAPI())
	assert.ErrorIs(t, m.Submit(context.Background()), ErrDialogClosed)
}

func TestDoubleSubmitGuard(t *testing.T) {
	fake := newFakeAPI()
	fake.createGate = make(chan struct{})
	fake.createEntered = make(chan struct{})

	m := newTestManager(t, fake)

	m.OpenCreate()
	m.SetField("title", "Clicked Twice")
	m.SetField("description", "d")
	m.SetField("status", string(models.ProjectPlanned))
	m.SetField("startDate", "2025-04-01")

	firstDone := make(chan error, 1)
	go func() { firstDone <- m.Submit(context.Background()) }()

	// Wait until the first submission is in flight, then click again.
	<-fake.createEntered
	assert.ErrorIs(t, m.Submit(context.Background()), ErrSubmitInFlight)

	fake.createEntered = nil
	close(fake.createGate)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, fake.count())
}

func TestDelete(t *testing.T) {
	fake := newFakeAPI()
	fake.add(seedProject("proj-1", "Alpha", "first", models.ProjectCompleted, nil, nil))
	fake.add(seedProject("proj-2", "Beta", "second", models.ProjectPlanned, nil, nil))

	m := newTestManager(t, fake)
	require.NoError(t, m.Refresh(context.Background()))

	require.NoError(t, m.Delete(context.Background(), "proj-1"))
	assert.Equal(t, 1, fake.count())
	require.Len(t, m.Items(), 1)
	assert.Equal(t, "proj-2", m.Items()[0].ID)

	t.Run("unknown id", func(t *testing.T) {
		err := m.Delete(context.Background(), "proj-missing")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Len(t, m.Items(), 1)
	})
}

func TestDuplicate(t *testing.T) {
	fake := newFakeAPI()
	original := seedProject("proj-1", "Alpha", "first", models.ProjectCompleted, []string{"Web"}, []string{"Go"})
	fake.add(original)

	m := newTestManager(t, fake)
	require.NoError(t, m.Refresh(context.Background()))

	require.NoError(t, m.Duplicate(context.Background(), original))
	require.Equal(t, 2, fake.count())
	require.Len(t, m.Items(), 2)

	var copied models.Project
	for _, item := range m.Items() {
		if item.ID != original.ID {
			copied = item
		}
	}
	assert.True(t, strings.HasPrefix(copied.ID, "proj-1-copy-"), "copy id: %s", copied.ID)
	assert.Equal(t, "Alpha (Copy)", copied.Title)
	assert.Equal(t, original.Description, copied.Description)
	assert.Equal(t, original.Status, copied.Status)
	assert.Equal(t, []string(original.Technologies), []string(copied.Technologies))
}

func TestExportIgnoresFilters(t *testing.T) {
	fake := newFakeAPI()
	fake.add(seedProject("proj-1", "Alpha", "first", models.ProjectCompleted, []string{"Web"}, nil))
	fake.add(seedProject("proj-2", "Beta", "second", models.ProjectPlanned, []string{"Mobile"}, nil))
	fake.add(seedProject("proj-3", "Gamma", "third", models.ProjectCompleted, []string{"Web"}, nil))

	m := newTestManager(t, fake)
	require.NoError(t, m.Refresh(context.Background()))

	m.SetSearch("alpha")
	require.Len(t, m.View(), 1)

	filename, data, err := m.Export()
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("projects-%s.json", time.Now().Format("2006-01-02")), filename)

	var exported []models.Project
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Len(t, exported, 3, "export covers the whole collection, not the view")
	assert.Equal(t, "Alpha", exported[0].Title)
}

func TestStats(t *testing.T) {
	fake := newFakeAPI()
	fake.add(seedProject("proj-1", "Alpha", "d", models.ProjectCompleted, nil, nil))
	fake.add(seedProject("proj-2", "Beta", "d", models.ProjectCompleted, nil, nil))
	fake.add(seedProject("proj-3", "Gamma", "d", models.ProjectInProgress, nil, nil))

	m := newTestManager(t, fake)
	require.NoError(t, m.Refresh(context.Background()))

	stats := m.Stats()
	require.Len(t, stats, 4)
	assert.Equal(t, Stat{Label: "Total Projects", Value: 3, Icon: "folder"}, stats[0])
	assert.Equal(t, Stat{Label: "Completed", Value: 2, Icon: "check-circle"}, stats[1])
	assert.Equal(t, Stat{Label: "In Progress", Value: 1, Icon: "clock"}, stats[2])
	assert.Equal(t, Stat{Label: "Planned", Value: 0, Icon: "calendar"}, stats[3])
}
