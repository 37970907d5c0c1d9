package manage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FilterAll is the sentinel filter value meaning "no filter".
const FilterAll = "All"

// ErrSubmitInFlight is returned when a submission overlaps another one, the
// guard against duplicate records from rapid repeated clicks.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// ErrDialogClosed is returned by Submit when no dialog is open.
var ErrDialogClosed = errors.New("no open form dialog")

// DialogState tracks the create/edit dialog.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogCreate
	DialogEdit
)

// Notifier receives the user-facing outcome of each operation (the toast
// surface). The default logs through zerolog.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type logNotifier struct {
	logger zerolog.Logger
}

func (n logNotifier) Success(message string) { n.logger.Info().Msg(message) }
func (n logNotifier) Error(message string)   { n.logger.Error().Msg(message) }

// Manager holds the authoritative in-memory collection for one entity type
// and orchestrates every operation against the persistence gateway. The
// collection is only ever replaced wholesale by a successful fetch; a failed
// operation leaves it untouched. Manager is not safe for concurrent use —
// it models a single event-driven UI session.
type Manager[T any] struct {
	cfg     Config[T]
	gateway *Gateway
	logger  zerolog.Logger
	notify  Notifier

	items       []T
	loading     bool
	lastFetched time.Time

	searchQuery    string
	statusFilter   string
	categoryFilter string

	dialog  DialogState
	editing *T
	form    Form

	submitting atomic.Bool
}

type Option[T any] func(*Manager[T])

func WithNotifier[T any](n Notifier) Option[T] {
	return func(m *Manager[T]) {
		m.notify = n
	}
}

func NewManager[T any](cfg Config[T], gateway *Gateway, opts ...Option[T]) *Manager[T] {
	logger := log.With().Str("handlerName", "dataManager").Str("entity", cfg.Title).Logger()

	m := &Manager[T]{
		cfg:            cfg,
		gateway:        gateway,
		logger:         logger,
		notify:         logNotifier{logger},
		statusFilter:   FilterAll,
		categoryFilter: FilterAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Refresh replaces the collection with a fresh fetch. On failure the previous
// collection is kept and the error is surfaced.
func (m *Manager[T]) Refresh(ctx context.Context) error {
	m.loading = true
	defer func() { m.loading = false }()

	data, err := m.gateway.List(ctx, m.cfg.Endpoint)
	if err != nil {
		m.notify.Error(fmt.Sprintf("Failed to fetch %s: %v", strings.ToLower(m.cfg.Title), err))
		return err
	}

	var items []T
	if len(data) > 0 {
		if err := json.Unmarshal(data, &items); err != nil {
			m.notify.Error(fmt.Sprintf("Failed to fetch %s: %v", strings.ToLower(m.cfg.Title), err))
			return fmt.Errorf("decode %s list: %w", strings.ToLower(m.cfg.Title), err)
		}
	}

	m.items = items
	m.lastFetched = time.Now()
	return nil
}

// Items returns a copy of the full collection (not the filtered view).
func (m *Manager[T]) Items() []T {
	items := make([]T, len(m.items))
	copy(items, m.items)
	return items
}

func (m *Manager[T]) Loading() bool          { return m.loading }
func (m *Manager[T]) LastFetched() time.Time { return m.lastFetched }
func (m *Manager[T]) Dialog() DialogState    { return m.dialog }

// Stats derives the dashboard tiles from the full collection.
func (m *Manager[T]) Stats() []Stat {
	if m.cfg.Stats == nil {
		return nil
	}
	return m.cfg.Stats(m.items)
}

// OpenCreate opens the dialog with blank form state.
func (m *Manager[T]) OpenCreate() {
	m.dialog = DialogCreate
	m.editing = nil
	m.form = m.cfg.InitialForm()
}

// OpenEdit opens the dialog pre-filled from an existing record.
func (m *Manager[T]) OpenEdit(item T) {
	m.dialog = DialogEdit
	m.editing = &item
	m.form = m.cfg.ItemToForm(item)
}

func (m *Manager[T]) CloseDialog() {
	m.dialog = DialogClosed
	m.editing = nil
	m.form = nil
}

// SetField updates one form field while the dialog is open.
func (m *Manager[T]) SetField(name, value string) {
	if m.form != nil {
		m.form[name] = value
	}
}

// Form returns the current form state, or nil when the dialog is closed.
func (m *Manager[T]) Form() Form {
	return m.form
}

// Submit converts the form into a record and sends it: PUT when editing,
// POST otherwise (with a synthesized id when the form carries none). On
// success the dialog closes and the collection is re-fetched; on failure the
// dialog stays open and the collection is untouched.
func (m *Manager[T]) Submit(ctx context.Context) error {
	if m.dialog == DialogClosed {
		return ErrDialogClosed
	}
	if !m.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer m.submitting.Store(false)

	entity := singular(m.cfg.Title)

	item, err := m.cfg.FormToItem(m.form)
	if err != nil {
		m.notify.Error(fmt.Sprintf("Failed to save %s: %v", entity, err))
		return err
	}

	editing := m.editing != nil
	if editing {
		id := m.cfg.ItemID(*m.editing)
		m.cfg.SetItemID(&item, id)
		err = m.gateway.Update(ctx, m.cfg.Endpoint, id, item)
	} else {
		if m.cfg.ItemID(item) == "" {
			m.cfg.SetItemID(&item, fmt.Sprintf("%s-%d", m.cfg.IDPrefix, time.Now().UnixMilli()))
		}
		err = m.gateway.Create(ctx, m.cfg.Endpoint, item)
	}
	if err != nil {
		m.notify.Error(fmt.Sprintf("Failed to save %s: %v", entity, err))
		return err
	}

	if editing {
		m.notify.Success(fmt.Sprintf("%s updated successfully", entity))
	} else {
		m.notify.Success(fmt.Sprintf("%s created successfully", entity))
	}

	// The dialog closes on mutation success, before the re-fetch resolves.
	m.CloseDialog()
	m.refreshAfterMutation(ctx)
	return nil
}

// Delete removes a record by id and re-fetches on success. The confirmation
// step belongs to the caller.
func (m *Manager[T]) Delete(ctx context.Context, id string) error {
	entity := singular(m.cfg.Title)

	if err := m.gateway.Delete(ctx, m.cfg.Endpoint, id); err != nil {
		m.notify.Error(fmt.Sprintf("Failed to delete %s: %v", entity, err))
		return err
	}

	m.notify.Success(fmt.Sprintf("%s deleted successfully", entity))
	m.refreshAfterMutation(ctx)
	return nil
}

// Duplicate re-POSTs a copy of an existing record with a fresh id and a
// " (Copy)" suffix on the title.
func (m *Manager[T]) Duplicate(ctx context.Context, item T) error {
	entity := singular(m.cfg.Title)

	form := m.cfg.ItemToForm(item)
	form["title"] = form["title"] + " (Copy)"

	duplicate, err := m.cfg.FormToItem(form)
	if err != nil {
		m.notify.Error(fmt.Sprintf("Failed to duplicate %s: %v", entity, err))
		return err
	}
	m.cfg.SetItemID(&duplicate, fmt.Sprintf("%s-copy-%d", m.cfg.ItemID(item), time.Now().UnixMilli()))

	if err := m.gateway.Create(ctx, m.cfg.Endpoint, duplicate); err != nil {
		m.notify.Error(fmt.Sprintf("Failed to duplicate %s: %v", entity, err))
		return err
	}

	m.notify.Success(fmt.Sprintf("%s duplicated successfully", entity))
	m.refreshAfterMutation(ctx)
	return nil
}

// Export serializes the entire collection (never the filtered view) and
// names the file "<title>-<ISODate>.json".
func (m *Manager[T]) Export() (filename string, data []byte, err error) {
	data, err = json.MarshalIndent(m.items, "", "  ")
	if err != nil {
		return "", nil, err
	}
	filename = fmt.Sprintf("%s-%s.json", strings.ToLower(m.cfg.Title), time.Now().Format("2006-01-02"))
	return filename, data, nil
}

// refreshAfterMutation resynchronizes the collection after a successful
// mutation. A failed re-fetch is surfaced as its own error toast but does
// not fail the mutation, which has already been applied.
func (m *Manager[T]) refreshAfterMutation(ctx context.Context) {
	if err := m.Refresh(ctx); err != nil {
		m.logger.Error().Err(err).Msg("re-fetch after mutation failed")
	}
}

// singular trims the plural "s" off the entity title for toast messages,
// matching how the dashboard words them ("Project created successfully").
func singular(title string) string {
	return strings.TrimSuffix(title, "s")
}
