package manage

import (
	"slices"
	"sort"
	"strings"
)

// SetSearch updates the free-text query. The view recomputes on every call,
// no debounce.
func (m *Manager[T]) SetSearch(query string) {
	m.searchQuery = query
}

// SetStatusFilter selects a status, or FilterAll to clear.
func (m *Manager[T]) SetStatusFilter(status string) {
	m.statusFilter = status
}

// SetCategoryFilter selects a category, or FilterAll to clear.
func (m *Manager[T]) SetCategoryFilter(category string) {
	m.categoryFilter = category
}

// ClearFilters resets search and both filters.
func (m *Manager[T]) ClearFilters() {
	m.searchQuery = ""
	m.statusFilter = FilterAll
	m.categoryFilter = FilterAll
}

// View returns the derived view: search, status filter, and category filter
// composed by logical AND over the full collection.
func (m *Manager[T]) View() []T {
	query := strings.ToLower(m.searchQuery)

	view := make([]T, 0, len(m.items))
	for _, item := range m.items {
		if query != "" && !m.matchesSearch(item, query) {
			continue
		}
		if m.statusFilter != FilterAll && m.cfg.StatusField != nil &&
			m.cfg.StatusField(item) != m.statusFilter {
			continue
		}
		if m.categoryFilter != FilterAll && m.cfg.CategoryField != nil &&
			!slices.Contains(m.cfg.CategoryField(item), m.categoryFilter) {
			continue
		}
		view = append(view, item)
	}
	return view
}

// matchesSearch reports whether any configured search field contains the
// lowered query as a substring; array fields match if any element does.
func (m *Manager[T]) matchesSearch(item T, loweredQuery string) bool {
	for _, field := range m.cfg.SearchFields {
		for _, value := range field.Value(item) {
			if strings.Contains(strings.ToLower(value), loweredQuery) {
				return true
			}
		}
	}
	return false
}

// Categories returns the distinct category values present in the collection,
// sorted, for populating the filter dropdown.
func (m *Manager[T]) Categories() []string {
	if m.cfg.CategoryField == nil {
		return nil
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, item := range m.items {
		for _, category := range m.cfg.CategoryField(item) {
			if _, ok := seen[category]; !ok {
				seen[category] = struct{}{}
				categories = append(categories, category)
			}
		}
	}
	sort.Strings(categories)
	return categories
}

// StatusOptions returns the configured legal status values.
func (m *Manager[T]) StatusOptions() []string {
	return m.cfg.StatusOptions
}
