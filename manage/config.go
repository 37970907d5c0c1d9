// Package manage implements the generic data manager behind the admin
// dashboard: one configurable component providing list, search, filter,
// create, edit, delete, duplicate, and export for any managed entity type,
// with no entity-specific logic hard-coded.
package manage

// Form is the dialog's working state: field name to entered value. Array
// fields are flattened to a single delimited string and parsed back by the
// entity's FormToItem mapping.
type Form map[string]string

// Stat is one dashboard statistic tile derived from the full collection.
type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Icon  string `json:"icon"`
}

// Field names one searchable field and extracts its matchable values. Scalar
// fields return a single-element slice; array fields return every element.
type Field[T any] struct {
	Name  string
	Value func(T) []string
}

// Config is the parameter object describing one entity type to the Manager.
// It replaces what might otherwise be a type hierarchy: all entity-specific
// behavior (rendering fields, form mapping, statistics) comes in through
// these callbacks.
type Config[T any] struct {
	Title       string
	Description string

	// Endpoint is the collection's API path, e.g. "/api/projects".
	Endpoint string
	// IDPrefix prefixes synthesized ids for new records, e.g. "proj".
	IDPrefix string

	SearchFields []Field[T]

	// StatusField and StatusOptions enable the status filter when set.
	StatusField   func(T) string
	StatusOptions []string

	// CategoryField enables the category filter when set. Single-valued
	// category fields return a one-element slice.
	CategoryField func(T) []string

	ItemID    func(T) string
	SetItemID func(*T, string)

	InitialForm func() Form
	ItemToForm  func(T) Form
	FormToItem  func(Form) (T, error)

	Stats func([]T) []Stat
}
